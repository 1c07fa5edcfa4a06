package service

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingClient captures delivered requests without a network.
type recordingClient struct {
	mu        sync.Mutex
	requests  []*http.Request
	bodies    [][]byte
	status    int
	delivered chan struct{}
}

func newRecordingClient(status int) *recordingClient {
	return &recordingClient{status: status, delivered: make(chan struct{}, 10)}
}

func (c *recordingClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, _ := io.ReadAll(req.Body)
	c.requests = append(c.requests, req)
	c.bodies = append(c.bodies, body)
	c.delivered <- struct{}{}
	return &http.Response{StatusCode: c.status, Body: http.NoBody}, nil
}

func (c *recordingClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func TestHTTPWebhookNotifier_DeliversEnvelope(t *testing.T) {
	client := newRecordingClient(http.StatusOK)
	notifier := NewHTTPWebhookNotifier("http://callbacks.internal/hook", client, zerolog.Nop())

	notifier.Queue(42, 7, "VERIFICATION_APPROVED", map[string]any{"status": "APPROVED"})

	select {
	case <-client.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.requests, 1)
	assert.Equal(t, "application/json", client.requests[0].Header.Get("Content-Type"))

	var envelope WebhookEnvelope
	require.NoError(t, json.Unmarshal(client.bodies[0], &envelope))
	assert.Equal(t, "VERIFICATION_APPROVED", envelope.EventType)
	assert.Equal(t, int64(42), envelope.VerificationID)
	assert.Equal(t, int64(7), envelope.UserID)
	assert.NotZero(t, envelope.Timestamp)
}

func TestHTTPWebhookNotifier_EmptyURLDisablesDelivery(t *testing.T) {
	client := newRecordingClient(http.StatusOK)
	notifier := NewHTTPWebhookNotifier("", client, zerolog.Nop())

	notifier.Queue(42, 7, "VERIFICATION_APPROVED", nil)

	select {
	case <-client.delivered:
		t.Fatal("delivery should be disabled without a callback URL")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Zero(t, client.count())
}

func TestHTTPWebhookNotifier_StopsAfterSuccess(t *testing.T) {
	client := newRecordingClient(http.StatusNoContent)
	notifier := NewHTTPWebhookNotifier("http://callbacks.internal/hook", client, zerolog.Nop())

	notifier.Queue(42, 7, "VERIFICATION_REJECTED", nil)

	select {
	case <-client.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}
	// A 2xx on the first attempt must not be retried.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, client.count())
}
