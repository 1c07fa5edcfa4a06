package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals spaces delivery attempts after the first failure.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookEnvelope is the JSON body delivered to the calling feature's
// callback URL.
type WebhookEnvelope struct {
	EventType      string `json:"event_type"`
	VerificationID int64  `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	Payload        any    `json:"payload"`
	Timestamp      int64  `json:"timestamp"`
}

// HTTPWebhookNotifier implements ports.WebhookNotifier against a single
// configured callback URL. Delivery is asynchronous: a transition never
// waits on, or fails with, the receiving feature.
type HTTPWebhookNotifier struct {
	callbackURL string
	httpClient  HTTPClient
	log         zerolog.Logger
}

// NewHTTPWebhookNotifier creates the notifier. An empty callbackURL
// disables delivery entirely.
func NewHTTPWebhookNotifier(callbackURL string, httpClient HTTPClient, log zerolog.Logger) *HTTPWebhookNotifier {
	return &HTTPWebhookNotifier{callbackURL: callbackURL, httpClient: httpClient, log: log}
}

// Queue schedules delivery of one event. Errors are logged, never
// returned: the transition already committed.
func (s *HTTPWebhookNotifier) Queue(verificationID, userID int64, eventType string, payload any) {
	if s.callbackURL == "" {
		s.log.Debug().
			Int64("verification_id", verificationID).
			Str("event_type", eventType).
			Msg("webhook: no callback URL configured, skipping")
		return
	}

	envelope := WebhookEnvelope{
		EventType:      eventType,
		VerificationID: verificationID,
		UserID:         userID,
		Payload:        payload,
		Timestamp:      time.Now().Unix(),
	}

	go s.deliverWithRetries(envelope)
}

// deliverWithRetries attempts delivery with backoff until a 2xx lands or
// the schedule is exhausted.
func (s *HTTPWebhookNotifier) deliverWithRetries(envelope WebhookEnvelope) {
	body, err := json.Marshal(envelope)
	if err != nil {
		s.log.Error().Err(err).Int64("verification_id", envelope.VerificationID).Msg("webhook: failed to marshal envelope")
		return
	}

	for attempt := 0; attempt <= len(webhookRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(webhookRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.callbackURL, bytes.NewReader(body))
		if err != nil {
			s.log.Error().Err(err).Int64("verification_id", envelope.VerificationID).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Int64("verification_id", envelope.VerificationID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().
				Int64("verification_id", envelope.VerificationID).
				Str("event_type", envelope.EventType).
				Int("attempt", attempt+1).
				Msg("webhook: delivered")
			return
		}

		s.log.Warn().
			Int64("verification_id", envelope.VerificationID).
			Int("attempt", attempt+1).
			Int("status", resp.StatusCode).
			Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().
		Int64("verification_id", envelope.VerificationID).
		Str("event_type", envelope.EventType).
		Msg("webhook: all retry attempts exhausted")
}
