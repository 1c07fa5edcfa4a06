package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPVerifier implements ports.SignatureVerifier against the platform's
// signature recovery endpoint. A transport or non-2xx failure is an
// error, never a rejection: only an explicit valid=false rejects.
type HTTPVerifier struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewHTTPVerifier creates the verifier client.
func NewHTTPVerifier(url string, timeout time.Duration, log zerolog.Logger) *HTTPVerifier {
	return &HTTPVerifier{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type verifyRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
	Network   string `json:"network"`
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Verify asks the platform whether signature over message recovers to
// address on the network.
func (v *HTTPVerifier) Verify(ctx context.Context, message, signature, address string, network domain.Network) (bool, error) {
	body, err := json.Marshal(verifyRequest{
		Message:   message,
		Signature: signature,
		Address:   address,
		Network:   string(network),
	})
	if err != nil {
		return false, fmt.Errorf("encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("call signature verifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("signature verifier returned status %d", resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode verify response: %w", err)
	}
	if out.Error != "" {
		return false, fmt.Errorf("signature verifier: %s", out.Error)
	}
	return out.Valid, nil
}
