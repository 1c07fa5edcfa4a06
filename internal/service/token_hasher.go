package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// HMACTokenHasher hashes time-delayed confirmation tokens with
// HMAC-SHA256 so the plaintext token never touches storage.
type HMACTokenHasher struct {
	secret []byte
}

// NewHMACTokenHasher creates a token hasher keyed with secret.
func NewHMACTokenHasher(secret string) *HMACTokenHasher {
	return &HMACTokenHasher{secret: []byte(secret)}
}

// Hash computes the lowercase hex HMAC-SHA256 of token.
func (h *HMACTokenHasher) Hash(token string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks token against a stored hash in constant time.
func (h *HMACTokenHasher) Verify(token string, storedHash string) bool {
	expected := h.Hash(token)
	return hmac.Equal([]byte(expected), []byte(storedHash))
}

// GenerateToken returns a random confirmation token (32 hex chars).
func GenerateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateNonce returns a random challenge nonce (48 hex chars).
func GenerateNonce() (string, error) {
	buf := make([]byte, 24)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
