package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// confirmTokenTTL is the lifetime of the out-of-band confirmation token,
// independent of the request's own expiry.
const confirmTokenTTL = 30 * time.Minute

// TimeDelayedHandler trades cryptographic wallet proof for proof of
// control over a secondary channel: it issues a confirmation token to
// the channel and approves only when that token comes back.
type TimeDelayedHandler struct {
	tokens ports.ConfirmTokenStore
	hasher ports.TokenHasher
	sender ports.NotificationSender
	log    zerolog.Logger
}

// NewTimeDelayedHandler creates the time-delayed handler.
func NewTimeDelayedHandler(tokens ports.ConfirmTokenStore, hasher ports.TokenHasher, sender ports.NotificationSender, log zerolog.Logger) *TimeDelayedHandler {
	return &TimeDelayedHandler{tokens: tokens, hasher: hasher, sender: sender, log: log}
}

func (h *TimeDelayedHandler) Method() domain.Method {
	return domain.MethodTimeDelayed
}

// SubmitProof issues the second secret. Only the HMAC of the token is
// stored; the plaintext goes out on the user's channel and is gone.
func (h *TimeDelayedHandler) SubmitProof(ctx context.Context, _ pgx.Tx, req *domain.VerificationRequest, proof ports.ProofPayload) (*ports.MethodOutcome, error) {
	channel := strings.TrimSpace(proof.Channel)
	if channel == "" || !strings.Contains(channel, "@") {
		return nil, apperror.Validation("time-delayed verification requires a valid email channel")
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	if err := h.tokens.Store(ctx, req.ID, h.hasher.Hash(token), confirmTokenTTL); err != nil {
		return nil, apperror.InternalError(err)
	}

	// Delivery is a collaborator concern and must not block the
	// transition.
	h.sender.Send(ctx, req.UserID,
		"Confirm your wallet verification",
		fmt.Sprintf("Your confirmation code is %s. It expires in %d minutes.", token, int(confirmTokenTTL.Minutes())))

	h.log.Info().
		Int64("verification_id", req.ID).
		Msg("confirmation token issued")

	return &ports.MethodOutcome{
		Status:  domain.StatusVerifying,
		Action:  domain.AuditActionTokenIssued,
		Message: "confirmation token sent to the provided channel",
	}, nil
}
