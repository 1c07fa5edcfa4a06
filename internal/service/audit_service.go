package service

import (
	"context"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService. Entries are appended
// inside the caller's transaction: the state transition and its trail
// commit together or not at all. Details are encrypted before they are
// persisted; the structured log carries identifiers only, never payloads.
type AuditServiceImpl struct {
	repo   ports.AuditRepository
	cipher ports.EnvelopeCipher
	log    zerolog.Logger
}

// NewAuditService creates a transactional audit service.
func NewAuditService(repo ports.AuditRepository, cipher ports.EnvelopeCipher, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo, cipher: cipher, log: log}
}

// LogTransition appends one immutable audit entry.
func (s *AuditServiceImpl) LogTransition(ctx context.Context, tx pgx.Tx, rec ports.AuditRecord) error {
	var detailsEnc *string
	if rec.Details != nil {
		blob, err := s.cipher.EncryptJSON(rec.Details)
		if err != nil {
			return fmt.Errorf("encrypting audit details: %w", err)
		}
		detailsEnc = &blob
	}

	entry := &domain.AuditEntry{
		ID:               uuid.New(),
		VerificationID:   rec.VerificationID,
		UserID:           rec.UserID,
		Action:           rec.Action,
		EncryptedDetails: detailsEnc,
		IPAddress:        rec.IP,
		UserAgent:        rec.UserAgent,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, tx, entry); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}

	s.log.Info().
		Str("action", string(rec.Action)).
		Int64("verification_id", rec.VerificationID).
		Int64("user_id", rec.UserID).
		Str("ip", rec.IP).
		Msg("audit")

	return nil
}
