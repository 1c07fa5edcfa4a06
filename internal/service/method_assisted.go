package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AssistedHandler opens a manual-review case instead of validating
// cryptographic proof. The request stays in verifying until an
// authorized reviewer resolves it.
type AssistedHandler struct {
	caseRepo ports.AssistedCaseRepository
	cipher   ports.EnvelopeCipher
	log      zerolog.Logger
}

// NewAssistedHandler creates the assisted-verification handler.
func NewAssistedHandler(caseRepo ports.AssistedCaseRepository, cipher ports.EnvelopeCipher, log zerolog.Logger) *AssistedHandler {
	return &AssistedHandler{caseRepo: caseRepo, cipher: cipher, log: log}
}

func (h *AssistedHandler) Method() domain.Method {
	return domain.MethodAssisted
}

func (h *AssistedHandler) SubmitProof(ctx context.Context, tx pgx.Tx, req *domain.VerificationRequest, proof ports.ProofPayload) (*ports.MethodOutcome, error) {
	if strings.TrimSpace(proof.Reason) == "" {
		return nil, apperror.Validation("assisted verification requires a reason")
	}

	existing, err := h.caseRepo.GetByVerification(ctx, req.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return nil, apperror.ErrInvalidState("assisted case already open for this verification")
	}

	infoEnc, err := h.cipher.EncryptJSON(proof.UserInfo)
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	now := time.Now().UTC()
	ticketID := newTicketID()
	c := &domain.AssistedCase{
		VerificationID:    req.ID,
		TicketID:          ticketID,
		Reason:            proof.Reason,
		EncryptedUserInfo: &infoEnc,
		Status:            domain.AssistedPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := h.caseRepo.Create(ctx, tx, c); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	h.log.Info().
		Int64("verification_id", req.ID).
		Str("ticket_id", ticketID).
		Msg("assisted case opened")

	return &ports.MethodOutcome{
		Status:  domain.StatusVerifying,
		Action:  domain.AuditActionAssistedOpen,
		Message: fmt.Sprintf("assisted review opened, ticket %s", ticketID),
	}, nil
}

// newTicketID generates a short support-ticket identifier.
func newTicketID() string {
	return "AST-" + strings.ToUpper(uuid.NewString()[:8])
}
