package service

import (
	"context"
	"strings"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// minSignatures is the multisig quorum.
const minSignatures = 2

// MultiSignatureHandler requires signatures from at least two distinct
// wallets, all over the same challenge message. Submission is atomic: a
// single invalid signature aborts the whole submission with the request
// unchanged and zero signatures persisted.
type MultiSignatureHandler struct {
	verifier ports.SignatureVerifier
	cipher   ports.EnvelopeCipher
	log      zerolog.Logger
}

// NewMultiSignatureHandler creates the multi-signature handler.
func NewMultiSignatureHandler(verifier ports.SignatureVerifier, cipher ports.EnvelopeCipher, log zerolog.Logger) *MultiSignatureHandler {
	return &MultiSignatureHandler{verifier: verifier, cipher: cipher, log: log}
}

func (h *MultiSignatureHandler) Method() domain.Method {
	return domain.MethodMultiSignature
}

func (h *MultiSignatureHandler) SubmitProof(ctx context.Context, _ pgx.Tx, req *domain.VerificationRequest, proof ports.ProofPayload) (*ports.MethodOutcome, error) {
	if len(proof.Signatures) < minSignatures {
		return nil, apperror.Validation("requires at least 2 signatures")
	}

	seen := make(map[string]bool, len(proof.Signatures))
	for _, pair := range proof.Signatures {
		if pair.WalletAddress == "" || pair.Signature == "" {
			return nil, apperror.ErrMalformedProof("each signature requires a wallet address")
		}
		key := strings.ToLower(pair.WalletAddress)
		if seen[key] {
			return nil, apperror.Validation("signatures must come from distinct wallets")
		}
		seen[key] = true

		if !validSignatureFormat(req.WalletNetwork, pair.Signature) {
			return nil, apperror.ErrMalformedProof("signature format is invalid for network")
		}
	}

	// All-or-nothing: verify every pair before persisting anything.
	for _, pair := range proof.Signatures {
		valid, err := h.verifier.Verify(ctx, req.ChallengeMessage, pair.Signature, pair.WalletAddress, req.WalletNetwork)
		if err != nil {
			return nil, apperror.ErrCryptoFailure(err)
		}
		if !valid {
			return nil, apperror.ErrProofInvalid("one or more signatures failed verification")
		}
	}

	proofEnc, err := h.cipher.EncryptJSON(proof.Signatures)
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	h.log.Debug().
		Int64("verification_id", req.ID).
		Int("signatures", len(proof.Signatures)).
		Msg("multi-signature set verified")

	return &ports.MethodOutcome{
		Status:         domain.StatusApproved,
		Action:         domain.AuditActionProofAccepted,
		Message:        "multi-signature wallet ownership verified",
		EncryptedProof: &proofEnc,
	}, nil
}
