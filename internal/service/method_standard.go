package service

import (
	"context"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// StandardSignatureHandler validates a single signature over the stored
// challenge message.
type StandardSignatureHandler struct {
	verifier ports.SignatureVerifier
	cipher   ports.EnvelopeCipher
	log      zerolog.Logger
}

// NewStandardSignatureHandler creates the standard-signature handler.
func NewStandardSignatureHandler(verifier ports.SignatureVerifier, cipher ports.EnvelopeCipher, log zerolog.Logger) *StandardSignatureHandler {
	return &StandardSignatureHandler{verifier: verifier, cipher: cipher, log: log}
}

func (h *StandardSignatureHandler) Method() domain.Method {
	return domain.MethodStandardSignature
}

// SubmitProof verifies one wallet signature. Wallet mismatch and
// signature mismatch are decided rejections; malformed input and
// verifier malfunction leave the request untouched.
func (h *StandardSignatureHandler) SubmitProof(ctx context.Context, _ pgx.Tx, req *domain.VerificationRequest, proof ports.ProofPayload) (*ports.MethodOutcome, error) {
	if proof.WalletAddress == "" || proof.Signature == "" {
		return nil, apperror.ErrMalformedProof("wallet address and signature are required")
	}
	if !validSignatureFormat(req.WalletNetwork, proof.Signature) {
		return nil, apperror.ErrMalformedProof("signature format is invalid for network")
	}

	if !req.WalletMatches(proof.WalletAddress) {
		return &ports.MethodOutcome{
			Status:  domain.StatusRejected,
			Action:  domain.AuditActionProofRejected,
			Message: "signature wallet does not match verification wallet",
		}, nil
	}

	valid, err := h.verifier.Verify(ctx, req.ChallengeMessage, proof.Signature, proof.WalletAddress, req.WalletNetwork)
	if err != nil {
		// "Could not verify" is an internal fault, never a rejection:
		// conflating the two would corrupt the risk signal.
		return nil, apperror.ErrCryptoFailure(err)
	}
	if !valid {
		return &ports.MethodOutcome{
			Status:  domain.StatusRejected,
			Action:  domain.AuditActionProofRejected,
			Message: "signature does not recover to wallet address",
		}, nil
	}

	proofEnc, err := h.cipher.Encrypt([]byte(proof.Signature))
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	h.log.Debug().
		Int64("verification_id", req.ID).
		Str("network", string(req.WalletNetwork)).
		Msg("standard signature verified")

	return &ports.MethodOutcome{
		Status:         domain.StatusApproved,
		Action:         domain.AuditActionProofAccepted,
		Message:        "wallet ownership verified",
		EncryptedProof: &proofEnc,
	}, nil
}
