package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// VerificationServiceImpl implements ports.VerificationService. Every
// mutating operation runs inside one database transaction: the row lock,
// the state transition and its audit entry commit together or not at all.
type VerificationServiceImpl struct {
	deps VerificationServiceDeps
	log  zerolog.Logger
}

// VerificationServiceDeps wires the orchestrator's collaborators.
type VerificationServiceDeps struct {
	Verifications ports.VerificationRepository
	Steps         ports.StepRepository
	SourceOfFunds ports.SourceOfFundsRepository
	Cases         ports.AssistedCaseRepository
	Handlers      HandlerSet
	Cipher        ports.EnvelopeCipher
	Risk          ports.RiskAssessor
	Users         ports.UserDirectory
	Nonces        ports.NonceStore
	Tokens        ports.ConfirmTokenStore
	Hasher        ports.TokenHasher
	Audit         ports.AuditService
	Compliance    ports.ComplianceService
	Webhooks      ports.WebhookNotifier
	Transactor    ports.DBTransactor
}

// NewVerificationService creates the orchestration entry point.
func NewVerificationService(deps VerificationServiceDeps, log zerolog.Logger) *VerificationServiceImpl {
	return &VerificationServiceImpl{deps: deps, log: log}
}

// Create validates the request, scores it, selects the method and
// persists a pending verification with a signed challenge.
func (s *VerificationServiceImpl) Create(ctx context.Context, req ports.CreateRequest) (*ports.CreateResult, error) {
	if !domain.ValidFeature(req.Feature) {
		return nil, apperror.Validation("unknown feature")
	}
	if !domain.ValidNetwork(req.WalletNetwork) {
		return nil, apperror.ErrUnsupportedNetwork()
	}
	if !ValidWalletAddress(req.WalletNetwork, req.WalletAddress) {
		return nil, apperror.ErrInvalidWalletAddress(string(req.WalletNetwork))
	}
	if req.Amount < 0 {
		return nil, apperror.Validation("amount cannot be negative")
	}
	method := req.Method
	if method == "" {
		method = domain.MethodStandardSignature
	}
	if !domain.ValidMethod(method) {
		return nil, apperror.ErrUnsupportedMethod()
	}

	banned, err := s.deps.Users.IsBanned(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("checking ban status: %w", err))
	}
	if banned {
		return nil, apperror.ErrForbidden()
	}

	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Risk is scored on a snapshot read inside this transaction so the
	// persisted score can be reconstructed later.
	snap, err := s.buildSnapshot(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	assessment := s.deps.Risk.Assess(snap)
	method = EscalateMethod(method, assessment.Level, req.Amount)

	nonce, err := GenerateNonce()
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	tier := domain.DetermineTier(req.Amount)
	now := time.Now().UTC()
	expiresAt := now.Add(tier.Expiry())

	isNew, err := s.deps.Nonces.CheckAndSet(ctx, req.UserID, nonce, tier.Expiry())
	if err != nil {
		s.log.Warn().Err(err).Msg("nonce store error, relying on ledger uniqueness")
	} else if !isNew {
		return nil, apperror.ErrNonceUsed()
	}

	var contextEnc *string
	if len(req.Context) > 0 {
		blob, err := s.deps.Cipher.EncryptJSON(req.Context)
		if err != nil {
			return nil, apperror.ErrCryptoFailure(err)
		}
		contextEnc = &blob
	}

	v := &domain.VerificationRequest{
		UserID:           req.UserID,
		Feature:          req.Feature,
		Method:           method,
		WalletAddress:    req.WalletAddress,
		WalletNetwork:    req.WalletNetwork,
		ChallengeMessage: buildChallenge(req.UserID, req.Feature, req.WalletAddress, nonce, now),
		Nonce:            nonce,
		EncryptedContext: contextEnc,
		RiskScore:        assessment.Score,
		RiskLevel:        assessment.Level,
		RiskFactors:      assessment.Factors,
		Status:           domain.StatusPending,
		ClientIP:         req.ClientIP,
		CreatedAt:        now,
		ExpiresAt:        expiresAt,
	}
	if err := s.deps.Verifications.Create(ctx, tx, v); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create verification: %w", err))
	}

	// Withdrawals additionally carry a source-of-funds record tying the
	// amount to the destination wallet.
	if req.Feature == domain.FeatureWithdrawal {
		if err := s.createSourceOfFunds(ctx, tx, v, req.Amount); err != nil {
			return nil, err
		}
	}

	if err := s.deps.Audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionCreated,
		Details: map[string]any{
			"feature":    v.Feature,
			"method":     v.Method,
			"risk_score": v.RiskScore,
			"risk_level": v.RiskLevel,
		},
		IP:        req.ClientIP,
		UserAgent: req.UserAgent,
	}); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("verification_id", v.ID).
		Int64("user_id", v.UserID).
		Str("feature", string(v.Feature)).
		Str("method", string(v.Method)).
		Int("risk_score", v.RiskScore).
		Msg("verification created")

	return &ports.CreateResult{
		ID:        v.ID,
		Method:    v.Method,
		Challenge: v.ChallengeMessage,
		Nonce:     v.Nonce,
		ExpiresAt: v.ExpiresAt,
		RiskLevel: v.RiskLevel,
	}, nil
}

// SubmitProof dispatches the proof to the handler matching the stored
// method tag. Handler errors leave the request untouched; decided
// outcomes are applied and committed with their audit entry.
func (s *VerificationServiceImpl) SubmitProof(ctx context.Context, id int64, proof ports.ProofPayload) (*ports.SubmitResult, error) {
	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if v.IsExpired(time.Now().UTC()) {
		if err := s.expire(ctx, tx, v); err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
		}
		s.deps.Webhooks.Queue(v.ID, v.UserID, ports.EventVerificationExpired, statusPayload(v, domain.StatusExpired))
		return nil, apperror.ErrExpired()
	}

	// The nonce is single-use: once the request has left pending the
	// same challenge can never be answered again. Time-delayed requests
	// are the exception: they sit in verifying until their token comes
	// back, and resubmitting there reissues the token so a lapsed TTL
	// does not strand the request.
	if v.Status != domain.StatusPending &&
		!(v.Method == domain.MethodTimeDelayed && v.Status == domain.StatusVerifying) {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("verification is %s", v.Status))
	}

	handler, ok := s.deps.Handlers[v.Method]
	if !ok {
		return nil, apperror.ErrUnsupportedMethod()
	}

	outcome, err := handler.SubmitProof(ctx, tx, v, proof)
	if err != nil {
		// Undecided failure: roll back any partial work, then record the
		// attempt on its own transaction.
		_ = tx.Rollback(ctx)
		s.auditFailure(ctx, v, err)
		return nil, err
	}

	if err := s.applyOutcome(ctx, tx, v, outcome); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.afterDecision(v, outcome.Status)

	return &ports.SubmitResult{Status: outcome.Status, Message: outcome.Message}, nil
}

// ConfirmToken closes a time-delayed verification with the out-of-band
// token issued at submission.
func (s *VerificationServiceImpl) ConfirmToken(ctx context.Context, id int64, token string) (*ports.SubmitResult, error) {
	if token == "" {
		return nil, apperror.Validation("confirmation token is required")
	}

	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if v.IsExpired(time.Now().UTC()) {
		if err := s.expire(ctx, tx, v); err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
		}
		s.deps.Webhooks.Queue(v.ID, v.UserID, ports.EventVerificationExpired, statusPayload(v, domain.StatusExpired))
		return nil, apperror.ErrExpired()
	}
	if v.Method != domain.MethodTimeDelayed {
		return nil, apperror.ErrInvalidState("verification does not use token confirmation")
	}
	if v.Status != domain.StatusVerifying {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("verification is %s", v.Status))
	}

	storedHash, err := s.deps.Tokens.Get(ctx, v.ID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if storedHash == "" {
		return nil, apperror.ErrInvalidState("no active confirmation token; resubmit proof")
	}
	if !s.deps.Hasher.Verify(token, storedHash) {
		_ = tx.Rollback(ctx)
		s.auditFailure(ctx, v, apperror.ErrProofInvalid("confirmation token mismatch"))
		return nil, apperror.ErrProofInvalid("confirmation token mismatch")
	}

	outcome := &ports.MethodOutcome{
		Status:  domain.StatusApproved,
		Action:  domain.AuditActionProofAccepted,
		Message: "out-of-band confirmation accepted",
	}
	if err := s.applyOutcome(ctx, tx, v, outcome); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.deps.Tokens.Delete(ctx, v.ID); err != nil {
		s.log.Warn().Err(err).Int64("verification_id", v.ID).Msg("failed to delete consumed token")
	}
	s.afterDecision(v, outcome.Status)

	return &ports.SubmitResult{Status: outcome.Status, Message: outcome.Message}, nil
}

// GetStatus returns the full request including steps. Expiry is applied
// lazily on read.
func (s *VerificationServiceImpl) GetStatus(ctx context.Context, id int64) (*ports.StatusResult, error) {
	v, err := s.deps.Verifications.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("verification")
	}

	if v.IsExpired(time.Now().UTC()) {
		if expired, err := s.expireOnAccess(ctx, id); err == nil && expired != nil {
			v = expired
		}
	}

	steps, err := s.deps.Steps.ListByVerification(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	return &ports.StatusResult{Request: *v, Steps: steps}, nil
}

// IsVerified reports whether the user holds an approved verification for
// the feature, optionally narrowed to one wallet.
func (s *VerificationServiceImpl) IsVerified(ctx context.Context, userID int64, feature domain.Feature, walletAddress *string) (bool, error) {
	ok, err := s.deps.Verifications.HasApproved(ctx, userID, feature, walletAddress)
	if err != nil {
		return false, apperror.ErrDatabaseError(err)
	}
	return ok, nil
}

// Cancel is the user-initiated exit, allowed only before a decision.
func (s *VerificationServiceImpl) Cancel(ctx context.Context, id int64, userID int64) error {
	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.lockRequest(ctx, tx, id)
	if err != nil {
		return err
	}
	if v.UserID != userID {
		return apperror.ErrForbidden()
	}
	if !v.AcceptsProof() {
		return apperror.ErrInvalidState(fmt.Sprintf("verification is %s", v.Status))
	}

	if err := s.deps.Verifications.UpdateStatus(ctx, tx, v.ID, domain.StatusCancelled, nil); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.deps.Audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         userID,
		Action:         domain.AuditActionCancelled,
	}); err != nil {
		return apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Int64("verification_id", id).Msg("verification cancelled")
	return nil
}

// Override is the privileged transition bypassing normal completion. It
// still writes an audit entry and resolves any open assisted case.
func (s *VerificationServiceImpl) Override(ctx context.Context, id int64, adminID int64, approve bool, reason string) error {
	if reason == "" {
		return apperror.Validation("override requires a reason")
	}

	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.lockRequest(ctx, tx, id)
	if err != nil {
		return err
	}
	if v.IsTerminal() {
		return apperror.ErrInvalidState(fmt.Sprintf("verification is %s", v.Status))
	}

	status := domain.StatusRejected
	if approve {
		status = domain.StatusApproved
	}
	var verifiedAt *time.Time
	if approve {
		now := time.Now().UTC()
		verifiedAt = &now
	}

	if err := s.deps.Verifications.UpdateStatus(ctx, tx, v.ID, status, verifiedAt); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.deps.Verifications.SetOverride(ctx, tx, v.ID, adminID, reason); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if err := s.resolveAssistedCase(ctx, tx, v, adminID, approve, reason); err != nil {
		return err
	}
	if err := s.updateSourceOfFunds(ctx, tx, v, status); err != nil {
		return err
	}

	if err := s.deps.Audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionOverride,
		Details:        map[string]any{"admin_id": adminID, "approved": approve, "reason": reason},
	}); err != nil {
		return apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.afterDecision(v, status)
	s.log.Info().
		Int64("verification_id", id).
		Int64("admin_id", adminID).
		Bool("approved", approve).
		Msg("admin override applied")
	return nil
}

// --- internals ---

func (s *VerificationServiceImpl) lockRequest(ctx context.Context, tx pgx.Tx, id int64) (*domain.VerificationRequest, error) {
	v, err := s.deps.Verifications.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("verification")
	}
	return v, nil
}

// expire performs the lazy transition to expired inside tx.
func (s *VerificationServiceImpl) expire(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest) error {
	if err := s.deps.Verifications.UpdateStatus(ctx, tx, v.ID, domain.StatusExpired, nil); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.updateSourceOfFunds(ctx, tx, v, domain.StatusExpired); err != nil {
		return err
	}
	if err := s.deps.Audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionExpired,
	}); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

// expireOnAccess runs the lazy-expiry transition in its own transaction
// and returns the refreshed row.
func (s *VerificationServiceImpl) expireOnAccess(ctx context.Context, id int64) (*domain.VerificationRequest, error) {
	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.deps.Verifications.GetByIDForUpdate(ctx, tx, id)
	if err != nil || v == nil {
		return nil, err
	}
	if !v.IsExpired(time.Now().UTC()) {
		return v, nil
	}
	if err := s.expire(ctx, tx, v); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	v.Status = domain.StatusExpired
	s.deps.Webhooks.Queue(v.ID, v.UserID, ports.EventVerificationExpired, statusPayload(v, domain.StatusExpired))
	return v, nil
}

// applyOutcome persists a handler's decided result inside tx.
func (s *VerificationServiceImpl) applyOutcome(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest, outcome *ports.MethodOutcome) error {
	if outcome.EncryptedProof != nil {
		if err := s.deps.Verifications.SetProof(ctx, tx, v.ID, *outcome.EncryptedProof); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	var verifiedAt *time.Time
	if outcome.Status == domain.StatusApproved {
		now := time.Now().UTC()
		verifiedAt = &now
	}
	if err := s.deps.Verifications.UpdateStatus(ctx, tx, v.ID, outcome.Status, verifiedAt); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.updateSourceOfFunds(ctx, tx, v, outcome.Status); err != nil {
		return err
	}

	if err := s.deps.Audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         outcome.Action,
		Details:        map[string]any{"status": outcome.Status, "message": outcome.Message},
		IP:             v.ClientIP,
	}); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

// updateSourceOfFunds mirrors terminal request states onto the
// source-of-funds record, when one exists.
func (s *VerificationServiceImpl) updateSourceOfFunds(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest, status domain.Status) error {
	if v.Feature != domain.FeatureWithdrawal {
		return nil
	}

	var sofStatus domain.SourceOfFundsStatus
	switch status {
	case domain.StatusApproved:
		sofStatus = domain.SourceOfFundsVerified
	case domain.StatusRejected, domain.StatusCancelled:
		sofStatus = domain.SourceOfFundsRejected
	case domain.StatusExpired:
		sofStatus = domain.SourceOfFundsExpired
	default:
		return nil
	}

	if err := s.deps.SourceOfFunds.UpdateStatusByVerification(ctx, tx, v.ID, sofStatus); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *VerificationServiceImpl) createSourceOfFunds(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest, amount int64) error {
	now := time.Now().UTC()
	rec := &domain.SourceOfFundsRecord{
		VerificationID:   v.ID,
		Amount:           amount,
		WalletAddress:    v.WalletAddress,
		Method:           v.Method,
		VerificationHash: sourceOfFundsDigest(v.ID, amount, v.WalletAddress, v.Nonce),
		Status:           domain.SourceOfFundsPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.deps.SourceOfFunds.Create(ctx, tx, rec); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("create source-of-funds record: %w", err))
	}
	return nil
}

func (s *VerificationServiceImpl) resolveAssistedCase(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest, adminID int64, approve bool, reason string) error {
	if v.Method != domain.MethodAssisted {
		return nil
	}
	c, err := s.deps.Cases.GetByVerification(ctx, v.ID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if c == nil || c.Status == domain.AssistedCompleted || c.Status == domain.AssistedCancelled {
		return nil
	}

	resultEnc, err := s.deps.Cipher.EncryptJSON(map[string]any{"approved": approve, "reason": reason})
	if err != nil {
		return apperror.ErrCryptoFailure(err)
	}
	status := domain.AssistedCompleted
	if !approve {
		status = domain.AssistedCancelled
	}
	if err := s.deps.Cases.Resolve(ctx, tx, c.ID, adminID, resultEnc, status); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// auditFailure records an undecided submission failure on its own
// transaction, after the operation's transaction rolled back. The error
// text carries codes only, never proof material.
func (s *VerificationServiceImpl) auditFailure(ctx context.Context, v *domain.VerificationRequest, cause error) {
	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to open audit tx for failure record")
		return
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rec := ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionProofFailed,
		Details:        map[string]any{"error": cause.Error()},
		IP:             v.ClientIP,
	}
	if err := s.deps.Audit.LogTransition(ctx, tx, rec); err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to record submission failure")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to commit failure record")
	}
}

// afterDecision runs post-commit side effects: alert detection and
// webhook delivery. Both are fire-and-forget relative to the transition.
func (s *VerificationServiceImpl) afterDecision(v *domain.VerificationRequest, status domain.Status) {
	ctx := context.Background()
	if _, err := s.deps.Compliance.DetectAlerts(ctx, v.ID); err != nil {
		s.log.Warn().Err(err).Int64("verification_id", v.ID).Msg("alert detection failed")
	}

	switch status {
	case domain.StatusApproved:
		s.deps.Webhooks.Queue(v.ID, v.UserID, ports.EventVerificationApproved, statusPayload(v, status))
	case domain.StatusRejected:
		s.deps.Webhooks.Queue(v.ID, v.UserID, ports.EventVerificationRejected, statusPayload(v, status))
	}
}

func statusPayload(v *domain.VerificationRequest, status domain.Status) map[string]any {
	return map[string]any{
		"verification_id": v.ID,
		"user_id":         v.UserID,
		"feature":         v.Feature,
		"status":          status,
	}
}

// buildSnapshot reads the user's history inside tx so the score is
// reproducible from committed data.
func (s *VerificationServiceImpl) buildSnapshot(ctx context.Context, tx pgx.Tx, req ports.CreateRequest) (domain.RiskSnapshot, error) {
	var snap domain.RiskSnapshot
	now := time.Now().UTC()

	ageDays, err := s.deps.Users.AccountAgeDays(ctx, req.UserID)
	if err != nil {
		return snap, apperror.InternalError(fmt.Errorf("fetching account age: %w", err))
	}

	seen, err := s.deps.Verifications.WalletSeen(ctx, tx, req.UserID, req.WalletAddress)
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	rejections, err := s.deps.Verifications.CountRejectedForWallet(ctx, tx, req.WalletAddress)
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	lastHour, err := s.deps.Verifications.CountByUserSince(ctx, tx, req.UserID, now.Add(-time.Hour))
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	ipWallets, err := s.deps.Verifications.CountWalletsForIPSince(ctx, tx, req.ClientIP, now.Add(-24*time.Hour))
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	approvals, err := s.deps.Verifications.CountApprovedByUser(ctx, tx, req.UserID)
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}

	return domain.RiskSnapshot{
		Amount:            req.Amount,
		AccountAgeDays:    ageDays,
		WalletSeenBefore:  seen,
		WalletRejections:  rejections,
		RequestsLastHour:  lastHour,
		WalletsForIPIn24h: ipWallets,
		PriorApprovals:    approvals,
	}, nil
}

// sourceOfFundsDigest binds a source-of-funds record to the exact
// amount, wallet and challenge it was created for.
func sourceOfFundsDigest(verificationID, amount int64, wallet, nonce string) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%s|%s", verificationID, amount, wallet, nonce)))
	return hex.EncodeToString(digest[:])
}

func buildChallenge(userID int64, feature domain.Feature, wallet, nonce string, now time.Time) string {
	return fmt.Sprintf(
		"wallet-verification-gateway: user %d requests %s verification for wallet %s | nonce %s | issued %s",
		userID, feature, wallet, nonce, now.Format(time.RFC3339),
	)
}
