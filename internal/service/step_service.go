package service

import (
	"context"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// StepOrchestratorService drives tiered withdrawal flows. The parent
// request and all of its steps are created in one transaction, and each
// completion locks the parent row so concurrent submissions of the same
// step serialize.
type StepOrchestratorService struct {
	verifications ports.VerificationRepository
	steps         ports.StepRepository
	sourceOfFunds ports.SourceOfFundsRepository
	risk          ports.RiskAssessor
	users         ports.UserDirectory
	nonces        ports.NonceStore
	audit         ports.AuditService
	webhooks      ports.WebhookNotifier
	transactor    ports.DBTransactor
	log           zerolog.Logger
}

// NewStepOrchestrator creates the tiered-flow orchestrator.
func NewStepOrchestrator(
	verifications ports.VerificationRepository,
	steps ports.StepRepository,
	sourceOfFunds ports.SourceOfFundsRepository,
	risk ports.RiskAssessor,
	users ports.UserDirectory,
	nonces ports.NonceStore,
	audit ports.AuditService,
	webhooks ports.WebhookNotifier,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *StepOrchestratorService {
	return &StepOrchestratorService{
		verifications: verifications,
		steps:         steps,
		sourceOfFunds: sourceOfFunds,
		risk:          risk,
		users:         users,
		nonces:        nonces,
		audit:         audit,
		webhooks:      webhooks,
		transactor:    transactor,
		log:           log,
	}
}

// Initiate creates the parent withdrawal request together with the full
// ordered step list for its tier. The flow starts on step 1.
func (s *StepOrchestratorService) Initiate(ctx context.Context, req ports.InitiateRequest) (*ports.InitiateResult, error) {
	if !domain.ValidNetwork(req.WalletNetwork) {
		return nil, apperror.ErrUnsupportedNetwork()
	}
	if !ValidWalletAddress(req.WalletNetwork, req.WalletAddress) {
		return nil, apperror.ErrInvalidWalletAddress(string(req.WalletNetwork))
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}

	banned, err := s.users.IsBanned(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("checking ban status: %w", err))
	}
	if banned {
		return nil, apperror.ErrForbidden()
	}

	tier := domain.DetermineTier(req.Amount)
	now := time.Now().UTC()
	expiresAt := now.Add(tier.Expiry())

	nonce, err := GenerateNonce()
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}
	if isNew, err := s.nonces.CheckAndSet(ctx, req.UserID, nonce, tier.Expiry()); err != nil {
		s.log.Warn().Err(err).Msg("nonce store error, relying on ledger uniqueness")
	} else if !isNew {
		return nil, apperror.ErrNonceUsed()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	snap, err := s.buildSnapshot(ctx, tx, req, now)
	if err != nil {
		return nil, err
	}
	assessment := s.risk.Assess(snap)

	v := &domain.VerificationRequest{
		UserID:           req.UserID,
		Feature:          domain.FeatureWithdrawal,
		Method:           domain.MethodStandardSignature,
		WalletAddress:    req.WalletAddress,
		WalletNetwork:    req.WalletNetwork,
		ChallengeMessage: buildChallenge(req.UserID, domain.FeatureWithdrawal, req.WalletAddress, nonce, now),
		Nonce:            nonce,
		RiskScore:        assessment.Score,
		RiskLevel:        assessment.Level,
		RiskFactors:      assessment.Factors,
		Status:           domain.StatusVerifying,
		VerificationStep: 1,
		ClientIP:         req.ClientIP,
		CreatedAt:        now,
		ExpiresAt:        expiresAt,
	}
	if err := s.verifications.Create(ctx, tx, v); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create verification: %w", err))
	}

	stepTypes := tier.RequiredSteps()
	steps := make([]domain.VerificationStep, len(stepTypes))
	for i, st := range stepTypes {
		steps[i] = domain.VerificationStep{
			VerificationID: v.ID,
			StepNumber:     i + 1,
			StepType:       st,
			Status:         domain.StepStatusPending,
			CreatedAt:      now,
		}
	}
	if err := s.steps.CreateBatch(ctx, tx, steps); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create steps: %w", err))
	}

	if err := s.createSourceOfFunds(ctx, tx, v, req.Amount, now); err != nil {
		return nil, err
	}

	if err := s.audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionCreated,
		Details: map[string]any{
			"tier":       tier,
			"steps":      len(steps),
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
		Str("tier", string(tier)).
		Int("steps", len(steps)).
		Msg("tiered verification initiated")

	return &ports.InitiateResult{
		ID:        v.ID,
		Tier:      tier,
		Steps:     steps,
		ExpiresAt: expiresAt,
	}, nil
}

// CompleteStep marks the current step complete. Steps complete strictly
// in order; replaying a completed step or jumping ahead is a state
// error, and the final step approves the parent request.
func (s *StepOrchestratorService) CompleteStep(ctx context.Context, id int64, stepNumber int, userID int64) (*ports.StepResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	v, err := s.verifications.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("verification")
	}
	if v.UserID != userID {
		return nil, apperror.ErrForbidden()
	}

	now := time.Now().UTC()
	if v.IsExpired(now) {
		if err := s.expire(ctx, tx, v); err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
		}
		s.webhooks.Queue(v.ID, v.UserID, ports.EventVerificationExpired, statusPayload(v, domain.StatusExpired))
		return nil, apperror.ErrExpired()
	}
	if v.Status != domain.StatusVerifying {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("verification is %s", v.Status))
	}

	step, err := s.steps.GetForUpdate(ctx, tx, v.ID, stepNumber)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if step == nil {
		return nil, apperror.ErrStepOutOfRange()
	}

	if step.Status == domain.StepStatusCompleted {
		return nil, apperror.ErrStepOutOfRange()
	}
	if stepNumber != v.VerificationStep {
		return nil, apperror.ErrStepOutOfRange()
	}

	if err := s.steps.MarkCompleted(ctx, tx, step.ID, now); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	remaining, err := s.steps.ListByVerification(ctx, v.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	lastStep := stepNumber >= len(remaining)

	result := &ports.StepResult{}
	if lastStep {
		if err := s.verifications.UpdateStatus(ctx, tx, v.ID, domain.StatusApproved, &now); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if err := s.sourceOfFunds.UpdateStatusByVerification(ctx, tx, v.ID, domain.SourceOfFundsVerified); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		result.Status = domain.StatusApproved
		result.NextStep = 0
	} else {
		if err := s.verifications.SetStep(ctx, tx, v.ID, stepNumber+1); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		result.Status = domain.StatusVerifying
		result.NextStep = stepNumber + 1
	}

	if err := s.audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionStepCompleted,
		Details: map[string]any{
			"step_number": stepNumber,
			"step_type":   step.StepType,
			"finalized":   lastStep,
		},
		IP: v.ClientIP,
	}); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	if lastStep {
		s.webhooks.Queue(v.ID, v.UserID, ports.EventVerificationApproved, statusPayload(v, domain.StatusApproved))
	} else {
		s.webhooks.Queue(v.ID, v.UserID, ports.EventStepCompleted, map[string]any{
			"verification_id": v.ID,
			"user_id":         v.UserID,
			"completed_step":  stepNumber,
			"next_step":       result.NextStep,
		})
	}

	s.log.Info().
		Int64("verification_id", v.ID).
		Int("step", stepNumber).
		Bool("finalized", lastStep).
		Msg("verification step completed")

	return result, nil
}

func (s *StepOrchestratorService) expire(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest) error {
	if err := s.verifications.UpdateStatus(ctx, tx, v.ID, domain.StatusExpired, nil); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.sourceOfFunds.UpdateStatusByVerification(ctx, tx, v.ID, domain.SourceOfFundsExpired); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := s.audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         domain.AuditActionExpired,
	}); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

func (s *StepOrchestratorService) createSourceOfFunds(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest, amount int64, now time.Time) error {
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
	if err := s.sourceOfFunds.Create(ctx, tx, rec); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("create source-of-funds record: %w", err))
	}
	return nil
}

func (s *StepOrchestratorService) buildSnapshot(ctx context.Context, tx pgx.Tx, req ports.InitiateRequest, now time.Time) (domain.RiskSnapshot, error) {
	var snap domain.RiskSnapshot

	ageDays, err := s.users.AccountAgeDays(ctx, req.UserID)
	if err != nil {
		return snap, apperror.InternalError(fmt.Errorf("fetching account age: %w", err))
	}
	seen, err := s.verifications.WalletSeen(ctx, tx, req.UserID, req.WalletAddress)
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	rejections, err := s.verifications.CountRejectedForWallet(ctx, tx, req.WalletAddress)
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	lastHour, err := s.verifications.CountByUserSince(ctx, tx, req.UserID, now.Add(-time.Hour))
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	ipWallets, err := s.verifications.CountWalletsForIPSince(ctx, tx, req.ClientIP, now.Add(-24*time.Hour))
	if err != nil {
		return snap, apperror.ErrDatabaseError(err)
	}
	approvals, err := s.verifications.CountApprovedByUser(ctx, tx, req.UserID)
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
