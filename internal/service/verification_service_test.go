package service

import (
	"context"
	"testing"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/internal/core/ports/mocks"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type verificationTestDeps struct {
	svc        *VerificationServiceImpl
	verRepo    *mocks.MockVerificationRepository
	stepRepo   *mocks.MockStepRepository
	sofRepo    *mocks.MockSourceOfFundsRepository
	caseRepo   *mocks.MockAssistedCaseRepository
	handler    *mocks.MockMethodHandler
	tdHandler  *mocks.MockMethodHandler
	cipher     *mocks.MockEnvelopeCipher
	risk       *mocks.MockRiskAssessor
	users      *mocks.MockUserDirectory
	nonces     *mocks.MockNonceStore
	tokens     *mocks.MockConfirmTokenStore
	hasher     *mocks.MockTokenHasher
	audit      *mocks.MockAuditService
	compliance *mocks.MockComplianceService
	webhooks   *mocks.MockWebhookNotifier
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupVerificationService(t *testing.T) *verificationTestDeps {
	ctrl := gomock.NewController(t)
	d := &verificationTestDeps{
		verRepo:    mocks.NewMockVerificationRepository(ctrl),
		stepRepo:   mocks.NewMockStepRepository(ctrl),
		sofRepo:    mocks.NewMockSourceOfFundsRepository(ctrl),
		caseRepo:   mocks.NewMockAssistedCaseRepository(ctrl),
		handler:    mocks.NewMockMethodHandler(ctrl),
		tdHandler:  mocks.NewMockMethodHandler(ctrl),
		cipher:     mocks.NewMockEnvelopeCipher(ctrl),
		risk:       mocks.NewMockRiskAssessor(ctrl),
		users:      mocks.NewMockUserDirectory(ctrl),
		nonces:     mocks.NewMockNonceStore(ctrl),
		tokens:     mocks.NewMockConfirmTokenStore(ctrl),
		hasher:     mocks.NewMockTokenHasher(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
		compliance: mocks.NewMockComplianceService(ctrl),
		webhooks:   mocks.NewMockWebhookNotifier(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.handler.EXPECT().Method().Return(domain.MethodStandardSignature).AnyTimes()
	d.tdHandler.EXPECT().Method().Return(domain.MethodTimeDelayed).AnyTimes()
	d.svc = NewVerificationService(VerificationServiceDeps{
		Verifications: d.verRepo,
		Steps:         d.stepRepo,
		SourceOfFunds: d.sofRepo,
		Cases:         d.caseRepo,
		Handlers:      NewHandlerSet(d.handler, d.tdHandler),
		Cipher:        d.cipher,
		Risk:          d.risk,
		Users:         d.users,
		Nonces:        d.nonces,
		Tokens:        d.tokens,
		Hasher:        d.hasher,
		Audit:         d.audit,
		Compliance:    d.compliance,
		Webhooks:      d.webhooks,
		Transactor:    d.transactor,
	}, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

const testWallet = "0x1111111111111111111111111111111111111111"

// expectSnapshot wires the history queries behind risk scoring.
func (d *verificationTestDeps) expectSnapshot(ctx context.Context, userID int64) {
	d.users.EXPECT().AccountAgeDays(ctx, userID).Return(400, nil)
	d.verRepo.EXPECT().WalletSeen(ctx, gomock.Any(), userID, gomock.Any()).Return(true, nil)
	d.verRepo.EXPECT().CountRejectedForWallet(ctx, gomock.Any(), gomock.Any()).Return(0, nil)
	d.verRepo.EXPECT().CountByUserSince(ctx, gomock.Any(), userID, gomock.Any()).Return(1, nil)
	d.verRepo.EXPECT().CountWalletsForIPSince(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
	d.verRepo.EXPECT().CountApprovedByUser(ctx, gomock.Any(), userID).Return(3, nil)
}

// ==================== Create ====================

func TestVerificationService_Create_Success(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.users.EXPECT().IsBanned(ctx, int64(7)).Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.expectSnapshot(ctx, 7)
	d.risk.EXPECT().Assess(gomock.Any()).Return(domain.RiskAssessment{Score: 5, Level: domain.RiskLow})
	d.nonces.EXPECT().CheckAndSet(ctx, int64(7), gomock.Any(), gomock.Any()).Return(true, nil)
	d.verRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, v *domain.VerificationRequest) error {
			v.ID = 42
			return nil
		})
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.Create(ctx, ports.CreateRequest{
		UserID:        7,
		Feature:       domain.FeatureTrading,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
		ClientIP:      "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, domain.MethodStandardSignature, result.Method)
	assert.Contains(t, result.Challenge, "user 7")
	assert.Contains(t, result.Challenge, result.Nonce)
	assert.Equal(t, domain.RiskLow, result.RiskLevel)
}

func TestVerificationService_Create_WithdrawalCreatesSourceOfFunds(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.users.EXPECT().IsBanned(ctx, int64(7)).Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.expectSnapshot(ctx, 7)
	d.risk.EXPECT().Assess(gomock.Any()).Return(domain.RiskAssessment{Score: 5, Level: domain.RiskLow})
	d.nonces.EXPECT().CheckAndSet(ctx, int64(7), gomock.Any(), gomock.Any()).Return(true, nil)
	d.verRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, v *domain.VerificationRequest) error {
			v.ID = 42
			return nil
		})
	d.sofRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, rec *domain.SourceOfFundsRecord) error {
			assert.Equal(t, int64(42), rec.VerificationID)
			assert.Equal(t, int64(500), rec.Amount)
			assert.NotEmpty(t, rec.VerificationHash)
			assert.Equal(t, domain.SourceOfFundsPending, rec.Status)
			return nil
		})
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)

	_, err := d.svc.Create(ctx, ports.CreateRequest{
		UserID:        7,
		Feature:       domain.FeatureWithdrawal,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
		Amount:        500,
	})

	require.NoError(t, err)
}

func TestVerificationService_Create_BannedUser(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()

	d.users.EXPECT().IsBanned(ctx, int64(7)).Return(true, nil)

	_, err := d.svc.Create(ctx, ports.CreateRequest{
		UserID:        7,
		Feature:       domain.FeatureTrading,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
	})

	assert.True(t, apperror.HasCode(err, "AUTH_002"))
}

func TestVerificationService_Create_InvalidWallet(t *testing.T) {
	d := setupVerificationService(t)

	_, err := d.svc.Create(context.Background(), ports.CreateRequest{
		UserID:        7,
		Feature:       domain.FeatureTrading,
		WalletAddress: "not-a-wallet",
		WalletNetwork: domain.NetworkERC20,
	})

	assert.True(t, apperror.HasCode(err, "VER_002"))
}

func TestVerificationService_Create_UnknownFeature(t *testing.T) {
	d := setupVerificationService(t)

	_, err := d.svc.Create(context.Background(), ports.CreateRequest{
		UserID:        7,
		Feature:       domain.Feature("STAKING"),
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
	})

	assert.True(t, apperror.HasCode(err, "VER_001"))
}

func TestVerificationService_Create_NonceCollision(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.users.EXPECT().IsBanned(ctx, int64(7)).Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.expectSnapshot(ctx, 7)
	d.risk.EXPECT().Assess(gomock.Any()).Return(domain.RiskAssessment{Score: 5, Level: domain.RiskLow})
	d.nonces.EXPECT().CheckAndSet(ctx, int64(7), gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := d.svc.Create(ctx, ports.CreateRequest{
		UserID:        7,
		Feature:       domain.FeatureTrading,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
	})

	assert.True(t, apperror.HasCode(err, "STA_002"))
}

// ==================== SubmitProof ====================

func pendingRequest(id int64) *domain.VerificationRequest {
	now := time.Now().UTC()
	return &domain.VerificationRequest{
		ID:            id,
		UserID:        7,
		Feature:       domain.FeatureTrading,
		Method:        domain.MethodStandardSignature,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
		Status:        domain.StatusPending,
		ClientIP:      "10.0.0.1",
		CreatedAt:     now,
		ExpiresAt:     now.Add(2 * time.Hour),
	}
}

func TestVerificationService_SubmitProof_Approved(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	enc := "encrypted-proof"

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.handler.EXPECT().SubmitProof(ctx, tx, v, gomock.Any()).Return(&ports.MethodOutcome{
		Status:         domain.StatusApproved,
		Action:         domain.AuditActionProofAccepted,
		Message:        "signature verified",
		EncryptedProof: &enc,
	}, nil)
	d.verRepo.EXPECT().SetProof(ctx, tx, int64(42), enc).Return(nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusApproved, gomock.Not(gomock.Nil())).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.compliance.EXPECT().DetectAlerts(gomock.Any(), int64(42)).Return(nil, nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationApproved, gomock.Any())

	result, err := d.svc.SubmitProof(ctx, 42, ports.ProofPayload{
		WalletAddress: testWallet,
		Signature:     "0xsig",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, result.Status)
}

func TestVerificationService_SubmitProof_NotFound(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(99)).Return(nil, nil)

	_, err := d.svc.SubmitProof(ctx, 99, ports.ProofPayload{})

	assert.True(t, apperror.HasCode(err, "STA_004"))
}

func TestVerificationService_SubmitProof_Expired(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusExpired, nil).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationExpired, gomock.Any())

	_, err := d.svc.SubmitProof(ctx, 42, ports.ProofPayload{})

	assert.True(t, apperror.HasCode(err, apperror.CodeExpired))
}

func TestVerificationService_SubmitProof_AlreadyDecided(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.Status = domain.StatusApproved

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)

	_, err := d.svc.SubmitProof(ctx, 42, ports.ProofPayload{})

	assert.True(t, apperror.HasCode(err, "STA_001"))
}

// A time-delayed request parked in verifying accepts another submission
// so a lapsed confirmation token can be reissued.
func TestVerificationService_SubmitProof_TimeDelayedReissue(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.Method = domain.MethodTimeDelayed
	v.Status = domain.StatusVerifying

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.tdHandler.EXPECT().SubmitProof(ctx, tx, v, gomock.Any()).Return(&ports.MethodOutcome{
		Status:  domain.StatusVerifying,
		Action:  domain.AuditActionTokenIssued,
		Message: "confirmation token sent to the provided channel",
	}, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusVerifying, nil).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.compliance.EXPECT().DetectAlerts(gomock.Any(), int64(42)).Return(nil, nil)

	result, err := d.svc.SubmitProof(ctx, 42, ports.ProofPayload{Channel: "user@example.com"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerifying, result.Status)
}

func TestVerificationService_SubmitProof_UndecidedFailureKeepsState(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	auditTx := &mockTx{}
	v := pendingRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.handler.EXPECT().SubmitProof(ctx, tx, v, gomock.Any()).
		Return(nil, apperror.ErrWalletMismatch())

	// Failure is recorded on a fresh transaction after the rollback.
	d.transactor.EXPECT().Begin(ctx).Return(auditTx, nil)
	d.audit.EXPECT().LogTransition(ctx, auditTx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, rec ports.AuditRecord) error {
			assert.Equal(t, domain.AuditActionProofFailed, rec.Action)
			return nil
		})

	_, err := d.svc.SubmitProof(ctx, 42, ports.ProofPayload{})

	assert.True(t, apperror.HasCode(err, "PRF_002"))
}

// ==================== ConfirmToken ====================

func timeDelayedRequest(id int64) *domain.VerificationRequest {
	v := pendingRequest(id)
	v.Method = domain.MethodTimeDelayed
	v.Status = domain.StatusVerifying
	return v
}

func TestVerificationService_ConfirmToken_Success(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := timeDelayedRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.tokens.EXPECT().Get(ctx, int64(42)).Return("stored-hash", nil)
	d.hasher.EXPECT().Verify("token123", "stored-hash").Return(true)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusApproved, gomock.Not(gomock.Nil())).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.tokens.EXPECT().Delete(ctx, int64(42)).Return(nil)
	d.compliance.EXPECT().DetectAlerts(gomock.Any(), int64(42)).Return(nil, nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationApproved, gomock.Any())

	result, err := d.svc.ConfirmToken(ctx, 42, "token123")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, result.Status)
}

func TestVerificationService_ConfirmToken_Mismatch(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	auditTx := &mockTx{}
	v := timeDelayedRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.tokens.EXPECT().Get(ctx, int64(42)).Return("stored-hash", nil)
	d.hasher.EXPECT().Verify("wrong", "stored-hash").Return(false)
	d.transactor.EXPECT().Begin(ctx).Return(auditTx, nil)
	d.audit.EXPECT().LogTransition(ctx, auditTx, gomock.Any()).Return(nil)

	_, err := d.svc.ConfirmToken(ctx, 42, "wrong")

	// The token survives a mismatch; only delivery of the right token
	// consumes it.
	assert.True(t, apperror.HasCode(err, "PRF_001"))
}

func TestVerificationService_ConfirmToken_NoActiveToken(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := timeDelayedRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.tokens.EXPECT().Get(ctx, int64(42)).Return("", nil)

	_, err := d.svc.ConfirmToken(ctx, 42, "token123")

	assert.True(t, apperror.HasCode(err, "STA_001"))
}

func TestVerificationService_ConfirmToken_WrongMethod(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)

	_, err := d.svc.ConfirmToken(ctx, 42, "token123")

	assert.True(t, apperror.HasCode(err, "STA_001"))
}

// ==================== GetStatus / IsVerified ====================

func TestVerificationService_GetStatus_WithSteps(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	v := pendingRequest(42)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.stepRepo.EXPECT().ListByVerification(ctx, int64(42)).Return([]domain.VerificationStep{
		{VerificationID: 42, StepNumber: 1, StepType: domain.StepConfirmDetails},
	}, nil)

	result, err := d.svc.GetStatus(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, result.Request.Status)
	assert.Len(t, result.Steps, 1)
}

func TestVerificationService_GetStatus_LazyExpiry(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusExpired, nil).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationExpired, gomock.Any())
	d.stepRepo.EXPECT().ListByVerification(ctx, int64(42)).Return(nil, nil)

	result, err := d.svc.GetStatus(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, result.Request.Status)
}

func TestVerificationService_IsVerified(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()

	d.verRepo.EXPECT().HasApproved(ctx, int64(7), domain.FeatureTrading, gomock.Nil()).Return(true, nil)

	ok, err := d.svc.IsVerified(ctx, 7, domain.FeatureTrading, nil)

	require.NoError(t, err)
	assert.True(t, ok)
}

// ==================== Cancel / Override ====================

func TestVerificationService_Cancel_WrongOwner(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)

	err := d.svc.Cancel(ctx, 42, 999)

	assert.True(t, apperror.HasCode(err, "AUTH_002"))
}

func TestVerificationService_Cancel_Success(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusCancelled, nil).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.Cancel(ctx, 42, 7)

	require.NoError(t, err)
}

func TestVerificationService_Override_Approve(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusApproved, gomock.Not(gomock.Nil())).Return(nil)
	d.verRepo.EXPECT().SetOverride(ctx, tx, int64(42), int64(99), "manual review done").Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.compliance.EXPECT().DetectAlerts(gomock.Any(), int64(42)).Return(nil, nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationApproved, gomock.Any())

	err := d.svc.Override(ctx, 42, 99, true, "manual review done")

	require.NoError(t, err)
}

func TestVerificationService_Override_ResolvesAssistedCase(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.Method = domain.MethodAssisted
	v.Status = domain.StatusVerifying

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)
	d.verRepo.EXPECT().UpdateStatus(ctx, tx, int64(42), domain.StatusApproved, gomock.Not(gomock.Nil())).Return(nil)
	d.verRepo.EXPECT().SetOverride(ctx, tx, int64(42), int64(99), "identity confirmed").Return(nil)
	d.caseRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(&domain.AssistedCase{
		ID:             5,
		VerificationID: 42,
		Status:         domain.AssistedInProgress,
	}, nil)
	d.cipher.EXPECT().EncryptJSON(gomock.Any()).Return("enc-result", nil)
	d.caseRepo.EXPECT().Resolve(ctx, tx, int64(5), int64(99), "enc-result", domain.AssistedCompleted).Return(nil)
	d.audit.EXPECT().LogTransition(ctx, tx, gomock.Any()).Return(nil)
	d.compliance.EXPECT().DetectAlerts(gomock.Any(), int64(42)).Return(nil, nil)
	d.webhooks.EXPECT().Queue(int64(42), int64(7), ports.EventVerificationApproved, gomock.Any())

	err := d.svc.Override(ctx, 42, 99, true, "identity confirmed")

	require.NoError(t, err)
}

func TestVerificationService_Override_TerminalState(t *testing.T) {
	d := setupVerificationService(t)
	ctx := context.Background()
	tx := &mockTx{}
	v := pendingRequest(42)
	v.Status = domain.StatusRejected

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(v, nil)

	err := d.svc.Override(ctx, 42, 99, true, "reason")

	assert.True(t, apperror.HasCode(err, "STA_001"))
}

func TestVerificationService_Override_RequiresReason(t *testing.T) {
	d := setupVerificationService(t)

	err := d.svc.Override(context.Background(), 42, 99, true, "")

	assert.True(t, apperror.HasCode(err, "VER_001"))
}
