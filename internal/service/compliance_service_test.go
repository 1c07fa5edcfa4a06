package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports/mocks"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type complianceTestDeps struct {
	svc        *ComplianceServiceImpl
	verRepo    *mocks.MockVerificationRepository
	stepRepo   *mocks.MockStepRepository
	sofRepo    *mocks.MockSourceOfFundsRepository
	alertRepo  *mocks.MockAlertRepository
	reportRepo *mocks.MockReportRepository
	auditRepo  *mocks.MockAuditRepository
	cipher     *mocks.MockEnvelopeCipher
	audit      *mocks.MockAuditService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupComplianceService(t *testing.T) *complianceTestDeps {
	ctrl := gomock.NewController(t)
	d := &complianceTestDeps{
		verRepo:    mocks.NewMockVerificationRepository(ctrl),
		stepRepo:   mocks.NewMockStepRepository(ctrl),
		sofRepo:    mocks.NewMockSourceOfFundsRepository(ctrl),
		alertRepo:  mocks.NewMockAlertRepository(ctrl),
		reportRepo: mocks.NewMockReportRepository(ctrl),
		auditRepo:  mocks.NewMockAuditRepository(ctrl),
		cipher:     mocks.NewMockEnvelopeCipher(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewComplianceService(
		d.verRepo, d.stepRepo, d.sofRepo, d.alertRepo, d.reportRepo,
		d.auditRepo, d.cipher, d.audit, d.transactor, zerolog.Nop(),
	)
	return d
}

// expectHistory wires the count queries DetectAlerts reads on its
// snapshot transaction.
func (d *complianceTestDeps) expectHistory(ctx context.Context, v *domain.VerificationRequest, rejections, lastHour, approvals, distinctIPs int) {
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.verRepo.EXPECT().CountRejectedForWalletSince(ctx, tx, v.WalletAddress, gomock.Any()).Return(rejections, nil)
	d.verRepo.EXPECT().CountByUserSince(ctx, tx, v.UserID, gomock.Any()).Return(lastHour, nil)
	d.verRepo.EXPECT().CountApprovedByUser(ctx, tx, v.UserID).Return(approvals, nil)
	d.verRepo.EXPECT().CountDistinctIPsSince(ctx, tx, v.UserID, gomock.Any()).Return(distinctIPs, nil)
}

func quietRequest(id int64) *domain.VerificationRequest {
	now := time.Now().UTC()
	return &domain.VerificationRequest{
		ID:            id,
		UserID:        7,
		Feature:       domain.FeatureTrading,
		Method:        domain.MethodStandardSignature,
		WalletAddress: testWallet,
		WalletNetwork: domain.NetworkERC20,
		Status:        domain.StatusApproved,
		RiskLevel:     domain.RiskLow,
		CreatedAt:     now,
		ExpiresAt:     now.Add(2 * time.Hour),
	}
}

// ==================== DetectAlerts ====================

func TestComplianceService_DetectAlerts_NoneFire(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 0, 1, 5, 1)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	assert.Empty(t, fired)
}

func TestComplianceService_DetectAlerts_RepeatedRejections(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 3, 1, 5, 1)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)
	d.alertRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.SecurityAlert) error {
			assert.Equal(t, domain.AlertRepeatedRejections, a.AlertType)
			assert.Equal(t, domain.SeverityHigh, a.Severity)
			assert.Equal(t, domain.AlertStatusNew, a.Status)
			return nil
		})

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	require.Len(t, fired, 1)
}

func TestComplianceService_DetectAlerts_FirstHighValueWithdrawal(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)
	v.Feature = domain.FeatureWithdrawal

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 0, 1, 0, 1)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(&domain.SourceOfFundsRecord{
		VerificationID: 42,
		Amount:         alertHighValueAmount + 1,
	}, nil)
	d.alertRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.SecurityAlert) error {
			assert.Equal(t, domain.AlertFirstHighValue, a.AlertType)
			assert.Equal(t, domain.SeverityMedium, a.Severity)
			return nil
		})

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	require.Len(t, fired, 1)
}

func TestComplianceService_DetectAlerts_RiskScoreAtCutoff(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)
	v.RiskLevel = domain.RiskHigh
	v.RiskScore = 70

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 0, 1, 5, 1)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)
	d.alertRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.SecurityAlert) error {
			assert.Equal(t, domain.AlertHighRiskScore, a.AlertType)
			assert.Equal(t, domain.SeverityHigh, a.Severity)
			return nil
		})

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	require.Len(t, fired, 1)
}

// A score in the high band but under the alert cutoff raises nothing,
// and neither does IP reuse below the six-address mark.
func TestComplianceService_DetectAlerts_BelowCutoffsStaySilent(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)
	v.RiskLevel = domain.RiskHigh
	v.RiskScore = 65

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 0, 1, 5, 4)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	assert.Empty(t, fired)
}

func TestComplianceService_DetectAlerts_MultipleRulesFire(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	v := quietRequest(42)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.expectHistory(ctx, v, 4, 10, 5, 6)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)
	d.alertRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(3)

	fired, err := d.svc.DetectAlerts(ctx, 42)

	require.NoError(t, err)
	types := make([]domain.AlertType, len(fired))
	for i, a := range fired {
		types[i] = a.AlertType
	}
	assert.ElementsMatch(t, []domain.AlertType{
		domain.AlertRepeatedRejections,
		domain.AlertRequestBurst,
		domain.AlertMultipleIPs,
	}, types)
}

func TestComplianceService_DetectAlerts_NotFound(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()

	d.verRepo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	_, err := d.svc.DetectAlerts(ctx, 99)

	assert.True(t, apperror.HasCode(err, "STA_004"))
}

// ==================== GenerateReport ====================

func TestComplianceService_GenerateReport_Success(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	auditTx := &mockTx{}
	v := quietRequest(42)

	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.stepRepo.EXPECT().ListByVerification(ctx, int64(42)).Return(nil, nil)
	d.auditRepo.EXPECT().ListByVerification(ctx, int64(42)).Return([]domain.AuditEntry{
		{VerificationID: 42, Action: domain.AuditActionCreated},
	}, nil)
	d.sofRepo.EXPECT().GetByVerification(ctx, int64(42)).Return(nil, nil)

	var plaintext []byte
	d.cipher.EXPECT().Encrypt(gomock.Any()).DoAndReturn(
		func(raw []byte) (string, error) {
			plaintext = raw
			return "encrypted-report", nil
		})
	d.reportRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(auditTx, nil)
	d.audit.EXPECT().LogTransition(ctx, auditTx, gomock.Any()).Return(nil)

	report, err := d.svc.GenerateReport(ctx, 42, domain.ReportVerificationSummary)

	require.NoError(t, err)
	assert.Equal(t, int64(42), report.VerificationID)
	assert.Equal(t, "encrypted-report", report.EncryptedReportData)

	// The integrity hash covers the exact plaintext handed to the cipher.
	digest := sha256.Sum256(plaintext)
	assert.Equal(t, hex.EncodeToString(digest[:]), report.IntegrityHash)
	assert.WithinDuration(t, time.Now().Add(domain.ReportRetention), report.RetentionUntil, time.Minute)
}

func TestComplianceService_GenerateReport_NotFound(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()

	d.verRepo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	_, err := d.svc.GenerateReport(ctx, 99, domain.ReportVerificationSummary)

	assert.True(t, apperror.HasCode(err, "STA_004"))
}

// ==================== ResolveAlert ====================

func TestComplianceService_ResolveAlert_Success(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	auditTx := &mockTx{}
	alertID := uuid.New()
	v := quietRequest(42)

	d.alertRepo.EXPECT().GetByID(ctx, alertID).Return(&domain.SecurityAlert{
		ID:             alertID,
		VerificationID: 42,
		UserID:         7,
		Status:         domain.AlertStatusNew,
	}, nil)
	d.alertRepo.EXPECT().Resolve(ctx, alertID, int64(99), "reviewed", domain.AlertStatusResolved).Return(nil)
	d.verRepo.EXPECT().GetByID(ctx, int64(42)).Return(v, nil)
	d.transactor.EXPECT().Begin(ctx).Return(auditTx, nil)
	d.audit.EXPECT().LogTransition(ctx, auditTx, gomock.Any()).Return(nil)

	err := d.svc.ResolveAlert(ctx, alertID, 99, "reviewed", domain.AlertStatusResolved)

	require.NoError(t, err)
}

func TestComplianceService_ResolveAlert_AlreadyClosed(t *testing.T) {
	d := setupComplianceService(t)
	ctx := context.Background()
	alertID := uuid.New()

	d.alertRepo.EXPECT().GetByID(ctx, alertID).Return(&domain.SecurityAlert{
		ID:     alertID,
		Status: domain.AlertStatusResolved,
	}, nil)

	err := d.svc.ResolveAlert(ctx, alertID, 99, "", domain.AlertStatusFalsePositive)

	assert.True(t, apperror.HasCode(err, "STA_001"))
}

func TestComplianceService_ResolveAlert_InvalidOutcome(t *testing.T) {
	d := setupComplianceService(t)

	err := d.svc.ResolveAlert(context.Background(), uuid.New(), 99, "", domain.AlertStatusNew)

	assert.True(t, apperror.HasCode(err, "VER_001"))
}
