package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
	"wallet-verification-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Alert rule thresholds.
const (
	alertRejectionThreshold = 3
	alertRejectionWindow    = 24 * time.Hour
	alertBurstThreshold     = 5
	alertDistinctIPs        = 5
	alertHighValueAmount    = 5_000
	alertRiskScoreCutoff    = 70
)

// ComplianceServiceImpl runs alert detection rules and produces hashed,
// encrypted compliance reports with a fixed retention horizon.
type ComplianceServiceImpl struct {
	verifications ports.VerificationRepository
	steps         ports.StepRepository
	sourceOfFunds ports.SourceOfFundsRepository
	alerts        ports.AlertRepository
	reports       ports.ReportRepository
	auditTrail    ports.AuditRepository
	cipher        ports.EnvelopeCipher
	audit         ports.AuditService
	transactor    ports.DBTransactor
	log           zerolog.Logger
}

// NewComplianceService creates the compliance engine.
func NewComplianceService(
	verifications ports.VerificationRepository,
	steps ports.StepRepository,
	sourceOfFunds ports.SourceOfFundsRepository,
	alerts ports.AlertRepository,
	reports ports.ReportRepository,
	auditTrail ports.AuditRepository,
	cipher ports.EnvelopeCipher,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ComplianceServiceImpl {
	return &ComplianceServiceImpl{
		verifications: verifications,
		steps:         steps,
		sourceOfFunds: sourceOfFunds,
		alerts:        alerts,
		reports:       reports,
		auditTrail:    auditTrail,
		cipher:        cipher,
		audit:         audit,
		transactor:    transactor,
		log:           log,
	}
}

// DetectAlerts evaluates every rule against the verification's history
// and persists an alert per rule that fires. Detection runs after the
// transition commits and never blocks it.
func (s *ComplianceServiceImpl) DetectAlerts(ctx context.Context, verificationID int64) ([]domain.SecurityAlert, error) {
	v, err := s.verifications.GetByID(ctx, verificationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("verification")
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()

	rejections, err := s.verifications.CountRejectedForWalletSince(ctx, tx, v.WalletAddress, now.Add(-alertRejectionWindow))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	lastHour, err := s.verifications.CountByUserSince(ctx, tx, v.UserID, now.Add(-time.Hour))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	approvals, err := s.verifications.CountApprovedByUser(ctx, tx, v.UserID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	distinctIPs, err := s.verifications.CountDistinctIPsSince(ctx, tx, v.UserID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	var amount int64
	if sof, err := s.sourceOfFunds.GetByVerification(ctx, verificationID); err == nil && sof != nil {
		amount = sof.Amount
	}

	var fired []domain.SecurityAlert

	if rejections >= alertRejectionThreshold {
		fired = append(fired, s.newAlert(v, domain.AlertRepeatedRejections, domain.SeverityHigh,
			fmt.Sprintf("wallet has %d rejected verifications in 24 hours", rejections), now))
	}
	if lastHour > alertBurstThreshold {
		fired = append(fired, s.newAlert(v, domain.AlertRequestBurst, domain.SeverityMedium,
			fmt.Sprintf("%d verification requests in the last hour", lastHour), now))
	}
	if amount > alertHighValueAmount && approvals == 0 {
		fired = append(fired, s.newAlert(v, domain.AlertFirstHighValue, domain.SeverityMedium,
			fmt.Sprintf("first verification for user is a high-value withdrawal of %d", amount), now))
	}
	if distinctIPs > alertDistinctIPs {
		fired = append(fired, s.newAlert(v, domain.AlertMultipleIPs, domain.SeverityMedium,
			fmt.Sprintf("requests from %d distinct IPs in 7 days", distinctIPs), now))
	}
	if v.RiskScore >= alertRiskScoreCutoff {
		fired = append(fired, s.newAlert(v, domain.AlertHighRiskScore, domain.SeverityHigh,
			fmt.Sprintf("risk score %d at or above %d", v.RiskScore, alertRiskScoreCutoff), now))
	}

	for i := range fired {
		if err := s.alerts.Create(ctx, &fired[i]); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("persist alert: %w", err))
		}
		s.log.Warn().
			Int64("verification_id", v.ID).
			Str("alert_type", string(fired[i].AlertType)).
			Str("severity", string(fired[i].Severity)).
			Msg("security alert raised")
	}

	return fired, nil
}

func (s *ComplianceServiceImpl) newAlert(v *domain.VerificationRequest, alertType domain.AlertType, severity domain.AlertSeverity, details string, now time.Time) domain.SecurityAlert {
	return domain.SecurityAlert{
		ID:             uuid.New(),
		VerificationID: v.ID,
		UserID:         v.UserID,
		AlertType:      alertType,
		Severity:       severity,
		Details:        details,
		Status:         domain.AlertStatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// reportPayload is the canonical plaintext form of a compliance report.
// The integrity hash covers its JSON encoding; struct field order keeps
// the encoding deterministic.
type reportPayload struct {
	Verification  domain.VerificationRequest  `json:"verification"`
	Steps         []domain.VerificationStep   `json:"steps,omitempty"`
	SourceOfFunds *domain.SourceOfFundsRecord `json:"source_of_funds,omitempty"`
	AuditTrail    []domain.AuditEntry         `json:"audit_trail"`
	GeneratedAt   time.Time                   `json:"generated_at"`
}

// GenerateReport snapshots the verification's full history into an
// encrypted, hashed, append-only report row retained for seven years.
func (s *ComplianceServiceImpl) GenerateReport(ctx context.Context, verificationID int64, reportType domain.ReportType) (*domain.ComplianceReport, error) {
	v, err := s.verifications.GetByID(ctx, verificationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("verification")
	}

	steps, err := s.steps.ListByVerification(ctx, verificationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	trail, err := s.auditTrail.ListByVerification(ctx, verificationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	sof, err := s.sourceOfFunds.GetByVerification(ctx, verificationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	now := time.Now().UTC()
	payload := reportPayload{
		Verification:  *v,
		Steps:         steps,
		SourceOfFunds: sof,
		AuditTrail:    trail,
		GeneratedAt:   now,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode report: %w", err))
	}
	digest := sha256.Sum256(raw)

	encrypted, err := s.cipher.Encrypt(raw)
	if err != nil {
		return nil, apperror.ErrCryptoFailure(err)
	}

	report := &domain.ComplianceReport{
		ID:                  uuid.New(),
		VerificationID:      verificationID,
		ReportType:          reportType,
		EncryptedReportData: encrypted,
		IntegrityHash:       hex.EncodeToString(digest[:]),
		RetentionUntil:      now.Add(domain.ReportRetention),
		CreatedAt:           now,
	}
	if err := s.reports.Append(ctx, report); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist report: %w", err))
	}

	s.recordComplianceEvent(ctx, v, domain.AuditActionReport, map[string]any{
		"report_id":      report.ID,
		"report_type":    reportType,
		"integrity_hash": report.IntegrityHash,
	})

	s.log.Info().
		Int64("verification_id", verificationID).
		Str("report_type", string(reportType)).
		Str("report_id", report.ID.String()).
		Msg("compliance report generated")

	return report, nil
}

// ResolveAlert closes an alert with a reviewer decision.
func (s *ComplianceServiceImpl) ResolveAlert(ctx context.Context, alertID uuid.UUID, adminID int64, notes string, outcome domain.AlertStatus) error {
	if outcome != domain.AlertStatusResolved && outcome != domain.AlertStatusFalsePositive {
		return apperror.Validation("outcome must be RESOLVED or FALSE_POSITIVE")
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if alert == nil {
		return apperror.ErrNotFound("alert")
	}
	if alert.Status == domain.AlertStatusResolved || alert.Status == domain.AlertStatusFalsePositive {
		return apperror.ErrInvalidState(fmt.Sprintf("alert is %s", alert.Status))
	}

	if err := s.alerts.Resolve(ctx, alertID, adminID, notes, outcome); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if v, err := s.verifications.GetByID(ctx, alert.VerificationID); err == nil && v != nil {
		s.recordComplianceEvent(ctx, v, domain.AuditActionAlertResolved, map[string]any{
			"alert_id": alertID,
			"admin_id": adminID,
			"outcome":  outcome,
		})
	}

	s.log.Info().
		Str("alert_id", alertID.String()).
		Int64("admin_id", adminID).
		Str("outcome", string(outcome)).
		Msg("security alert resolved")
	return nil
}

// recordComplianceEvent writes an audit entry on its own short
// transaction; compliance events happen outside the ledger transitions.
func (s *ComplianceServiceImpl) recordComplianceEvent(ctx context.Context, v *domain.VerificationRequest, action domain.AuditAction, details map[string]any) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to open audit tx")
		return
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.audit.LogTransition(ctx, tx, ports.AuditRecord{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Action:         action,
		Details:        details,
	}); err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to record compliance event")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error().Err(err).Int64("verification_id", v.ID).Msg("failed to commit compliance event")
	}
}
