package ports

import (
	"context"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VerificationRepository defines persistence for verification requests.
// Methods accepting pgx.Tx run inside transaction blocks so a state
// transition and its audit entry commit together.
type VerificationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest) error
	GetByID(ctx context.Context, id int64) (*domain.VerificationRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.VerificationRequest, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status domain.Status, verifiedAt *time.Time) error
	SetProof(ctx context.Context, tx pgx.Tx, id int64, encryptedProof string) error
	SetStep(ctx context.Context, tx pgx.Tx, id int64, step int) error
	SetOverride(ctx context.Context, tx pgx.Tx, id int64, adminID int64, reason string) error
	HasApproved(ctx context.Context, userID int64, feature domain.Feature, walletAddress *string) (bool, error)

	// History queries feeding the risk assessor and alert rules. They take
	// the caller's transaction so scoring reads a consistent snapshot.
	CountByUserSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error)
	CountRejectedForWallet(ctx context.Context, tx pgx.Tx, walletAddress string) (int, error)
	CountRejectedForWalletSince(ctx context.Context, tx pgx.Tx, walletAddress string, since time.Time) (int, error)
	CountWalletsForIPSince(ctx context.Context, tx pgx.Tx, ip string, since time.Time) (int, error)
	CountApprovedByUser(ctx context.Context, tx pgx.Tx, userID int64) (int, error)
	CountDistinctIPsSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error)
	WalletSeen(ctx context.Context, tx pgx.Tx, userID int64, walletAddress string) (bool, error)
}

// StepRepository defines persistence for tiered verification steps.
type StepRepository interface {
	CreateBatch(ctx context.Context, tx pgx.Tx, steps []domain.VerificationStep) error
	ListByVerification(ctx context.Context, verificationID int64) ([]domain.VerificationStep, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, verificationID int64, stepNumber int) (*domain.VerificationStep, error)
	MarkCompleted(ctx context.Context, tx pgx.Tx, id int64, completedAt time.Time) error
}

// SourceOfFundsRepository defines persistence for source-of-funds records.
type SourceOfFundsRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.SourceOfFundsRecord) error
	GetByVerification(ctx context.Context, verificationID int64) (*domain.SourceOfFundsRecord, error)
	UpdateStatusByVerification(ctx context.Context, tx pgx.Tx, verificationID int64, status domain.SourceOfFundsStatus) error
}

// AssistedCaseRepository defines persistence for manual-review cases.
type AssistedCaseRepository interface {
	Create(ctx context.Context, tx pgx.Tx, c *domain.AssistedCase) error
	GetByVerification(ctx context.Context, verificationID int64) (*domain.AssistedCase, error)
	Resolve(ctx context.Context, tx pgx.Tx, id int64, adminID int64, encryptedResult string, status domain.AssistedStatus) error
}

// AuditRepository is append-only. Entries are written inside the same
// transaction as the state transition they record.
type AuditRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditEntry) error
	ListByVerification(ctx context.Context, verificationID int64) ([]domain.AuditEntry, error)
}

// AlertRepository defines persistence for security alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.SecurityAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SecurityAlert, error)
	ListOpen(ctx context.Context, limit int) ([]domain.SecurityAlert, error)
	Resolve(ctx context.Context, id uuid.UUID, adminID int64, note string, status domain.AlertStatus) error
}

// ReportRepository is append-only: regenerating a report adds a row.
type ReportRepository interface {
	Append(ctx context.Context, report *domain.ComplianceReport) error
	ListByVerification(ctx context.Context, verificationID int64) ([]domain.ComplianceReport, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
