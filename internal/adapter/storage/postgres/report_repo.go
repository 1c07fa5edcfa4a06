package postgres

import (
	"context"
	"fmt"

	"wallet-verification-gateway/internal/core/domain"
)

// ReportRepo implements ports.ReportRepository. Reports are write-once:
// regeneration appends a new row and nothing is ever updated.
type ReportRepo struct {
	pool Pool
}

// NewReportRepo creates a new ReportRepo.
func NewReportRepo(pool Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Append inserts a new report row.
func (r *ReportRepo) Append(ctx context.Context, report *domain.ComplianceReport) error {
	query := `INSERT INTO compliance_reports (id, verification_id, report_type, encrypted_report_data, integrity_hash, retention_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		report.ID, report.VerificationID, report.ReportType,
		report.EncryptedReportData, report.IntegrityHash, report.RetentionUntil, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// ListByVerification fetches all report rows for a verification, newest
// first.
func (r *ReportRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.ComplianceReport, error) {
	query := `SELECT id, verification_id, report_type, encrypted_report_data, integrity_hash, retention_until, created_at
		FROM compliance_reports WHERE verification_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, verificationID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.ComplianceReport
	for rows.Next() {
		rep := domain.ComplianceReport{}
		err := rows.Scan(&rep.ID, &rep.VerificationID, &rep.ReportType,
			&rep.EncryptedReportData, &rep.IntegrityHash, &rep.RetentionUntil, &rep.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	return reports, nil
}
