package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AlertRepo implements ports.AlertRepository.
type AlertRepo struct {
	pool Pool
}

// NewAlertRepo creates a new AlertRepo.
func NewAlertRepo(pool Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// Create inserts a new security alert.
func (r *AlertRepo) Create(ctx context.Context, alert *domain.SecurityAlert) error {
	query := `INSERT INTO security_alerts (id, verification_id, user_id, alert_type, severity, details, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		alert.ID, alert.VerificationID, alert.UserID, alert.AlertType,
		alert.Severity, alert.Details, alert.Status, alert.CreatedAt, alert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID fetches an alert by UUID.
func (r *AlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SecurityAlert, error) {
	query := `SELECT id, verification_id, user_id, alert_type, severity, details, status, resolved_by, resolution_note, created_at, updated_at
		FROM security_alerts WHERE id = $1`

	a := &domain.SecurityAlert{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.VerificationID, &a.UserID, &a.AlertType, &a.Severity,
		&a.Details, &a.Status, &a.ResolvedBy, &a.ResolutionNote, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert by id: %w", err)
	}
	return a, nil
}

// ListOpen fetches unresolved alerts, newest first.
func (r *AlertRepo) ListOpen(ctx context.Context, limit int) ([]domain.SecurityAlert, error) {
	query := `SELECT id, verification_id, user_id, alert_type, severity, details, status, resolved_by, resolution_note, created_at, updated_at
		FROM security_alerts WHERE status IN ('NEW', 'REVIEWING') ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list open alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.SecurityAlert
	for rows.Next() {
		a := domain.SecurityAlert{}
		err := rows.Scan(&a.ID, &a.VerificationID, &a.UserID, &a.AlertType, &a.Severity,
			&a.Details, &a.Status, &a.ResolvedBy, &a.ResolutionNote, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alert rows: %w", err)
	}
	return alerts, nil
}

// Resolve closes an alert with the reviewer's outcome.
func (r *AlertRepo) Resolve(ctx context.Context, id uuid.UUID, adminID int64, note string, status domain.AlertStatus) error {
	query := `UPDATE security_alerts SET status = $1, resolved_by = $2, resolution_note = $3, updated_at = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, status, adminID, note, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert not found: %s", id)
	}
	return nil
}
