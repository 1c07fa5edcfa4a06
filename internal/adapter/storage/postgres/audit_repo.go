package postgres

import (
	"context"
	"fmt"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository. The table is append-only:
// there are no update or delete paths.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Append inserts an entry in the caller's transaction so it commits with
// the transition it records.
func (r *AuditRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries (id, verification_id, user_id, action, encrypted_details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.VerificationID, entry.UserID, entry.Action,
		entry.EncryptedDetails, entry.IPAddress, entry.UserAgent, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByVerification fetches a request's trail in chronological order.
func (r *AuditRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.AuditEntry, error) {
	query := `SELECT id, verification_id, user_id, action, encrypted_details, ip_address, user_agent, created_at
		FROM audit_entries WHERE verification_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, verificationID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		e := domain.AuditEntry{}
		err := rows.Scan(&e.ID, &e.VerificationID, &e.UserID, &e.Action, &e.EncryptedDetails, &e.IPAddress, &e.UserAgent, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return entries, nil
}
