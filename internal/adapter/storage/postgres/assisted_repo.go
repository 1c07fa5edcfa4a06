package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssistedCaseRepo implements ports.AssistedCaseRepository.
type AssistedCaseRepo struct {
	pool Pool
}

// NewAssistedCaseRepo creates a new AssistedCaseRepo.
func NewAssistedCaseRepo(pool Pool) *AssistedCaseRepo {
	return &AssistedCaseRepo{pool: pool}
}

// Create inserts a manual-review case in the caller's transaction.
func (r *AssistedCaseRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.AssistedCase) error {
	query := `INSERT INTO assisted_cases (verification_id, ticket_id, reason, encrypted_user_info, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := tx.QueryRow(ctx, query,
		c.VerificationID, c.TicketID, c.Reason, c.EncryptedUserInfo, c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert assisted case: %w", err)
	}
	return nil
}

// GetByVerification fetches the case tied to a verification.
func (r *AssistedCaseRepo) GetByVerification(ctx context.Context, verificationID int64) (*domain.AssistedCase, error) {
	query := `SELECT id, verification_id, ticket_id, reason, encrypted_user_info, status, assigned_admin, encrypted_result, created_at, updated_at
		FROM assisted_cases WHERE verification_id = $1`

	c := &domain.AssistedCase{}
	err := r.pool.QueryRow(ctx, query, verificationID).Scan(
		&c.ID, &c.VerificationID, &c.TicketID, &c.Reason, &c.EncryptedUserInfo,
		&c.Status, &c.AssignedAdmin, &c.EncryptedResult, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assisted case: %w", err)
	}
	return c, nil
}

// Resolve closes a case with the reviewing admin's encrypted result.
func (r *AssistedCaseRepo) Resolve(ctx context.Context, tx pgx.Tx, id int64, adminID int64, encryptedResult string, status domain.AssistedStatus) error {
	query := `UPDATE assisted_cases SET status = $1, assigned_admin = $2, encrypted_result = $3, updated_at = $4 WHERE id = $5`

	tag, err := tx.Exec(ctx, query, status, adminID, encryptedResult, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("resolve assisted case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assisted case not found: %d", id)
	}
	return nil
}
