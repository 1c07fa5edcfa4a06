package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SourceOfFundsRepo implements ports.SourceOfFundsRepository.
type SourceOfFundsRepo struct {
	pool Pool
}

// NewSourceOfFundsRepo creates a new SourceOfFundsRepo.
func NewSourceOfFundsRepo(pool Pool) *SourceOfFundsRepo {
	return &SourceOfFundsRepo{pool: pool}
}

// Create inserts a source-of-funds record in the caller's transaction.
func (r *SourceOfFundsRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.SourceOfFundsRecord) error {
	query := `INSERT INTO source_of_funds (verification_id, amount, wallet_address, method,
		encrypted_proof, verification_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := tx.QueryRow(ctx, query,
		rec.VerificationID, rec.Amount, rec.WalletAddress, rec.Method,
		rec.EncryptedProof, rec.VerificationHash, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert source of funds: %w", err)
	}
	return nil
}

// GetByVerification fetches the record tied to a verification.
func (r *SourceOfFundsRepo) GetByVerification(ctx context.Context, verificationID int64) (*domain.SourceOfFundsRecord, error) {
	query := `SELECT id, verification_id, amount, wallet_address, method, encrypted_proof, verification_hash, status, created_at, updated_at
		FROM source_of_funds WHERE verification_id = $1`

	rec := &domain.SourceOfFundsRecord{}
	err := r.pool.QueryRow(ctx, query, verificationID).Scan(
		&rec.ID, &rec.VerificationID, &rec.Amount, &rec.WalletAddress, &rec.Method,
		&rec.EncryptedProof, &rec.VerificationHash, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get source of funds: %w", err)
	}
	return rec, nil
}

// UpdateStatusByVerification mirrors the verification's terminal state
// onto its record. A missing record is not an error: only withdrawals
// have one.
func (r *SourceOfFundsRepo) UpdateStatusByVerification(ctx context.Context, tx pgx.Tx, verificationID int64, status domain.SourceOfFundsStatus) error {
	query := `UPDATE source_of_funds SET status = $1, updated_at = $2 WHERE verification_id = $3`

	if _, err := tx.Exec(ctx, query, status, time.Now().UTC(), verificationID); err != nil {
		return fmt.Errorf("update source of funds status: %w", err)
	}
	return nil
}
