package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StepRepo implements ports.StepRepository.
type StepRepo struct {
	pool Pool
}

// NewStepRepo creates a new StepRepo.
func NewStepRepo(pool Pool) *StepRepo {
	return &StepRepo{pool: pool}
}

// CreateBatch inserts all steps of a tiered flow in the creating
// transaction, so the parent and its steps commit together.
func (r *StepRepo) CreateBatch(ctx context.Context, tx pgx.Tx, steps []domain.VerificationStep) error {
	query := `INSERT INTO verification_steps (verification_id, step_number, step_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	for i := range steps {
		s := &steps[i]
		if err := tx.QueryRow(ctx, query, s.VerificationID, s.StepNumber, s.StepType, s.Status, s.CreatedAt).Scan(&s.ID); err != nil {
			return fmt.Errorf("insert step %d: %w", s.StepNumber, err)
		}
	}
	return nil
}

// ListByVerification fetches a request's steps in order.
func (r *StepRepo) ListByVerification(ctx context.Context, verificationID int64) ([]domain.VerificationStep, error) {
	query := `SELECT id, verification_id, step_number, step_type, status, encrypted_data, completed_at, created_at
		FROM verification_steps WHERE verification_id = $1 ORDER BY step_number`

	rows, err := r.pool.Query(ctx, query, verificationID)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()

	var steps []domain.VerificationStep
	for rows.Next() {
		s := domain.VerificationStep{}
		err := rows.Scan(&s.ID, &s.VerificationID, &s.StepNumber, &s.StepType, &s.Status, &s.EncryptedData, &s.CompletedAt, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan step row: %w", err)
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate step rows: %w", err)
	}
	return steps, nil
}

// GetForUpdate fetches one step with a row lock.
func (r *StepRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, verificationID int64, stepNumber int) (*domain.VerificationStep, error) {
	query := `SELECT id, verification_id, step_number, step_type, status, encrypted_data, completed_at, created_at
		FROM verification_steps WHERE verification_id = $1 AND step_number = $2 FOR UPDATE`

	s := &domain.VerificationStep{}
	err := tx.QueryRow(ctx, query, verificationID, stepNumber).Scan(
		&s.ID, &s.VerificationID, &s.StepNumber, &s.StepType, &s.Status, &s.EncryptedData, &s.CompletedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get step for update: %w", err)
	}
	return s, nil
}

// MarkCompleted transitions a step to COMPLETED.
func (r *StepRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id int64, completedAt time.Time) error {
	query := `UPDATE verification_steps SET status = $1, completed_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, domain.StepStatusCompleted, completedAt, id)
	if err != nil {
		return fmt.Errorf("mark step completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("step not found: %d", id)
	}
	return nil
}
