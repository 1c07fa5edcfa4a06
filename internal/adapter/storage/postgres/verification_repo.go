package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-verification-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// VerificationRepo implements ports.VerificationRepository.
type VerificationRepo struct {
	pool Pool
}

// NewVerificationRepo creates a new VerificationRepo.
func NewVerificationRepo(pool Pool) *VerificationRepo {
	return &VerificationRepo{pool: pool}
}

const verificationColumns = `id, user_id, feature, method, wallet_address, wallet_network,
	challenge_message, nonce, encrypted_proof, encrypted_context, risk_score, risk_level, risk_factors,
	status, verification_step, client_ip, created_at, expires_at, verified_at, override_by, override_reason`

// Create inserts a new verification request and assigns its ID.
func (r *VerificationRepo) Create(ctx context.Context, tx pgx.Tx, v *domain.VerificationRequest) error {
	query := `INSERT INTO verification_requests (user_id, feature, method, wallet_address, wallet_network,
		challenge_message, nonce, encrypted_context, risk_score, risk_level, risk_factors,
		status, verification_step, client_ip, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		v.UserID, v.Feature, v.Method, v.WalletAddress, v.WalletNetwork,
		v.ChallengeMessage, v.Nonce, v.EncryptedContext, v.RiskScore, v.RiskLevel, v.RiskFactors,
		v.Status, v.VerificationStep, v.ClientIP, v.CreatedAt, v.ExpiresAt,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert verification: %w", err)
	}
	return nil
}

// GetByID fetches a verification request by ID.
func (r *VerificationRepo) GetByID(ctx context.Context, id int64) (*domain.VerificationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM verification_requests WHERE id = $1`, verificationColumns)
	return r.scanVerification(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a verification request with a row lock so
// concurrent submissions against the same request serialize.
func (r *VerificationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.VerificationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM verification_requests WHERE id = $1 FOR UPDATE`, verificationColumns)
	return r.scanVerification(tx.QueryRow(ctx, query, id))
}

// UpdateStatus transitions a verification request's status.
func (r *VerificationRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status domain.Status, verifiedAt *time.Time) error {
	query := `UPDATE verification_requests SET status = $1, verified_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, verifiedAt, id)
	if err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("verification not found: %d", id)
	}
	return nil
}

// SetProof stores the encrypted proof blob.
func (r *VerificationRepo) SetProof(ctx context.Context, tx pgx.Tx, id int64, encryptedProof string) error {
	query := `UPDATE verification_requests SET encrypted_proof = $1 WHERE id = $2`

	if _, err := tx.Exec(ctx, query, encryptedProof, id); err != nil {
		return fmt.Errorf("set verification proof: %w", err)
	}
	return nil
}

// SetStep advances the current step pointer of a tiered flow.
func (r *VerificationRepo) SetStep(ctx context.Context, tx pgx.Tx, id int64, step int) error {
	query := `UPDATE verification_requests SET verification_step = $1 WHERE id = $2`

	if _, err := tx.Exec(ctx, query, step, id); err != nil {
		return fmt.Errorf("set verification step: %w", err)
	}
	return nil
}

// SetOverride records the admin identity and reason for an override.
func (r *VerificationRepo) SetOverride(ctx context.Context, tx pgx.Tx, id int64, adminID int64, reason string) error {
	query := `UPDATE verification_requests SET override_by = $1, override_reason = $2 WHERE id = $3`

	if _, err := tx.Exec(ctx, query, adminID, reason, id); err != nil {
		return fmt.Errorf("set verification override: %w", err)
	}
	return nil
}

// HasApproved reports whether an unexpired approved verification exists
// for the user and feature, optionally narrowed to a wallet.
func (r *VerificationRepo) HasApproved(ctx context.Context, userID int64, feature domain.Feature, walletAddress *string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM verification_requests
		WHERE user_id = $1 AND feature = $2 AND status = 'APPROVED'
		AND ($3::text IS NULL OR lower(wallet_address) = lower($3)))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, feature, walletAddress).Scan(&exists); err != nil {
		return false, fmt.Errorf("check approved verification: %w", err)
	}
	return exists, nil
}

// CountByUserSince counts requests created by the user after since.
func (r *VerificationRepo) CountByUserSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM verification_requests WHERE user_id = $1 AND created_at >= $2`

	var n int
	if err := tx.QueryRow(ctx, query, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count requests by user: %w", err)
	}
	return n, nil
}

// CountRejectedForWallet counts rejected verifications for a wallet
// across all users.
func (r *VerificationRepo) CountRejectedForWallet(ctx context.Context, tx pgx.Tx, walletAddress string) (int, error) {
	query := `SELECT COUNT(*) FROM verification_requests WHERE lower(wallet_address) = lower($1) AND status = 'REJECTED'`

	var n int
	if err := tx.QueryRow(ctx, query, walletAddress).Scan(&n); err != nil {
		return 0, fmt.Errorf("count wallet rejections: %w", err)
	}
	return n, nil
}

// CountRejectedForWalletSince counts rejected verifications for a
// wallet after since, feeding the windowed alert rule.
func (r *VerificationRepo) CountRejectedForWalletSince(ctx context.Context, tx pgx.Tx, walletAddress string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM verification_requests
		WHERE lower(wallet_address) = lower($1) AND status = 'REJECTED' AND created_at >= $2`

	var n int
	if err := tx.QueryRow(ctx, query, walletAddress, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recent wallet rejections: %w", err)
	}
	return n, nil
}

// CountWalletsForIPSince counts distinct wallets submitted from one IP
// after since.
func (r *VerificationRepo) CountWalletsForIPSince(ctx context.Context, tx pgx.Tx, ip string, since time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT lower(wallet_address)) FROM verification_requests
		WHERE client_ip = $1 AND created_at >= $2`

	var n int
	if err := tx.QueryRow(ctx, query, ip, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count wallets for ip: %w", err)
	}
	return n, nil
}

// CountApprovedByUser counts the user's approved verifications.
func (r *VerificationRepo) CountApprovedByUser(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM verification_requests WHERE user_id = $1 AND status = 'APPROVED'`

	var n int
	if err := tx.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count approved by user: %w", err)
	}
	return n, nil
}

// CountDistinctIPsSince counts distinct client IPs used by the user
// after since.
func (r *VerificationRepo) CountDistinctIPsSince(ctx context.Context, tx pgx.Tx, userID int64, since time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT client_ip) FROM verification_requests
		WHERE user_id = $1 AND created_at >= $2 AND client_ip <> ''`

	var n int
	if err := tx.QueryRow(ctx, query, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count distinct ips: %w", err)
	}
	return n, nil
}

// WalletSeen reports whether the user has ever verified with this wallet.
func (r *VerificationRepo) WalletSeen(ctx context.Context, tx pgx.Tx, userID int64, walletAddress string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM verification_requests
		WHERE user_id = $1 AND lower(wallet_address) = lower($2) AND status = 'APPROVED')`

	var seen bool
	if err := tx.QueryRow(ctx, query, userID, walletAddress).Scan(&seen); err != nil {
		return false, fmt.Errorf("check wallet seen: %w", err)
	}
	return seen, nil
}

// scanVerification is a helper to scan a single row into a VerificationRequest.
func (r *VerificationRepo) scanVerification(row pgx.Row) (*domain.VerificationRequest, error) {
	v := &domain.VerificationRequest{}
	err := row.Scan(
		&v.ID, &v.UserID, &v.Feature, &v.Method, &v.WalletAddress, &v.WalletNetwork,
		&v.ChallengeMessage, &v.Nonce, &v.EncryptedProof, &v.EncryptedContext,
		&v.RiskScore, &v.RiskLevel, &v.RiskFactors,
		&v.Status, &v.VerificationStep, &v.ClientIP,
		&v.CreatedAt, &v.ExpiresAt, &v.VerifiedAt, &v.OverrideBy, &v.OverrideReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan verification: %w", err)
	}
	return v, nil
}
