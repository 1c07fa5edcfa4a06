package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// UserDirectory implements ports.UserDirectory against the platform's
// users table, which this service reads but never writes.
type UserDirectory struct {
	pool Pool
}

// NewUserDirectory creates a new UserDirectory.
func NewUserDirectory(pool Pool) *UserDirectory {
	return &UserDirectory{pool: pool}
}

// AccountAgeDays returns the age of the account in whole days.
func (d *UserDirectory) AccountAgeDays(ctx context.Context, userID int64) (int, error) {
	query := `SELECT created_at FROM users WHERE id = $1`

	var createdAt time.Time
	err := d.pool.QueryRow(ctx, query, userID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user not found: %d", userID)
		}
		return 0, fmt.Errorf("get user created_at: %w", err)
	}
	return int(time.Since(createdAt).Hours() / 24), nil
}

// IsBanned reports whether the account is banned.
func (d *UserDirectory) IsBanned(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT banned FROM users WHERE id = $1`

	var banned bool
	err := d.pool.QueryRow(ctx, query, userID).Scan(&banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("user not found: %d", userID)
		}
		return false, fmt.Errorf("get user ban status: %w", err)
	}
	return banned, nil
}
