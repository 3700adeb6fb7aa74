package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// AllowlistRepository checks emails against the access allow-list. The table
// is read-only from this system's perspective; rows are managed elsewhere.
type AllowlistRepository interface {
	IsAllowed(ctx context.Context, email string) (bool, error)
}

type allowlistRepository struct {
	db DB
}

// NewAllowlistRepository creates a new AllowlistRepository
func NewAllowlistRepository(db DB) AllowlistRepository {
	return &allowlistRepository{db: db}
}

// IsAllowed reports whether the email is on the allow-list. Callers are
// expected to lowercase the email first; the stored entries are lowercase.
func (r *allowlistRepository) IsAllowed(ctx context.Context, email string) (bool, error) {
	sql := `SELECT email FROM allowed_users WHERE email = $1`
	var found string
	err := r.db.QueryRow(ctx, sql, email).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check allow-list: %w", err)
	}
	return true, nil
}
