package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/server/storage"
)

// CreateUser creates a new wallet account.
func (s *Storage) CreateUser(ctx context.Context, user *storage.User) error {
	query := `
		INSERT INTO users (id, username, currency, balance, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Currency,
		user.Balance.String(),
		user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (s *Storage) GetUser(ctx context.Context, userID string) (*storage.User, error) {
	query := `
		SELECT id, username, currency, balance, created_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

// GetUserByUsername retrieves a user by username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	query := `
		SELECT id, username, currency, balance, created_at
		FROM users
		WHERE username = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *Storage) scanUser(row *sql.Row) (*storage.User, error) {
	user := &storage.User{}
	var balance string

	err := row.Scan(&user.ID, &user.Username, &user.Currency, &balance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("corrupted balance for user %s: %w", user.ID, err)
	}

	return user, nil
}
