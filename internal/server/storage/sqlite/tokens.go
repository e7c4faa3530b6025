package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/server/storage"
)

// CreateToken records a newly issued offline token.
func (s *Storage) CreateToken(ctx context.Context, token *storage.IssuedToken) error {
	query := `
		INSERT INTO issued_tokens
			(token_id, user_id, device_id, currency, amount, remaining_balance, status, issued_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.TokenID,
		token.UserID,
		token.DeviceID,
		token.Currency,
		token.Amount.String(),
		token.RemainingBalance.String(),
		string(token.Status),
		token.IssuedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	return nil
}

// GetToken retrieves an issued token by ID.
func (s *Storage) GetToken(ctx context.Context, tokenID string) (*storage.IssuedToken, error) {
	query := `
		SELECT token_id, user_id, device_id, currency, amount, remaining_balance, status, issued_at, expires_at
		FROM issued_tokens
		WHERE token_id = ?
	`

	return scanToken(s.db.QueryRowContext(ctx, query, tokenID))
}

// OutstandingAmount sums remaining balances of a user's live tokens.
func (s *Storage) OutstandingAmount(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT remaining_balance
		FROM issued_tokens
		WHERE user_id = ? AND status = 'active' AND expires_at > ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, time.Now().UTC())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query outstanding tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan token balance: %w", err)
		}
		balance, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupted token balance: %w", err)
		}
		total = total.Add(balance)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to iterate tokens: %w", err)
	}

	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner) (*storage.IssuedToken, error) {
	token := &storage.IssuedToken{}
	var amount, remaining, status string

	err := row.Scan(
		&token.TokenID,
		&token.UserID,
		&token.DeviceID,
		&token.Currency,
		&amount,
		&remaining,
		&status,
		&token.IssuedAt,
		&token.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	token.Status = storage.TokenStatus(status)
	if token.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("corrupted token amount: %w", err)
	}
	if token.RemainingBalance, err = decimal.NewFromString(remaining); err != nil {
		return nil, fmt.Errorf("corrupted token balance: %w", err)
	}

	return token, nil
}
