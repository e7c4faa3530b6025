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

// Settle applies an offline transaction to the ledger inside a single
// database transaction. The transaction ID is the idempotency key: a
// replay returns ErrAlreadySettled and leaves balances untouched.
// A payment that drew from several tokens carries the split in
// Allocations; each listed token is debited by its own share.
func (s *Storage) Settle(ctx context.Context, settlement *storage.Settlement) (decimal.Decimal, decimal.Decimal, error) {
	allocations := settlement.Allocations
	if len(allocations) == 0 {
		allocations = []storage.TokenAllocation{{TokenID: settlement.TokenID, Amount: settlement.Amount}}
	}
	total := decimal.Zero
	for _, alloc := range allocations {
		total = total.Add(alloc.Amount)
	}
	if !total.Equal(settlement.Amount) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("allocations sum to %s, amount is %s: %w",
			total, settlement.Amount, storage.ErrInsufficientBalance)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to begin settlement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM settled_transactions WHERE transaction_id = ?`,
		settlement.TransactionID,
	).Scan(&exists)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to check settlement: %w", err)
	}
	if exists > 0 {
		return decimal.Zero, decimal.Zero, storage.ErrAlreadySettled
	}

	for _, alloc := range allocations {
		if err := debitToken(ctx, tx, alloc); err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}

	senderBalance, err := adjustBalance(ctx, tx, settlement.SenderID, settlement.Amount.Neg())
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	recipientBalance, err := adjustBalance(ctx, tx, settlement.RecipientID, settlement.Amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	settledAt := settlement.SettledAt
	if settledAt.IsZero() {
		settledAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settled_transactions
			(transaction_id, token_id, sender_id, recipient_id, amount, currency, direction, device_id, settled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.TransactionID,
		settlement.TokenID,
		settlement.SenderID,
		settlement.RecipientID,
		settlement.Amount.String(),
		settlement.Currency,
		settlement.Direction,
		settlement.DeviceID,
		settledAt,
	)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to record settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return senderBalance, recipientBalance, nil
}

// IsSettled reports whether a transaction ID has already been applied.
func (s *Storage) IsSettled(ctx context.Context, transactionID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM settled_transactions WHERE transaction_id = ?`,
		transactionID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check settlement: %w", err)
	}
	return count > 0, nil
}

func debitToken(ctx context.Context, tx *sql.Tx, alloc storage.TokenAllocation) error {
	token, err := scanToken(tx.QueryRowContext(ctx,
		`SELECT token_id, user_id, device_id, currency, amount, remaining_balance, status, issued_at, expires_at
		 FROM issued_tokens WHERE token_id = ?`,
		alloc.TokenID,
	))
	if err != nil {
		return err
	}

	if token.Status != storage.TokenStatusActive {
		return fmt.Errorf("token %s is %s: %w",
			token.TokenID, token.Status, storage.ErrInsufficientBalance)
	}
	if token.RemainingBalance.LessThan(alloc.Amount) {
		return fmt.Errorf("token %s has %s, need %s: %w",
			token.TokenID, token.RemainingBalance, alloc.Amount, storage.ErrInsufficientBalance)
	}

	newRemaining := token.RemainingBalance.Sub(alloc.Amount)
	newStatus := storage.TokenStatusActive
	if newRemaining.IsZero() {
		newStatus = storage.TokenStatusUsed
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE issued_tokens SET remaining_balance = ?, status = ? WHERE token_id = ?`,
		newRemaining.String(), string(newStatus), token.TokenID,
	)
	if err != nil {
		return fmt.Errorf("failed to debit token: %w", err)
	}
	return nil
}

func adjustBalance(ctx context.Context, tx *sql.Tx, userID string, delta decimal.Decimal) (decimal.Decimal, error) {
	var raw string
	err := tx.QueryRowContext(ctx,
		`SELECT balance FROM users WHERE id = ?`, userID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("user %s: %w", userID, storage.ErrUserNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to load balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("corrupted balance for %s: %w", userID, err)
	}

	balance = balance.Add(delta)
	_, err = tx.ExecContext(ctx,
		`UPDATE users SET balance = ? WHERE id = ?`,
		balance.String(), userID,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update balance: %w", err)
	}

	return balance, nil
}
