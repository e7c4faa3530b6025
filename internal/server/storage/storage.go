package storage

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserStorage defines user account persistence.
type UserStorage interface {
	// CreateUser creates a new user. Returns ErrUserExists on a
	// duplicate username.
	CreateUser(ctx context.Context, user *User) error

	// GetUser retrieves a user by ID. Returns ErrUserNotFound if the
	// user doesn't exist.
	GetUser(ctx context.Context, userID string) (*User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// TokenStorage defines issued-token persistence.
type TokenStorage interface {
	// CreateToken records a newly issued token.
	CreateToken(ctx context.Context, token *IssuedToken) error

	// GetToken retrieves a token by ID. Returns ErrTokenNotFound if the
	// token doesn't exist.
	GetToken(ctx context.Context, tokenID string) (*IssuedToken, error)

	// OutstandingAmount sums the remaining balance of a user's active
	// unexpired tokens. Used to cap further issuance.
	OutstandingAmount(ctx context.Context, userID string) (decimal.Decimal, error)
}

// SettlementStorage settles offline transactions atomically.
type SettlementStorage interface {
	// Settle applies one offline transaction: debits the token, moves
	// funds between user balances and records the settlement, all in
	// one database transaction. Returns ErrAlreadySettled on a known
	// transaction ID, ErrTokenNotFound and ErrInsufficientBalance per
	// their meaning.
	Settle(ctx context.Context, settlement *Settlement) (senderBalance, recipientBalance decimal.Decimal, err error)

	// IsSettled reports whether a transaction ID was already settled.
	IsSettled(ctx context.Context, transactionID string) (bool, error)
}

// Storage aggregates everything the settlement server persists.
type Storage interface {
	UserStorage
	TokenStorage
	SettlementStorage

	Close() error
}
