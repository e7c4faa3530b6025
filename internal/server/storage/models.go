package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a wallet account on the central ledger.
type User struct {
	ID        string
	Username  string
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// TokenStatus mirrors the device-side token lifecycle.
type TokenStatus string

const (
	TokenStatusActive  TokenStatus = "active"
	TokenStatusUsed    TokenStatus = "used"
	TokenStatusExpired TokenStatus = "expired"
)

// IssuedToken is the server's record of an offline authorization token.
// RemainingBalance is the server-side view, decremented at settlement
// time, not at device-side allocation time.
type IssuedToken struct {
	TokenID          string
	UserID           string
	DeviceID         string
	Currency         string
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           TokenStatus
	IssuedAt         time.Time
	ExpiresAt        time.Time
}

// Expired reports whether the token is past its expiry.
func (t *IssuedToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TokenAllocation is one token's share of a settled amount.
type TokenAllocation struct {
	TokenID string
	Amount  decimal.Decimal
}

// Settlement is one settled offline transaction. TransactionID is the
// idempotency key: the same transaction settles at most once.
// Allocations lists the per-token split; when empty the full Amount
// debits TokenID.
type Settlement struct {
	TransactionID string
	TokenID       string
	SenderID      string
	RecipientID   string
	Amount        decimal.Decimal
	Currency      string
	Direction     string
	DeviceID      string
	SettledAt     time.Time
	Allocations   []TokenAllocation
}
