package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenStatus represents the lifecycle state of an authorization token
type TokenStatus string

const (
	// TokenStatusActive token can still be spent against
	TokenStatusActive TokenStatus = "active"
	// TokenStatusUsed token's remaining balance reached zero
	TokenStatusUsed TokenStatus = "used"
	// TokenStatusExpired token passed its expiry time
	TokenStatusExpired TokenStatus = "expired"
)

// AuthorizationToken is a server-issued permission to spend up to
// RemainingBalance while offline. It is a spending ceiling, not a fund
// transfer: the wallet balance is only debited when a payment is made.
//
// Tokens are minted online by the settlement server and mutated locally
// on every offline spend allocation. A received payment references the
// sender's token by ID only; the recipient never holds a local balance
// for it.
type AuthorizationToken struct {
	IssuedAt         time.Time       `json:"issued_at"`
	ExpiresAt        time.Time       `json:"expires_at"`
	TokenID          string          `json:"token_id"`
	UserID           string          `json:"user_id"`
	Currency         string          `json:"currency"`
	Status           TokenStatus     `json:"status"`
	IssuingDeviceID  string          `json:"issuing_device_id"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// IsExpired reports whether the token is past its expiry at the given
// time. Expiry always wins over the stored status field.
func (t *AuthorizationToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsSpendable reports whether the token counts toward authorized spend:
// active status, not expired, positive remaining balance.
func (t *AuthorizationToken) IsSpendable(now time.Time) bool {
	return t.Status == TokenStatusActive &&
		!t.IsExpired(now) &&
		t.RemainingBalance.IsPositive()
}
