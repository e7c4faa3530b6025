package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueTokenRequest asks the ledger to mint an offline authorization token.
type IssueTokenRequest struct {
	UserID   string          `json:"user_id"`
	DeviceID string          `json:"device_id"` // full device fingerprint
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	TTLHours int             `json:"ttl_hours,omitempty"` // defaults to server policy
}

// IssueTokenResponse carries the minted token. Funds are NOT deducted at
// issue time; the deduction happens at settlement.
type IssueTokenResponse struct {
	TokenID   string          `json:"token_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	IssuedAt  time.Time       `json:"issued_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// VerifyTokenRequest asks the ledger whether a received payment's token
// is genuine and still covers the claimed amount.
type VerifyTokenRequest struct {
	TokenID        string          `json:"token_id"`
	SenderID       string          `json:"sender_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	SenderDeviceID string          `json:"sender_device_id"` // 10-char partial ID
}

// TokenVerification is the server's judgement on a single token.
type TokenVerification struct {
	TokenExists   bool `json:"token_exists"`
	TokenActive   bool `json:"token_active"`
	BalanceCovers bool `json:"balance_covers"`
	CanProceed    bool `json:"can_proceed"`
}

// SecurityInfo flags anomalies the server noticed while verifying.
type SecurityInfo struct {
	DeviceKnown     bool   `json:"device_known"`
	DoubleSpendRisk bool   `json:"double_spend_risk"`
	Notes           string `json:"notes,omitempty"`
}

// VerifyTokenResponse reports whether the payee may accept the payment.
type VerifyTokenResponse struct {
	Verification TokenVerification `json:"verification_result"`
	SecurityInfo SecurityInfo      `json:"security_info"`
}
