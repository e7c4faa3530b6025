package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenAllocation is one token's share of a settled amount.
type TokenAllocation struct {
	TokenID string          `json:"token_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// SettleRequest settles one offline transaction against the central
// ledger. The transaction ID doubles as the idempotency key: settling
// the same ID twice is a no-op on the server.
type SettleRequest struct {
	TransactionID string            `json:"transaction_id"`
	TokenID       string            `json:"token_id"`
	SenderID      string            `json:"sender_id"`
	RecipientID   string            `json:"recipient_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Direction     string            `json:"direction"`
	DeviceID      string            `json:"device_id"`
	Timestamp     time.Time         `json:"timestamp"`
	Allocations   []TokenAllocation `json:"allocations,omitempty"` // per-token split; empty means all of TokenID
}

// BalanceUpdates carries the post-settlement balances the server computed.
type BalanceUpdates struct {
	SenderBalance    decimal.Decimal `json:"sender_balance"`
	RecipientBalance decimal.Decimal `json:"recipient_balance"`
}

// SettleResponse reports the settlement outcome.
type SettleResponse struct {
	Success        bool            `json:"success"`
	AlreadySettled bool            `json:"already_settled,omitempty"`
	BalanceUpdates *BalanceUpdates `json:"balance_updates,omitempty"`
	Message        string          `json:"message,omitempty"`
}

// SyncReceivedRequest reports payments accepted while the payee was
// offline so the ledger can credit them.
type SyncReceivedRequest struct {
	RecipientID  string          `json:"recipient_id"`
	DeviceID     string          `json:"device_id"`
	Transactions []SettleRequest `json:"transactions"`
}

// SyncReceivedResponse summarizes the batch result per transaction.
type SyncReceivedResponse struct {
	Synced  []string        `json:"synced"`  // transaction IDs credited
	Failed  []string        `json:"failed"`  // transaction IDs rejected
	Balance decimal.Decimal `json:"balance"` // recipient balance after credit
}
