package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyncStatus represents the settlement state of an offline transaction.
// Transitions are monotonic: pending -> synced or pending -> rejected.
// Offline is a sub-state of pending for transactions accepted without
// connectivity; they re-enter the reconcile loop on the next sync.
type SyncStatus string

const (
	SyncStatusPending  SyncStatus = "pending"
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusRejected SyncStatus = "rejected"
	SyncStatusOffline  SyncStatus = "offline"
)

// NeedsSettlement reports whether a transaction in this state still has
// to be reconciled with the settlement server.
func (s SyncStatus) NeedsSettlement() bool {
	return s == SyncStatusPending || s == SyncStatusOffline
}

// Direction of a transaction relative to the local wallet
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// TokenAllocation records how much of one authorization token a payment
// consumed. A payment larger than any single token carries one entry
// per token it drew from.
type TokenAllocation struct {
	TokenID string          `json:"token_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// OfflineTransaction records a payment made or received over the
// proximity link. It is created exactly once, signed at creation, and
// immutable afterwards except for SyncStatus. Transactions are removed
// only by administrative purge, never by normal flows.
type OfflineTransaction struct {
	Timestamp          time.Time         `json:"timestamp"`
	ID                 string            `json:"id"`
	TokenID            string            `json:"token_id"`
	SenderID           string            `json:"sender_id"`
	RecipientID        string            `json:"recipient_id"`
	Currency           string            `json:"currency"`
	Direction          Direction         `json:"direction"`
	DeviceID           string            `json:"device_id"` // counterparty device (partial fingerprint)
	SyncStatus         SyncStatus        `json:"sync_status"`
	Description        string            `json:"description,omitempty"`
	RejectionReason    string            `json:"rejection_reason,omitempty"`
	Amount             decimal.Decimal   `json:"amount"`
	Allocations        []TokenAllocation `json:"allocations,omitempty"` // per-token split; TokenID is Allocations[0] when present
	SettlementRequired bool              `json:"settlement_required"`
}
