package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayloadAlgorithm is the only AEAD construction the wallet speaks.
const PayloadAlgorithm = "AES-256-GCM"

// PayloadVersion is the over-the-air payload schema version.
const PayloadVersion = "1.0"

// PayloadMetadata travels in the clear next to the encrypted blob.
type PayloadMetadata struct {
	Timestamp      time.Time `json:"timestamp"`
	SenderDeviceID string    `json:"sender_device_id"` // partial fingerprint
	Algorithm      string    `json:"algorithm"`
	Version        string    `json:"version"`
}

// SecurePaymentPayload is the single over-the-air unit exchanged between
// two devices for one payment attempt. EncryptedBlob is AES-256-GCM
// ciphertext; AuthTag is the 16-byte GCM tag and IV the 12-byte nonce,
// all base64 encoded. The tag must match before any byte of the blob is
// trusted; a mismatch is a hard rejection.
type SecurePaymentPayload struct {
	Metadata      PayloadMetadata `json:"metadata"`
	EncryptedBlob string          `json:"encrypted_blob"`
	AuthTag       string          `json:"auth_tag"`
	IV            string          `json:"iv"`
	Algorithm     string          `json:"algorithm"`
}

// PaymentMessage is the plaintext carried inside a SecurePaymentPayload:
// the signed payment details the recipient needs to accept and later
// settle the transaction.
type PaymentMessage struct {
	Timestamp     time.Time         `json:"timestamp"`
	TransactionID string            `json:"transaction_id"`
	TokenID       string            `json:"token_id"`
	SenderID      string            `json:"sender_id"`
	RecipientID   string            `json:"recipient_id"`
	Currency      string            `json:"currency"`
	SenderDevice  string            `json:"sender_device"` // partial fingerprint
	Version       string            `json:"version"`
	Amount        decimal.Decimal   `json:"amount"`
	Allocations   []TokenAllocation `json:"allocations,omitempty"` // per-token split when the payment spans tokens
}
