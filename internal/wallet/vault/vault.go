package vault

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/models"
)

//go:generate moq -out vault_mock.go . Vault

// Vault is the tamper-evident local store for authorization tokens and
// offline transactions. It owns device-identity derivation, record
// signing and verification, and the authenticated encryption used for
// over-the-air payment payloads.
//
// All mutations are read-whole-collection, mutate, re-sign,
// write-whole-collection under a single writer; implementations must
// serialize concurrent callers.
type Vault interface {
	// DeviceIdentity returns the persisted install fingerprint, deriving
	// and persisting a new one on first call. It never fails outright:
	// when install entropy is unavailable a random fallback identity is
	// derived instead.
	DeviceIdentity(ctx context.Context) (*models.DeviceIdentity, error)

	// Sign wraps data in a SignedRecord bound to the device fingerprint.
	// Deterministic for identical data.
	Sign(ctx context.Context, data any) (*models.SignedRecord, error)

	// Verify recomputes a record's signature against the local
	// fingerprint. Returns false, never an error, on any mismatch,
	// foreign device prefix, unknown version, or malformed input.
	Verify(ctx context.Context, rec *models.SignedRecord) bool

	// SaveToken stores or replaces a token by TokenID, re-signing the
	// collection.
	SaveToken(ctx context.Context, token *models.AuthorizationToken) error

	// GetTokens returns every verifiable stored token. Records failing
	// self-verification are excluded and logged, not returned.
	GetTokens(ctx context.Context) ([]*models.AuthorizationToken, error)

	// GetActiveTokens returns tokens that count toward authorized spend:
	// active, unexpired, positive remaining balance.
	GetActiveTokens(ctx context.Context) ([]*models.AuthorizationToken, error)

	// DeleteToken removes an active, unexpired token. Returns
	// ErrNotDeletable otherwise and ErrTokenNotFound when absent.
	DeleteToken(ctx context.Context, tokenID string) error

	// SaveTransaction appends a transaction to the signed collection,
	// filling ID, timestamp and sync status when unset.
	SaveTransaction(ctx context.Context, tx *models.OfflineTransaction) error

	// GetTransactions returns every verifiable stored transaction.
	GetTransactions(ctx context.Context) ([]*models.OfflineTransaction, error)

	// UpdateTransactionStatus moves a transaction to the given sync
	// status and re-signs it. Returns ErrTransactionNotFound when absent.
	UpdateTransactionStatus(ctx context.Context, txID string, status models.SyncStatus) error

	// Balance returns the scalar spendable balance.
	Balance(ctx context.Context) (decimal.Decimal, error)

	// SetBalance persists the scalar spendable balance.
	SetBalance(ctx context.Context, balance decimal.Decimal) error

	// EncryptForTransfer seals data with AES-256-GCM under the session
	// key and returns the over-the-air payload.
	EncryptForTransfer(ctx context.Context, data any, sessionKey []byte) (*models.SecurePaymentPayload, error)

	// DecryptFromTransfer verifies the payload's auth tag and returns
	// the plaintext. Fails closed with crypto.ErrAuthTagMismatch; no
	// partial data is ever returned.
	DecryptFromTransfer(ctx context.Context, payload *models.SecurePaymentPayload, sessionKey []byte) ([]byte, error)

	// SaveCredentials seals the device's settlement-server credentials
	// under the vault key.
	SaveCredentials(ctx context.Context, creds *Credentials, vaultKey []byte) error

	// GetCredentials unseals stored credentials. Returns
	// ErrCredentialsNotFound when the device is not enrolled.
	GetCredentials(ctx context.Context, vaultKey []byte) (*Credentials, error)

	// Close releases the underlying store.
	Close() error
}

// Credentials are the wallet's identity against the settlement server,
// stored sealed at rest.
type Credentials struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
