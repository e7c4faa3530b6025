package vault

import "errors"

// Common vault errors
var (
	// ErrTokenNotFound indicates the token does not exist in the vault
	ErrTokenNotFound = errors.New("token not found")

	// ErrNotDeletable indicates the token is not active or already
	// expired and therefore cannot be deleted
	ErrNotDeletable = errors.New("token is not deletable")

	// ErrTransactionNotFound indicates the transaction does not exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidSignature indicates a stored record failed
	// self-verification and is treated as corrupted
	ErrInvalidSignature = errors.New("record signature verification failed")

	// ErrCredentialsNotFound indicates the device is not enrolled with
	// the settlement server
	ErrCredentialsNotFound = errors.New("device credentials not found")
)
