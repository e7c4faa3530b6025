package authz

import "errors"

var (
	// ErrInsufficientAuthorization means the spendable token balance does
	// not cover the requested amount. Nothing is mutated when returned.
	ErrInsufficientAuthorization = errors.New("insufficient authorization balance")

	// ErrNotOnline means the operation needs the ledger but the device
	// has no connectivity.
	ErrNotOnline = errors.New("device is not online")
)
