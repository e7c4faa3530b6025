package settlement

import "errors"

var (
	// ErrNotOnline means the operation needs the settlement server but
	// the device has no connectivity.
	ErrNotOnline = errors.New("device is not online")

	// ErrSettlementFailure means the server rejected or could not be
	// reached for a settlement; the transaction stays pending and gets
	// retried on the next reconcile.
	ErrSettlementFailure = errors.New("settlement failed")

	// ErrPaymentRejected means an inbound payment failed verification;
	// a rejected record is persisted and no balance action is taken.
	ErrPaymentRejected = errors.New("payment rejected")
)
