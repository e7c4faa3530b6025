package transport

import "errors"

var (
	// ErrNotConnected means a send was attempted with no connected peer.
	ErrNotConnected = errors.New("no device connected")

	// ErrNoSessionKey means the connection exists but the session key
	// handshake has not completed yet.
	ErrNoSessionKey = errors.New("no session key established")

	// ErrConnection wraps driver-level connect failures.
	ErrConnection = errors.New("connection failed")
)
