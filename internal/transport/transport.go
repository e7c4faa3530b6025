// Package transport implements the proximity channel used to hand a
// payment payload from one device to another. The Manager owns the
// connection state machine; the actual radio technology hides behind
// the Radio driver interface.
package transport

import "context"

//go:generate moq -out radio_mock.go . Radio Link

// State is the manager's connection state.
type State string

const (
	StateIdle         State = "idle"
	StateScanning     State = "scanning"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateDisconnected State = "disconnected"
)

// Peer is a nearby device seen during discovery.
type Peer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	RSSI int    `json:"rssi"`
}

// Radio is the driver interface a concrete proximity technology
// implements. Drivers move frames; the Manager owns sessions, keys and
// payload semantics.
type Radio interface {
	// Discover starts emitting nearby peers through found. It returns
	// once discovery is running; found may be called until
	// StopDiscovery.
	Discover(ctx context.Context, found func(Peer)) error

	// StopDiscovery halts discovery. Safe to call when not discovering.
	StopDiscovery()

	// Dial opens a frame link to the given peer.
	Dial(ctx context.Context, peerID string) (Link, error)

	// Inbound delivers links opened by remote peers.
	Inbound() <-chan Link

	// Close releases the radio. All links die with it.
	Close() error
}

// Link is a bidirectional frame pipe to one peer.
type Link interface {
	// Send writes one frame. Blocks until accepted or the link dies.
	Send(frame []byte) error

	// Recv yields incoming frames. Closed when the link dies.
	Recv() <-chan []byte

	// RemoteID identifies the peer on the other end.
	RemoteID() string

	Close() error
}

// Frame type prefixes. The first byte of every frame says what the rest
// of it is.
const (
	frameKey     byte = 0x01 // session key handshake, sent once by the dialer
	framePayload byte = 0x02 // JSON-encoded SecurePaymentPayload
)
