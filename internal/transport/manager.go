package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/models"
)

// DataHandler is invoked once per received payment payload.
type DataHandler func(peerID string, payload *models.SecurePaymentPayload)

// defaultScanWindow bounds a discovery pass; scanning stops by itself
// when the window elapses.
const defaultScanWindow = 10 * time.Second

// Manager drives the proximity connection state machine over a Radio
// driver. One peer at a time: connecting to a new peer supersedes the
// previous connection.
type Manager struct {
	radio      Radio
	logger     *slog.Logger
	scanWindow time.Duration

	mu         sync.Mutex
	state      State
	discovered map[string]Peer
	scanTimer  *time.Timer
	link       Link
	peerID     string
	sessionKey []byte
	handler    DataHandler
}

// NewManager creates a transport manager over the given radio and starts
// accepting inbound connections.
func NewManager(radio Radio, logger *slog.Logger) *Manager {
	m := &Manager{
		radio:      radio,
		logger:     logger,
		scanWindow: defaultScanWindow,
		state:      StateIdle,
		discovered: make(map[string]Peer),
	}
	go m.acceptLoop()
	return m
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// PeerID returns the connected peer's ID, empty when not connected.
func (m *Manager) PeerID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peerID
}

// OnDataReceived registers the handler for incoming payloads. The
// handler runs on the receive goroutine, once per payload.
func (m *Manager) OnDataReceived(handler DataHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// StartScan begins discovery. Calling it while already scanning is a
// no-op. Discovery stops by itself after the scan window.
func (m *Manager) StartScan(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateScanning {
		m.mu.Unlock()
		return nil
	}
	m.state = StateScanning
	m.discovered = make(map[string]Peer)
	m.scanTimer = time.AfterFunc(m.scanWindow, m.StopScan)
	m.mu.Unlock()

	if err := m.radio.Discover(ctx, m.peerFound); err != nil {
		m.mu.Lock()
		m.state = StateIdle
		if m.scanTimer != nil {
			m.scanTimer.Stop()
		}
		m.mu.Unlock()
		return fmt.Errorf("failed to start discovery: %w", err)
	}

	m.logger.Info("Scan started", "window", m.scanWindow)
	return nil
}

// StopScan halts discovery. Safe to call at any time, any number of
// times.
func (m *Manager) StopScan() {
	m.mu.Lock()
	if m.scanTimer != nil {
		m.scanTimer.Stop()
		m.scanTimer = nil
	}
	wasScanning := m.state == StateScanning
	if wasScanning {
		m.state = StateIdle
	}
	m.mu.Unlock()

	m.radio.StopDiscovery()
	if wasScanning {
		m.logger.Info("Scan stopped")
	}
}

func (m *Manager) peerFound(peer Peer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateScanning {
		return
	}
	// re-discovery of a known peer only refreshes its signal data
	m.discovered[peer.ID] = peer
}

// Peers returns the peers seen in the current or most recent scan,
// strongest signal first.
func (m *Manager) Peers() []Peer {
	m.mu.Lock()
	defer m.mu.Unlock()

	peers := make([]Peer, 0, len(m.discovered))
	for _, p := range m.discovered {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool {
		if peers[i].RSSI != peers[j].RSSI {
			return peers[i].RSSI > peers[j].RSSI
		}
		return peers[i].ID < peers[j].ID
	})
	return peers
}

// Connect dials the peer, generates a fresh session key and hands it to
// the other side. An existing connection is superseded.
func (m *Manager) Connect(ctx context.Context, peerID string) error {
	m.StopScan()

	m.mu.Lock()
	if m.link != nil {
		_ = m.link.Close()
		m.link = nil
	}
	m.state = StateConnecting
	m.peerID = peerID
	m.sessionKey = nil
	m.mu.Unlock()

	link, err := m.radio.Dial(ctx, peerID)
	if err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.peerID = ""
		m.mu.Unlock()
		return fmt.Errorf("%w: dial %s: %v", ErrConnection, peerID, err)
	}

	key, err := crypto.NewSessionKey()
	if err != nil {
		_ = link.Close()
		m.mu.Lock()
		m.state = StateDisconnected
		m.peerID = ""
		m.mu.Unlock()
		return fmt.Errorf("failed to generate session key: %w", err)
	}

	// session key handshake: first frame on the wire
	if err := link.Send(append([]byte{frameKey}, key...)); err != nil {
		_ = link.Close()
		m.mu.Lock()
		m.state = StateDisconnected
		m.peerID = ""
		m.mu.Unlock()
		return fmt.Errorf("%w: key handshake with %s: %v", ErrConnection, peerID, err)
	}

	m.mu.Lock()
	m.link = link
	m.sessionKey = key
	m.state = StateConnected
	m.mu.Unlock()

	go m.recvLoop(link, peerID)

	m.logger.Info("Connected to peer", "peer_id", peerID)
	return nil
}

// SessionKey returns the current session key.
func (m *Manager) SessionKey() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateConnected {
		return nil, ErrNotConnected
	}
	if m.sessionKey == nil {
		return nil, ErrNoSessionKey
	}
	key := make([]byte, len(m.sessionKey))
	copy(key, m.sessionKey)
	return key, nil
}

// SendPayload ships one encrypted payment payload to the connected peer.
func (m *Manager) SendPayload(ctx context.Context, payload *models.SecurePaymentPayload) error {
	m.mu.Lock()
	link := m.link
	connected := m.state == StateConnected
	hasKey := m.sessionKey != nil
	m.mu.Unlock()

	if !connected || link == nil {
		return ErrNotConnected
	}
	if !hasKey {
		return ErrNoSessionKey
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := link.Send(append([]byte{framePayload}, data...)); err != nil {
		return fmt.Errorf("%w: send: %v", ErrConnection, err)
	}

	m.logger.Info("Payload sent", "peer_id", link.RemoteID(), "bytes", len(data))
	return nil
}

// Disconnect tears down the current connection. Always safe.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	link := m.link
	m.link = nil
	m.sessionKey = nil
	m.peerID = ""
	m.state = StateDisconnected
	m.mu.Unlock()

	if link != nil {
		_ = link.Close()
		m.logger.Info("Disconnected")
	}
}

// Close tears down the connection and the radio.
func (m *Manager) Close() error {
	m.Disconnect()
	return m.radio.Close()
}

// acceptLoop adopts links opened by remote peers. The dialer's key
// frame completes the session.
func (m *Manager) acceptLoop() {
	for link := range m.radio.Inbound() {
		m.mu.Lock()
		if m.link != nil {
			_ = m.link.Close()
		}
		m.link = link
		m.peerID = link.RemoteID()
		m.sessionKey = nil // set by the incoming key frame
		m.state = StateConnected
		m.mu.Unlock()

		m.logger.Info("Accepted connection", "peer_id", link.RemoteID())
		go m.recvLoop(link, link.RemoteID())
	}
}

func (m *Manager) recvLoop(link Link, peerID string) {
	for frame := range link.Recv() {
		if len(frame) == 0 {
			continue
		}
		switch frame[0] {
		case frameKey:
			key := frame[1:]
			if len(key) != crypto.KeySize {
				m.logger.Warn("Ignoring malformed key frame", "peer_id", peerID, "len", len(key))
				continue
			}
			m.mu.Lock()
			if m.link == link {
				m.sessionKey = key
			}
			m.mu.Unlock()

		case framePayload:
			var payload models.SecurePaymentPayload
			if err := json.Unmarshal(frame[1:], &payload); err != nil {
				m.logger.Warn("Ignoring malformed payload frame", "peer_id", peerID, "error", err)
				continue
			}
			m.mu.Lock()
			handler := m.handler
			m.mu.Unlock()
			if handler != nil {
				handler(peerID, &payload)
			}

		default:
			m.logger.Warn("Ignoring unknown frame type", "peer_id", peerID, "type", frame[0])
		}
	}

	// link died; only transition if it is still the current one
	m.mu.Lock()
	if m.link == link {
		m.link = nil
		m.sessionKey = nil
		m.peerID = ""
		m.state = StateDisconnected
	}
	m.mu.Unlock()
}
