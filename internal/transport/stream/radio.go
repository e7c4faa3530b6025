// Package stream is a Radio driver over ordinary network streams.
// Frames are length-prefixed on a net.Conn; peer IDs are dial
// addresses. Discovery emits a statically configured peer list, which
// stands in for whatever rendezvous the deployment uses.
package stream

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/pinkpay/offlinepay/internal/transport"
)

// maxFrameSize caps one frame. A payment payload is a few kilobytes;
// anything near the cap is garbage or abuse.
const maxFrameSize = 1 << 20

const dialTimeout = 5 * time.Second

// Radio listens for inbound links and dials peers by address.
type Radio struct {
	listener net.Listener
	logger   *slog.Logger
	peers    []transport.Peer

	mu      sync.Mutex
	closed  bool
	inbound chan transport.Link
}

var _ transport.Radio = (*Radio)(nil)

// New starts a stream radio listening on addr. knownPeers is the static
// discovery list (peer ID = dialable address).
func New(addr string, knownPeers []transport.Peer, logger *slog.Logger) (*Radio, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	r := &Radio{
		listener: listener,
		logger:   logger,
		peers:    knownPeers,
		inbound:  make(chan transport.Link, 1),
	}
	go r.acceptLoop()
	return r, nil
}

// Addr returns the bound listen address.
func (r *Radio) Addr() string {
	return r.listener.Addr().String()
}

func (r *Radio) Discover(ctx context.Context, found func(transport.Peer)) error {
	for _, peer := range r.peers {
		found(peer)
	}
	return nil
}

func (r *Radio) StopDiscovery() {}

func (r *Radio) Dial(ctx context.Context, peerID string) (transport.Link, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", peerID)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", peerID, err)
	}
	return newConnLink(conn, peerID, r.logger), nil
}

func (r *Radio) Inbound() <-chan transport.Link {
	return r.inbound
}

func (r *Radio) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()
	return r.listener.Close()
}

func (r *Radio) acceptLoop() {
	defer close(r.inbound)
	for {
		conn, err := r.listener.Accept()
		if err != nil {
			r.mu.Lock()
			closed := r.closed
			r.mu.Unlock()
			if !closed {
				r.logger.Warn("Accept failed", "error", err)
			}
			return
		}
		r.inbound <- newConnLink(conn, conn.RemoteAddr().String(), r.logger)
	}
}

// connLink frames a net.Conn: 4-byte big-endian length, then the frame.
type connLink struct {
	conn     net.Conn
	remoteID string
	logger   *slog.Logger
	recv     chan []byte

	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

var _ transport.Link = (*connLink)(nil)

func newConnLink(conn net.Conn, remoteID string, logger *slog.Logger) *connLink {
	l := &connLink{
		conn:     conn,
		remoteID: remoteID,
		logger:   logger,
		recv:     make(chan []byte, 4),
	}
	go l.readLoop()
	return l
}

func (l *connLink) Send(frame []byte) error {
	if len(frame) > maxFrameSize {
		return fmt.Errorf("frame of %d bytes exceeds limit", len(frame))
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(frame)))
	if _, err := l.conn.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}
	if _, err := l.conn.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

func (l *connLink) Recv() <-chan []byte {
	return l.recv
}

func (l *connLink) RemoteID() string {
	return l.remoteID
}

func (l *connLink) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.conn.Close()
	})
	return l.closeErr
}

func (l *connLink) readLoop() {
	defer close(l.recv)
	defer func() { _ = l.Close() }()

	for {
		var header [4]byte
		if _, err := io.ReadFull(l.conn, header[:]); err != nil {
			if err != io.EOF {
				l.logger.Debug("Link read ended", "peer_id", l.remoteID, "error", err)
			}
			return
		}

		size := binary.BigEndian.Uint32(header[:])
		if size == 0 || size > maxFrameSize {
			l.logger.Warn("Dropping link with bad frame size", "peer_id", l.remoteID, "size", size)
			return
		}

		frame := make([]byte, size)
		if _, err := io.ReadFull(l.conn, frame); err != nil {
			return
		}
		l.recv <- frame
	}
}
