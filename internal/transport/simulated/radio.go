// Package simulated is an in-memory Radio driver for demos and tests.
// Peers on the same Network discover each other with a staggered delay
// and exchange frames through paired channels, mimicking a short-range
// radio without any hardware.
package simulated

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pinkpay/offlinepay/internal/transport"
)

// defaultStagger spaces out simulated discovery events.
const defaultStagger = 200 * time.Millisecond

// linkBuffer bounds in-flight frames per direction.
const linkBuffer = 16

// Network wires simulated radios together. Radios on the same network
// see and can dial each other.
type Network struct {
	mu     sync.Mutex
	radios map[string]*Radio
}

// NewNetwork creates an empty simulated network.
func NewNetwork() *Network {
	return &Network{radios: make(map[string]*Radio)}
}

// AddRadio joins a new radio to the network under the given identity.
func (n *Network) AddRadio(peer transport.Peer) *Radio {
	n.mu.Lock()
	defer n.mu.Unlock()

	r := &Radio{
		network: n,
		self:    peer,
		stagger: defaultStagger,
		inbound: make(chan transport.Link, 1),
	}
	n.radios[peer.ID] = r
	return r
}

func (n *Network) visibleTo(selfID string) []transport.Peer {
	n.mu.Lock()
	defer n.mu.Unlock()

	peers := make([]transport.Peer, 0, len(n.radios))
	for id, r := range n.radios {
		if id == selfID || r.closed {
			continue
		}
		peers = append(peers, r.self)
	}
	return peers
}

func (n *Network) lookup(id string) (*Radio, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	r, ok := n.radios[id]
	if !ok || r.closed {
		return nil, false
	}
	return r, true
}

// Radio is one simulated device on a Network.
type Radio struct {
	network *Network
	self    transport.Peer
	stagger time.Duration

	mu          sync.Mutex
	discovering bool
	discoverGen int
	closed      bool
	inbound     chan transport.Link
}

var _ transport.Radio = (*Radio)(nil)

// SetStagger overrides the delay between simulated discovery events.
func (r *Radio) SetStagger(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagger = d
}

// Discover emits every other radio on the network, one per stagger
// interval, until StopDiscovery.
func (r *Radio) Discover(ctx context.Context, found func(transport.Peer)) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return fmt.Errorf("radio %s is closed", r.self.ID)
	}
	r.discovering = true
	r.discoverGen++
	gen := r.discoverGen
	stagger := r.stagger
	r.mu.Unlock()

	peers := r.network.visibleTo(r.self.ID)

	go func() {
		for _, peer := range peers {
			select {
			case <-ctx.Done():
				return
			case <-time.After(stagger):
			}

			r.mu.Lock()
			active := r.discovering && r.discoverGen == gen
			r.mu.Unlock()
			if !active {
				return
			}
			found(peer)
		}
	}()

	return nil
}

func (r *Radio) StopDiscovery() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discovering = false
}

// Dial connects to another radio on the network. The remote side
// receives the opposite half of the pipe on its Inbound channel.
func (r *Radio) Dial(ctx context.Context, peerID string) (transport.Link, error) {
	remote, ok := r.network.lookup(peerID)
	if !ok {
		return nil, fmt.Errorf("peer %s not reachable", peerID)
	}

	aToB := make(chan []byte, linkBuffer)
	bToA := make(chan []byte, linkBuffer)

	local := &pipeLink{remoteID: peerID, send: aToB, recv: bToA}
	far := &pipeLink{remoteID: r.self.ID, send: bToA, recv: aToB}
	// the two halves share close state so either end can kill the pipe
	shared := &pipeShared{}
	local.shared = shared
	far.shared = shared

	select {
	case remote.inbound <- far:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return local, nil
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
	r.discovering = false
	close(r.inbound)
	r.mu.Unlock()
	return nil
}

// pipeShared is the close state common to both halves of a pipe.
type pipeShared struct {
	mu     sync.Mutex
	closed bool
}

type pipeLink struct {
	remoteID string
	send     chan<- []byte
	recv     chan []byte
	shared   *pipeShared
}

var _ transport.Link = (*pipeLink)(nil)

func (l *pipeLink) Send(frame []byte) error {
	// held across the channel send so Close cannot race it; the send is
	// non-blocking, so no deadlock
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	if l.shared.closed {
		return fmt.Errorf("link to %s is closed", l.remoteID)
	}

	buf := make([]byte, len(frame))
	copy(buf, frame)
	select {
	case l.send <- buf:
		return nil
	default:
		return fmt.Errorf("link to %s is congested", l.remoteID)
	}
}

func (l *pipeLink) Recv() <-chan []byte {
	return l.recv
}

func (l *pipeLink) RemoteID() string {
	return l.remoteID
}

func (l *pipeLink) Close() error {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	if l.shared.closed {
		return nil
	}
	l.shared.closed = true
	// both directions tear down: closing only one half's send channel
	// would leave the other half's reader blocked forever
	close(l.send)
	close(l.recv)
	return nil
}
