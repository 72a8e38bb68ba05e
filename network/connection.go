package network

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/gravsim/core"
)

// PeerID identifies a subscriber for the lifetime of the process
type PeerID uint32

// ErrMaxPeers is returned when the subscriber limit is reached
var ErrMaxPeers = errors.New("max peers reached")

// Peer is one WebSocket subscriber with its own outbound queue and snapshot budget
type Peer struct {
	ID   PeerID
	Addr string

	closed atomic.Bool
	seq    atomic.Uint32 // Last outbound sequence number

	conn    *websocket.Conn
	config  *Config
	budget  *rate.Limiter
	outbox  chan *Message
	done    chan struct{}
	release sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	return &Peer{
		ID:     id,
		Addr:   conn.RemoteAddr().String(),
		conn:   conn,
		config: cfg,
		budget: rate.NewLimiter(cfg.StreamRate, cfg.StreamBurst),
		outbox: make(chan *Message, cfg.SendQueueSize),
		done:   make(chan struct{}),
	}
}

// Send stamps msg with the next sequence number and queues it
// Returns false once the peer is closed or while its queue is full
func (p *Peer) Send(msg *Message) bool {
	if p.closed.Load() {
		return false
	}
	msg.Seq = p.seq.Add(1)
	select {
	case p.outbox <- msg:
		return true
	default:
		return false
	}
}

// SendSnapshot queues a copy of msg when the peer's stream budget allows
// A slow peer skips snapshots instead of falling behind on stale ones
func (p *Peer) SendSnapshot(msg *Message) bool {
	if !p.budget.Allow() {
		return false
	}
	copied := *msg
	return p.Send(&copied)
}

// Close ends both I/O loops; safe to call repeatedly
func (p *Peer) Close() {
	p.release.Do(func() {
		p.closed.Store(true)
		close(p.done)
		p.conn.Close()
	})
}

func (p *Peer) extendRead() error {
	return p.conn.SetReadDeadline(time.Now().Add(p.config.ReadTimeout))
}

// receive decodes inbound JSON messages until the connection fails
func (p *Peer) receive(handle func(*Peer, *Message)) {
	defer p.Close()

	p.conn.SetReadLimit(p.config.ReadLimit)
	_ = p.extendRead()
	p.conn.SetPongHandler(func(string) error { return p.extendRead() })

	for {
		var msg Message
		if err := p.conn.ReadJSON(&msg); err != nil {
			return
		}
		_ = p.extendRead()
		handle(p, &msg)
	}
}

// transmit drains the outbox and keeps the connection alive with pings
func (p *Peer) transmit() {
	defer p.Close()

	keepalive := time.NewTicker(p.config.PingInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-p.done:
			return
		case msg := <-p.outbox:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.config.WriteTimeout))
			if err := p.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-keepalive.C:
			deadline := time.Now().Add(p.config.WriteTimeout)
			if err := p.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// PeerSet tracks live subscribers and fans snapshots out to them
type PeerSet struct {
	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	lastID atomic.Uint32
	config *Config

	onJoin    func(*Peer)
	onLeave   func(PeerID)
	onMessage func(*Peer, *Message)
}

// NewPeerSet creates an empty set bounded by cfg.MaxPeers
func NewPeerSet(cfg *Config) *PeerSet {
	return &PeerSet{
		peers:  make(map[PeerID]*Peer),
		config: cfg,
	}
}

// SetHandlers installs the join, leave and inbound message callbacks; any may be nil
func (s *PeerSet) SetHandlers(onJoin func(*Peer), onLeave func(PeerID), onMessage func(*Peer, *Message)) {
	s.onJoin = onJoin
	s.onLeave = onLeave
	s.onMessage = onMessage
}

// Full reports whether the set is at capacity
func (s *PeerSet) Full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers) >= s.config.MaxPeers
}

// Add adopts an upgraded connection and starts its loops
// The connection is closed when the set is full
func (s *PeerSet) Add(conn *websocket.Conn) (PeerID, error) {
	s.mu.Lock()
	if len(s.peers) >= s.config.MaxPeers {
		s.mu.Unlock()
		conn.Close()
		return 0, ErrMaxPeers
	}
	p := newPeer(PeerID(s.lastID.Add(1)), conn, s.config)
	s.peers[p.ID] = p
	s.mu.Unlock()

	if s.onJoin != nil {
		s.onJoin(p)
	}

	core.Go(func() { p.receive(s.dispatch) })
	core.Go(p.transmit)
	core.Go(func() { s.reap(p) })
	return p.ID, nil
}

func (s *PeerSet) dispatch(p *Peer, msg *Message) {
	if s.onMessage != nil {
		s.onMessage(p, msg)
	}
}

// reap removes p once it closes
func (s *PeerSet) reap(p *Peer) {
	<-p.done

	s.mu.Lock()
	delete(s.peers, p.ID)
	s.mu.Unlock()

	if s.onLeave != nil {
		s.onLeave(p.ID)
	}
}

// Send queues msg for one peer
func (s *PeerSet) Send(id PeerID, msg *Message) bool {
	s.mu.RLock()
	p, ok := s.peers[id]
	s.mu.RUnlock()
	return ok && p.Send(msg)
}

// BroadcastSnapshot offers msg to every peer and returns how many queued it
func (s *PeerSet) BroadcastSnapshot(msg *Message) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queued := 0
	for _, p := range s.peers {
		if p.SendSnapshot(msg) {
			queued++
		}
	}
	return queued
}

// Len returns the number of live peers
func (s *PeerSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

// CloseAll disconnects every peer
func (s *PeerSet) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.peers {
		p.Close()
	}
	s.peers = make(map[PeerID]*Peer)
}
