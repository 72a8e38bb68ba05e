package network

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gravsim/core"
)

// Transport serves the WebSocket endpoint and owns the peer set
type Transport struct {
	config   *Config
	upgrader websocket.Upgrader
	peers    *PeerSet

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener

	running atomic.Bool
}

// NewTransport creates a transport with the given configuration
func NewTransport(cfg *Config) *Transport {
	return &Transport{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 64 * 1024,
			// Viewers are served from arbitrary local origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		peers: NewPeerSet(cfg),
	}
}

// SetHandlers configures message and connection callbacks
func (t *Transport) SetHandlers(
	onConnect func(*Peer),
	onDisconnect func(PeerID),
	onMessage func(*Peer, *Message),
) {
	t.peers.SetHandlers(onConnect, onDisconnect, onMessage)
}

// ServeHTTP upgrades the request and registers the peer
func (t *Transport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if t.peers.Full() {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		return
	}
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		return
	}
	if _, err := t.peers.Add(conn); err != nil {
		log.Printf("network: %s: %v", r.RemoteAddr, err)
	}
}

// Start binds the listener and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", t.config.Address)
	if err != nil {
		t.running.Store(false)
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(t.config.Path, t)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	t.mu.Lock()
	t.server = srv
	t.listener = ln
	t.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("network: serve: %v", err)
		}
	})
	return nil
}

// Stop closes the listener and all peers
func (t *Transport) Stop() error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}

	t.mu.Lock()
	srv := t.server
	t.server = nil
	t.listener = nil
	t.mu.Unlock()

	// Hijacked connections are not tracked by Shutdown
	t.peers.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), t.config.WriteTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr returns the bound address, nil when stopped
func (t *Transport) Addr() net.Addr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Send transmits to a specific peer
func (t *Transport) Send(id PeerID, msg *Message) bool {
	return t.peers.Send(id, msg)
}

// BroadcastSnapshot offers a snapshot to all peers
func (t *Transport) BroadcastSnapshot(msg *Message) int {
	return t.peers.BroadcastSnapshot(msg)
}

// PeerCount returns connected peer count
func (t *Transport) PeerCount() int {
	return t.peers.Len()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
