package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
)

// ErrCommandsDisabled refuses commands from view-only peers
var ErrCommandsDisabled = errors.New("commands disabled")

// CommandSink receives commands decoded from peers
type CommandSink interface {
	Push(event.Command)
}

// Service wraps Transport as a hub-managed service
// Streams snapshots to peers and forwards their commands into the world queue
type Service struct {
	config    *Config
	transport *Transport
	sink      CommandSink

	broadcasts atomic.Uint64
	disabled   atomic.Bool
}

// NewService creates a network service (disabled until given an address)
func NewService() *Service {
	return &Service{
		config: DefaultConfig(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config or string listen address
// args[1]: CommandSink receiving remote commands
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		switch v := args[0].(type) {
		case *Config:
			if v != nil {
				s.config = v
			}
		case string:
			s.config.Address = v
		default:
			return fmt.Errorf("network: unsupported config %T", args[0])
		}
	}
	if len(args) > 1 {
		if sink, ok := args[1].(CommandSink); ok {
			s.sink = sink
		}
	}

	if s.config.Address == "" {
		s.disabled.Store(true)
		return nil
	}
	s.disabled.Store(false)

	s.transport = NewTransport(s.config)
	s.transport.SetHandlers(s.onConnect, s.onDisconnect, s.onMessage)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.transport == nil {
		return nil
	}
	if err := s.transport.Start(); err != nil {
		return fmt.Errorf("network: listen %s: %w", s.config.Address, err)
	}
	log.Printf("network: snapshot stream on ws://%s%s", s.transport.Addr(), s.config.Path)
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.transport != nil {
		return s.transport.Stop()
	}
	return nil
}

// OnTick implements engine.TickObserver
// The snapshot is encoded once per tick and only when a peer is connected
func (s *Service) OnTick(_ engine.TickReport, snap *engine.Snapshot) {
	if s.transport == nil || snap == nil || s.transport.PeerCount() == 0 {
		return
	}
	msg, err := NewSnapshotMessage(snap)
	if err != nil {
		log.Printf("network: encode snapshot %d: %v", snap.Tick, err)
		return
	}
	if s.transport.BroadcastSnapshot(msg) > 0 {
		s.broadcasts.Add(1)
	}
}

// Broadcasts returns the number of ticks whose snapshot reached at least one peer
func (s *Service) Broadcasts() uint64 {
	return s.broadcasts.Load()
}

// onConnect greets the peer with its id and stream parameters
func (s *Service) onConnect(p *Peer) {
	// Unlimited streams report zero; JSON has no infinity
	streamRate := float64(s.config.StreamRate)
	if s.config.StreamRate == rate.Inf {
		streamRate = 0
	}
	hello, err := json.Marshal(Hello{
		Peer:          p.ID,
		StreamRate:    streamRate,
		AllowCommands: s.config.AllowCommands && s.sink != nil,
	})
	if err != nil {
		return
	}
	p.Send(NewMessage(MsgHello, hello))
	log.Printf("network: peer %d connected from %s", p.ID, p.Addr)
}

func (s *Service) onDisconnect(id PeerID) {
	log.Printf("network: peer %d disconnected", id)
}

// onMessage decodes peer commands; every command gets an ack or an error reply
func (s *Service) onMessage(p *Peer, msg *Message) {
	if msg.Type != MsgCommand {
		p.Send(NewErrorMessage(msg.Seq, fmt.Errorf("unexpected message type %q", msg.Type)))
		return
	}
	if !s.config.AllowCommands || s.sink == nil {
		p.Send(NewErrorMessage(msg.Seq, ErrCommandsDisabled))
		return
	}

	cmd, err := event.Decode(msg.Command, msg.Payload)
	if err != nil {
		p.Send(NewErrorMessage(msg.Seq, err))
		return
	}
	s.sink.Push(cmd)
	p.Send(NewAckMessage(msg.Seq))
}

// PeerCount returns connected peer count
func (s *Service) PeerCount() int {
	if s.transport == nil {
		return 0
	}
	return s.transport.PeerCount()
}

// Addr returns the bound address, nil when not serving
func (s *Service) Addr() net.Addr {
	if s.transport == nil {
		return nil
	}
	return s.transport.Addr()
}

// IsRunning returns true if the stream is active
func (s *Service) IsRunning() bool {
	return s.transport != nil && s.transport.IsRunning()
}
