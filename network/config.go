package network

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/gravsim/parameter"
)

// Config holds snapshot stream configuration
type Config struct {
	// Address to bind; empty disables the stream
	Address string
	// Path serves the WebSocket upgrade
	Path string

	// AllowCommands accepts command messages from peers; otherwise peers are view-only
	AllowCommands bool

	// Connection limits
	MaxPeers  int
	ReadLimit int64

	// Per-peer snapshot rate
	StreamRate  rate.Limit
	StreamBurst int

	// Timing
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PingInterval time.Duration

	SendQueueSize int
}

// DefaultConfig returns defaults with the stream disabled
func DefaultConfig() *Config {
	return &Config{
		Address:       "",
		Path:          "/ws",
		AllowCommands: true,
		MaxPeers:      16,
		ReadLimit:     64 * 1024,
		StreamRate:    rate.Every(parameter.SnapshotStreamInterval),
		StreamBurst:   parameter.SnapshotStreamBurst,
		ReadTimeout:   60 * time.Second,
		WriteTimeout:  5 * time.Second,
		PingInterval:  20 * time.Second,
		SendQueueSize: 64,
	}
}

// DebugConfig returns config bound to addr for local testing
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
