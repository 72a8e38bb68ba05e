package status

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/gravsim/core"
)

const shutdownTimeout = 2 * time.Second

// MetricsService exposes Metrics over HTTP at /metrics
// An empty listen address keeps collection running without a server
type MetricsService struct {
	metrics *Metrics
	addr    string

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewService creates a metrics service
func NewService() *MetricsService {
	return &MetricsService{}
}

// Name implements Service
func (s *MetricsService) Name() string {
	return "status"
}

// Dependencies implements Service
func (s *MetricsService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: string - listen address, empty disables the endpoint
// args[1]: func() uint64 - command queue overflow counter
func (s *MetricsService) Init(args ...any) error {
	var dropped func() uint64
	if len(args) > 0 {
		addr, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("status: listen address must be a string, got %T", args[0])
		}
		s.addr = addr
	}
	if len(args) > 1 {
		if fn, ok := args[1].(func() uint64); ok {
			dropped = fn
		}
	}
	s.metrics = NewMetrics(dropped)
	return nil
}

// Handler serves the private registry
func (s *MetricsService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Start implements Service
func (s *MetricsService) Start() error {
	if s.metrics == nil {
		return errors.New("status: Start before Init")
	}
	if s.addr == "" {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("status: listen %s: %w", s.addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.mu.Lock()
	s.server = srv
	s.listener = ln
	s.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("status: serve: %v", err)
		}
	})
	log.Printf("status: metrics on http://%s/metrics", ln.Addr())
	return nil
}

// Stop implements Service
func (s *MetricsService) Stop() error {
	s.mu.Lock()
	srv := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr returns the bound address, nil when not serving
func (s *MetricsService) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Metrics returns the collector, nil before Init
func (s *MetricsService) Metrics() *Metrics {
	return s.metrics
}
