package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// entry is one registered service with its Init arguments
type entry struct {
	svc  Service
	args []any
}

// Hub owns registered services and runs their lifecycle in dependency order
type Hub struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string // Registration order
	plan    []string // Dependency order, nil until InitAll
	running []string // Started services, stopped in reverse
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{entries: make(map[string]entry)}
}

// Register adds svc; args are passed to its Init
func (h *Hub) Register(svc Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.entries[name]; dup {
		return fmt.Errorf("service %s: already registered", name)
	}
	h.entries[name] = entry{svc: svc, args: args}
	h.order = append(h.order, name)
	h.plan = nil
	return nil
}

// Get looks up a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entries[name]
	return e.svc, ok
}

// MustGet returns the named service as T, panicking when it is missing or of another type
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service %s: not registered", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: is %T", name, svc))
	}
	return typed
}

// InitAll initializes every service in dependency order
// A failure stops the services initialized so far, newest first
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	plan, err := h.resolve()
	if err != nil {
		return err
	}
	h.plan = plan

	for i, name := range plan {
		e := h.entries[name]
		if err := e.svc.Init(e.args...); err != nil {
			h.unwind(plan[:i])
			return fmt.Errorf("service %s: init: %w", name, err)
		}
	}
	return nil
}

// StartAll starts every service in dependency order
// A failure stops the services started so far, newest first
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.plan == nil {
		return errors.New("service hub: StartAll before InitAll")
	}

	h.running = h.running[:0]
	for _, name := range h.plan {
		if err := h.entries[name].svc.Start(); err != nil {
			h.unwind(h.running)
			h.running = nil
			return fmt.Errorf("service %s: start: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops started services newest first; every Stop runs and errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.unwind(h.running)
	h.running = nil
	return err
}

// Names returns service names in registration order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}

func (h *Hub) unwind(names []string) error {
	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.entries[names[i]].svc.Stop(); err != nil {
			log.Printf("service %s: stop: %v", names[i], err)
			errs = append(errs, fmt.Errorf("service %s: stop: %w", names[i], err))
		}
	}
	return errors.Join(errs...)
}

// resolve orders services so each follows its dependencies (Kahn)
// Independent services keep registration order
func (h *Hub) resolve() ([]string, error) {
	pending := make(map[string]int, len(h.order))
	waiting := make(map[string][]string)
	for _, name := range h.order {
		deps := h.entries[name].svc.Dependencies()
		for _, dep := range deps {
			if _, ok := h.entries[dep]; !ok {
				return nil, fmt.Errorf("service %s: unknown dependency %s", name, dep)
			}
			waiting[dep] = append(waiting[dep], name)
		}
		pending[name] = len(deps)
	}

	ready := make([]string, 0, len(h.order))
	for _, name := range h.order {
		if pending[name] == 0 {
			ready = append(ready, name)
		}
	}

	plan := make([]string, 0, len(h.order))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		plan = append(plan, name)
		for _, next := range waiting[name] {
			if pending[next]--; pending[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(plan) != len(h.order) {
		return nil, errors.New("service hub: dependency cycle")
	}
	return plan, nil
}
