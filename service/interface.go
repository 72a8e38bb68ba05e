// Package service runs the optional subsystems around the simulation
// (audio cues, the metrics endpoint, the snapshot stream) under one lifecycle
package service

// Service is a long-lived subsystem owned by a Hub
//
// The hub drives each service through Init, then Start, then Stop.
// Init receives the args given at registration. Start runs only after
// every service has initialized. Stop may be called more than once.
type Service interface {
	// Name is the key used for lookup and dependency references
	Name() string

	// Dependencies lists services that must initialize and start first
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
