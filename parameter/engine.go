package parameter

import "time"

// Simulation Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the simulation tick interval driven by the frame loop
	TickInterval = FrameUpdateInterval

	// SnapshotStreamInterval is the minimum spacing between streamed snapshots per client
	SnapshotStreamInterval = 50 * time.Millisecond

	// SnapshotStreamBurst is the number of snapshots a client may receive back-to-back
	SnapshotStreamBurst = 2
)

// Command Queue Limits
const (
	// CommandQueueSize is the fixed capacity of the command ring buffer
	CommandQueueSize = 1024

	// CommandBufferMask is the bitmask for fast modulo operations (1024 - 1)
	CommandBufferMask = 1023

	// MaxSceneBodies caps a scene so its whole batch fits the queue before the first tick
	// The slack covers the startup view commands and the preset's leading commands
	MaxSceneBodies = CommandQueueSize - 8
)

// World Defaults
const (
	// DefaultWorldWidth is the fixed simulation extent width in world units
	DefaultWorldWidth = 1280.0

	// DefaultWorldHeight is the fixed simulation extent height in world units
	DefaultWorldHeight = 720.0

	// MaxBodies caps the arena; AddBody beyond it is rejected
	MaxBodies = 4096
)
