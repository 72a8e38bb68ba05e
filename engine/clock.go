package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gravsim/core"
)

// TickObserver receives every tick outcome on the clock goroutine
// Implementations must not block; snap is shared and must be treated as read-only
type TickObserver interface {
	OnTick(report TickReport, snap *Snapshot)
}

// TickObserverFunc adapts a function to TickObserver
type TickObserverFunc func(report TickReport, snap *Snapshot)

func (f TickObserverFunc) OnTick(report TickReport, snap *Snapshot) { f(report, snap) }

// Clock drives World.Tick on a fixed interval
// Handles drift correction without busy-wait and publishes the latest snapshot
type Clock struct {
	world    *World
	interval time.Duration

	observers []TickObserver
	latest    atomic.Pointer[Snapshot]
	tickCount atomic.Uint64

	nextTickDeadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a clock ticking world every interval
func NewClock(world *World, interval time.Duration) *Clock {
	c := &Clock{
		world:    world,
		interval: interval,
		stopChan: make(chan struct{}),
	}
	snap := world.Snapshot()
	c.latest.Store(&snap)
	return c
}

// Observe registers an observer, must be called before Start()
func (c *Clock) Observe(o TickObserver) {
	c.observers = append(c.observers, o)
}

// Latest returns the most recently published snapshot
func (c *Clock) Latest() *Snapshot {
	return c.latest.Load()
}

// Ticks returns the number of completed Step calls
func (c *Clock) Ticks() uint64 {
	return c.tickCount.Load()
}

// Step runs one tick synchronously, publishes its snapshot and notifies observers
func (c *Clock) Step() (TickReport, *Snapshot) {
	report := c.world.Tick()
	snap := c.world.Snapshot()
	c.latest.Store(&snap)
	c.tickCount.Add(1)

	for _, o := range c.observers {
		o.OnTick(report, &snap)
	}
	return report, &snap
}

// Start begins the tick loop
func (c *Clock) Start() {
	if c.running.CompareAndSwap(false, true) {
		c.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(c.loop)
	}
}

// Stop halts the tick loop, safe to call multiple times
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
		if c.running.CompareAndSwap(true, false) {
			c.wg.Wait()
		}
	})
}

func (c *Clock) loop() {
	defer c.wg.Done()

	c.nextTickDeadline = time.Now().Add(c.interval)
	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-timer.C:
		}

		c.Step()

		now := time.Now()
		c.nextTickDeadline = c.nextTickDeadline.Add(c.interval)

		// Skip ahead instead of bursting when far behind
		maxBehind := c.interval * 2
		if now.Sub(c.nextTickDeadline) > maxBehind {
			c.nextTickDeadline = now.Add(c.interval)
		}

		wait := c.nextTickDeadline.Sub(now)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}
