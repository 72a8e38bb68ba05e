package event

import (
	"sync/atomic"

	"github.com/lixenwraith/gravsim/parameter"
)

// CommandQueue is a lock-free MPSC ring buffer for user commands
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (input, network clients)
//   - Consume: Single consumer (tick loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest commands overwritten when full
type CommandQueue struct {
	commands  [parameter.CommandQueueSize]Command
	published [parameter.CommandQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                           // Read index
	tail      atomic.Uint64                           // Write index
	dropped   atomic.Uint64
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push adds command using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *CommandQueue) Push(cmd Command) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.CommandBufferMask

			q.commands[idx] = cmd
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread commands
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.CommandQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.CommandQueueSize) {
					q.dropped.Add(1)
				}
			}
			return
		}
	}
}

// Consume returns all pending commands in FIFO order and advances head
// Single-consumer design (tick loop). Checks published flags for safety
func (q *CommandQueue) Consume() []Command {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.CommandQueueSize {
			maxAvailable = parameter.CommandQueueSize
			currentHead = currentTail - parameter.CommandQueueSize
		}

		result := make([]Command, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.CommandBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.commands[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending command count
func (q *CommandQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.CommandQueueSize {
		return parameter.CommandQueueSize
	}
	return diff
}

// Dropped returns the number of commands lost to overflow
func (q *CommandQueue) Dropped() uint64 {
	return q.dropped.Load()
}
