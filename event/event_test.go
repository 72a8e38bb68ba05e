package event

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewCommandQueue()
	assert.Nil(t, q.Consume())

	q.Push(Command{Type: CmdAddBody})
	q.Push(Command{Type: CmdReset})
	q.Push(Command{Type: CmdPan})
	assert.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, CmdAddBody, got[0].Type)
	assert.Equal(t, CmdReset, got[1].Type)
	assert.Equal(t, CmdPan, got[2].Type)
	assert.Zero(t, q.Len())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewCommandQueue()
	for i := 0; i < parameter.CommandQueueSize+5; i++ {
		q.Push(Command{Type: CmdSetTrailLength, Payload: &CountPayload{Value: i}})
	}

	got := q.Consume()
	require.Len(t, got, parameter.CommandQueueSize)
	assert.Equal(t, 5, got[0].Payload.(*CountPayload).Value)
	assert.Equal(t, uint64(5), q.Dropped())
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewCommandQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(Command{Type: CmdTogglePause})
			}
		}()
	}
	wg.Wait()

	total := 0
	for cmds := q.Consume(); cmds != nil; cmds = q.Consume() {
		total += len(cmds)
	}
	assert.Equal(t, 400, total)
}

func TestCommandTypeNames(t *testing.T) {
	assert.Equal(t, "AddBody", CmdAddBody.String())
	assert.Equal(t, "OrbitAction", CmdOrbitAction.String())
	assert.Equal(t, "Unknown", CommandType(-1).String())

	_, ok := LookupType("explode")
	assert.False(t, ok)
	ct, ok := LookupType("cycleboundsmode")
	require.True(t, ok)
	assert.Equal(t, CmdCycleBoundsMode, ct)
}

func TestDecode(t *testing.T) {
	cmd, err := Decode("AddBody", json.RawMessage(`{"pos":{"X":10,"Y":20},"mass":50}`))
	require.NoError(t, err)
	assert.Equal(t, CmdAddBody, cmd.Type)
	p := cmd.Payload.(*AddBodyPayload)
	assert.Equal(t, 10.0, p.Pos.X)
	assert.Equal(t, 50.0, p.Mass)

	cmd, err = Decode("SetBoundsMode", json.RawMessage(`{"mode":"portal"}`))
	require.NoError(t, err)
	assert.Equal(t, core.BoundsPortal, cmd.Payload.(*BoundsModePayload).Mode)

	cmd, err = Decode("Reset", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Payload)

	_, err = Decode("Explode", nil)
	assert.Error(t, err)

	_, err = Decode("SpawnOrbit", nil)
	assert.Error(t, err)

	_, err = Decode("SetBoundsMode", json.RawMessage(`{"mode":"sideways"}`))
	assert.Error(t, err)
}
