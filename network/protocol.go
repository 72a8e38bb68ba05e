package network

import (
	"encoding/json"

	"github.com/lixenwraith/gravsim/engine"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	// Server to peer
	MsgHello    MessageType = "hello"    // Sent once on connect
	MsgSnapshot MessageType = "snapshot" // World state after a tick
	MsgAck      MessageType = "ack"      // Command accepted into the queue
	MsgError    MessageType = "error"    // Command refused

	// Peer to server
	MsgCommand MessageType = "command"
)

// Message is the JSON envelope for every frame on the wire
type Message struct {
	Type MessageType `json:"type"`
	Seq  uint32      `json:"seq,omitempty"` // Sender's sequence number
	Ack  uint32      `json:"ack,omitempty"` // Sequence being answered

	// Command names the registered command type for MsgCommand
	Command string          `json:"command,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Hello is the MsgHello payload
type Hello struct {
	Peer          PeerID  `json:"peer"`
	StreamRate    float64 `json:"stream_rate"` // Snapshots per second, zero when unlimited
	AllowCommands bool    `json:"allow_commands"`
}

// NewMessage creates a message with the given type and payload
func NewMessage(t MessageType, payload json.RawMessage) *Message {
	return &Message{Type: t, Payload: payload}
}

// NewSnapshotMessage encodes snap once for fan-out
func NewSnapshotMessage(snap *engine.Snapshot) (*Message, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	return NewMessage(MsgSnapshot, raw), nil
}

// NewAckMessage acknowledges a received command sequence
func NewAckMessage(ackSeq uint32) *Message {
	return &Message{Type: MsgAck, Ack: ackSeq}
}

// NewErrorMessage refuses a received command sequence
func NewErrorMessage(ackSeq uint32, err error) *Message {
	return &Message{Type: MsgError, Ack: ackSeq, Error: err.Error()}
}
