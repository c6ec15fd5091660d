// Package netplay lets a pilot drive a remote arena: JSON text messages
// over a websocket, HELLO/WELCOME for the handshake and then one OBS per
// host tick answered by at most one ACT.
package netplay

import (
	"encoding/json"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

const Version = "1.0"

// Message types.
const (
	TypeHello   = "HELLO"
	TypeWelcome = "WELCOME"
	TypeObs     = "OBS"
	TypeAct     = "ACT"
)

// BaseMessage routes unknown JSON messages by type.
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}

// HelloMsg opens the session.
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	AgentName       string `json:"agent_name"`
}

// FieldParams tells the client the arena geometry.
type FieldParams struct {
	HalfWidth  float64 `json:"half_width"`
	HalfLength float64 `json:"half_length"`
	Ceiling    float64 `json:"ceiling"`
}

// WelcomeMsg acknowledges the handshake.
type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	AgentID         string      `json:"agent_id"`
	TickRateHz      int         `json:"tick_rate_hz"`
	Field           FieldParams `json:"field"`
}

// ObsMsg delivers one tick's snapshot to the client.
type ObsMsg struct {
	Type            string         `json:"type"`
	ProtocolVersion string         `json:"protocol_version"`
	Tick            int            `json:"tick"`
	Snapshot        pilot.Snapshot `json:"snapshot"`
}

// ActMsg returns the client's control frame for a tick. The host applies
// the most recent frame it has; a late or missing ACT means the previous
// frame coasts.
type ActMsg struct {
	Type            string             `json:"type"`
	ProtocolVersion string             `json:"protocol_version"`
	Tick            int                `json:"tick"`
	Frame           pilot.ControlFrame `json:"frame"`
}
