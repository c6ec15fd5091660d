package netplay

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/Garsondee/Rocket-Sense/internal/arena"
)

// Client is a pilot's connection to a remote arena.
type Client struct {
	conn    *websocket.Conn
	Welcome WelcomeMsg
}

// Dial connects, performs the HELLO/WELCOME handshake, and returns a
// ready client.
func Dial(url, agentName string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	hello := HelloMsg{Type: TypeHello, ProtocolVersion: Version, AgentName: agentName}
	if err := conn.WriteJSON(hello); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sending hello: %w", err)
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("reading welcome: %w", err)
	}
	var welcome WelcomeMsg
	if err := json.Unmarshal(msg, &welcome); err != nil || welcome.Type != TypeWelcome {
		conn.Close()
		return nil, fmt.Errorf("expected WELCOME, got %q", msg)
	}

	return &Client{conn: conn, Welcome: welcome}, nil
}

// Run answers every OBS with the driver's frame until the connection
// closes. Unknown message types are ignored. The remote side has no
// oracle, so a pilot used here should be built with a nil one.
func (c *Client) Run(d arena.Driver) error {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		base, err := DecodeBase(msg)
		if err != nil || base.Type != TypeObs {
			continue
		}
		var obs ObsMsg
		if err := json.Unmarshal(msg, &obs); err != nil {
			continue
		}

		act := ActMsg{
			Type:            TypeAct,
			ProtocolVersion: Version,
			Tick:            obs.Tick,
			Frame:           d.Output(obs.Snapshot),
		}
		if err := c.conn.WriteJSON(act); err != nil {
			return fmt.Errorf("sending act: %w", err)
		}
	}
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.conn.Close()
}
