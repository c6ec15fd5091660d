package netplay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Rocket-Sense/internal/arena"
	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

// Server hosts one match per websocket connection and lets the remote
// side drive it. The match loop runs at the arena tick rate; the remote
// client's most recent frame is applied each tick.
type Server struct {
	log  zerolog.Logger
	seed int64

	upgrader websocket.Upgrader
	sessions int
	mu       sync.Mutex
}

// NewServer returns a server that seeds each hosted match from seed plus
// a per-session offset.
func NewServer(log zerolog.Logger, seed int64) *Server {
	return &Server{
		log:  log,
		seed: seed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler serves one driving session per connection.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		s.mu.Lock()
		s.sessions++
		session := s.sessions
		s.mu.Unlock()

		agentID, err := s.handshake(conn, session)
		if err != nil {
			s.log.Warn().Err(err).Msg("handshake failed")
			return
		}
		log := s.log.With().Str("agent_id", agentID).Logger()
		log.Info().Msg("session started")

		match := arena.NewMatch(arena.WithSeed(s.seed + int64(session)))
		driver := &remoteDriver{conn: conn}
		match.AttachDriver(driver)

		stop := make(chan struct{})
		go s.readFrames(conn, driver, stop)

		ticker := time.NewTicker(time.Second / arena.TickRate)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				st := match.Stats()
				log.Info().Int("ticks", st.Ticks).Int("touches", st.Touches).
					Int("goals", st.Goals).Msg("session ended")
				return
			case <-ticker.C:
				match.Step()
			}
		}
	}
}

func (s *Server) handshake(conn *websocket.Conn, session int) (string, error) {
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", fmt.Errorf("reading hello: %w", err)
	}
	var hello HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil || hello.Type != TypeHello {
		return "", fmt.Errorf("expected HELLO, got %q", msg)
	}

	agentID := fmt.Sprintf("%s-%d", hello.AgentName, session)
	welcome := WelcomeMsg{
		Type:            TypeWelcome,
		ProtocolVersion: Version,
		AgentID:         agentID,
		TickRateHz:      arena.TickRate,
		Field: FieldParams{
			HalfWidth:  arena.FieldHalfWidth,
			HalfLength: arena.FieldHalfLength,
			Ceiling:    arena.CeilingHeight,
		},
	}
	if err := conn.WriteJSON(welcome); err != nil {
		return "", fmt.Errorf("sending welcome: %w", err)
	}
	return agentID, nil
}

// readFrames consumes ACT messages until the connection dies. Unknown
// message types are ignored.
func (s *Server) readFrames(conn *websocket.Conn, d *remoteDriver, stop chan struct{}) {
	defer close(stop)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		base, err := DecodeBase(msg)
		if err != nil || base.Type != TypeAct {
			continue
		}
		var act ActMsg
		if err := json.Unmarshal(msg, &act); err != nil {
			continue
		}
		d.setFrame(act.Frame)
	}
}

// remoteDriver adapts the connection to arena.Driver: each Output sends
// the snapshot as an OBS and returns whatever frame the client has
// supplied most recently. A tick with no fresh ACT coasts on the last
// frame.
type remoteDriver struct {
	conn *websocket.Conn
	pads pilot.PadTracker

	mu    sync.Mutex
	frame pilot.ControlFrame
	tick  int
}

func (d *remoteDriver) Pads() *pilot.PadTracker { return &d.pads }

func (d *remoteDriver) Output(snap pilot.Snapshot) pilot.ControlFrame {
	d.tick++
	obs := ObsMsg{
		Type:            TypeObs,
		ProtocolVersion: Version,
		Tick:            d.tick,
		Snapshot:        snap,
	}
	_ = d.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_ = d.conn.WriteJSON(obs) // a failed send surfaces via the read loop

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

func (d *remoteDriver) setFrame(f pilot.ControlFrame) {
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
}
