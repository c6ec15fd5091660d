package netplay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

func startTestServer(t *testing.T) string {
	t.Helper()
	srv := NewServer(zerolog.Nop(), 1)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestDial_Handshake(t *testing.T) {
	url := startTestServer(t)

	c, err := Dial(url, "itest")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	if c.Welcome.AgentID != "itest-1" {
		t.Fatalf("agent id = %q", c.Welcome.AgentID)
	}
	if c.Welcome.TickRateHz <= 0 || c.Welcome.Field.HalfWidth <= 0 {
		t.Fatalf("bad welcome: %+v", c.Welcome)
	}
}

// Drives a remote match with a real pilot for a short while and checks
// that the host applied its frames: the observed car starts moving.
func TestClient_Run_RemotePilotDrivesCar(t *testing.T) {
	url := startTestServer(t)

	c, err := Dial(url, "itest")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	// No oracle on the remote side: every aim point is a fallback.
	p := pilot.New(pilot.DefaultTuning(), nil)

	moved := make(chan struct{})
	watcher := &watchDriver{inner: p, moved: moved}
	go func() { _ = c.Run(watcher) }()

	select {
	case <-moved:
	case <-time.After(10 * time.Second):
		t.Fatal("car never moved under remote control")
	}
}

// watchDriver forwards to a real pilot and signals once the observed car
// has picked up speed.
type watchDriver struct {
	inner  *pilot.Pilot
	moved  chan struct{}
	closed bool
}

func (w *watchDriver) Pads() *pilot.PadTracker { return w.inner.Pads() }

func (w *watchDriver) Output(snap pilot.Snapshot) pilot.ControlFrame {
	if !w.closed && snap.Self.Vel.Length() > 50 {
		w.closed = true
		close(w.moved)
	}
	return w.inner.Output(snap)
}
