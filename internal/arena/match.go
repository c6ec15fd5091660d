package arena

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

// Stats accumulates what the headless report cares about.
type Stats struct {
	Ticks   int
	Touches int
	Goals   int
}

// TickHook observes one completed tick. Hooks are write-only sinks
// (recorders, viewers); their failures never reach the control path.
type TickHook func(tick int, snap pilot.Snapshot, frame pilot.ControlFrame)

// Driver produces exactly one frame per snapshot. *pilot.Pilot is the
// in-process implementation; netplay supplies a remote one.
type Driver interface {
	Output(pilot.Snapshot) pilot.ControlFrame
	Pads() *pilot.PadTracker
}

// Match is the host loop: it owns the physics bodies, the forecast, and
// the per-tick callback contract with the driver. Single-threaded; one
// Step call is one tick.
type Match struct {
	seed int64
	rng  *rand.Rand

	ball      Ball
	car       Car
	pads      []pilot.Pad
	padTimers []float64

	forecast *Forecast
	driver   Driver
	hooks    []TickHook

	tick       int
	elapsed    float64
	pauseTicks int // remaining non-live ticks after a goal

	stats     Stats
	lastFrame pilot.ControlFrame
	lastSnap  pilot.Snapshot
}

// Option configures a new match.
type Option func(*Match)

// WithSeed fixes the RNG used for kickoff nudges. Matches with the same
// seed, pilot tuning and tick count are identical.
func WithSeed(seed int64) Option {
	return func(m *Match) { m.seed = seed }
}

// WithBall overrides the kickoff ball state.
func WithBall(pos, vel pilot.Vec3) Option {
	return func(m *Match) { m.ball = Ball{Pos: pos, Vel: vel} }
}

// WithCar overrides the car's starting position and heading.
func WithCar(pos pilot.Vec3, yaw float64) Option {
	return func(m *Match) { m.car = NewCar(m.car.State.Name, 0, pos, yaw) }
}

// NewMatch builds a live match at kickoff. Attach a driver before stepping.
func NewMatch(opts ...Option) *Match {
	m := &Match{
		seed:     1,
		ball:     Ball{Pos: pilot.Vec3{Z: BallRadius}},
		car:      NewCar("rocket-sense", 0, pilot.Vec3{Y: -4000}, math.Pi / 2),
		pads:     DefaultPadLayout(),
		forecast: NewForecast(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	m.padTimers = make([]float64, len(m.pads))
	m.forecast.SetLive(true)
	return m
}

// Oracle exposes the match's forecast for pilot construction.
func (m *Match) Oracle() pilot.Oracle { return m.forecast }

// AttachDriver wires the driver in and hands it the static pad layout.
func (m *Match) AttachDriver(d Driver) {
	m.driver = d
	d.Pads().Initialize(m.pads)
}

// OnTick registers a per-tick observer.
func (m *Match) OnTick(h TickHook) {
	m.hooks = append(m.hooks, h)
}

// Step runs one tick: physics, forecast rebuild, snapshot, driver poll,
// frame application, touch/goal resolution. The driver is polled every
// tick, including non-live pause ticks, where its frame is discarded,
// which is the same deal the real host gives a bot during replays.
func (m *Match) Step() {
	if m.driver == nil {
		return
	}
	dt := TickSeconds
	m.tick++
	m.elapsed += dt
	m.stats.Ticks = m.tick

	paused := m.pauseTicks > 0
	if paused {
		m.pauseTicks--
		if m.pauseTicks == 0 {
			m.forecast.SetLive(true)
		}
	} else {
		m.ball.Step(dt)
		m.stepPads(dt)
		m.forecast.Rebuild(m.elapsed, m.ball)
	}

	snap := m.Snapshot()
	m.driver.Pads().Refresh(m.padStatus())
	frame := m.driver.Output(snap)

	if !paused {
		m.car.Apply(frame, dt)
		m.resolveTouch()
		m.resolveGoal()
	}

	m.lastFrame = frame
	m.lastSnap = snap
	for _, h := range m.hooks {
		h(m.tick, snap, frame)
	}
}

// Run advances the match by n ticks.
func (m *Match) Run(n int) {
	for i := 0; i < n; i++ {
		m.Step()
	}
}

// Snapshot builds the per-tick world view. Rebuilt wholesale every tick;
// the pilot never sees the physics bodies themselves.
func (m *Match) Snapshot() pilot.Snapshot {
	return pilot.Snapshot{
		Self:    m.car.State,
		Ball:    m.ball.State(),
		Elapsed: m.elapsed,
	}
}

func (m *Match) padStatus() []bool {
	status := make([]bool, len(m.pads))
	for i, p := range m.pads {
		status[i] = p.Active
	}
	return status
}

func (m *Match) stepPads(dt float64) {
	for i := range m.pads {
		if !m.pads[i].Active {
			m.padTimers[i] -= dt
			if m.padTimers[i] <= 0 {
				m.pads[i].Active = true
			}
			continue
		}
		if m.car.State.Pos.Dist(m.pads[i].Pos) > padPickupRange {
			continue
		}
		gain, respawn := smallPadBoost, smallPadRespawn
		if m.pads[i].IsBig {
			gain, respawn = bigPadBoost, bigPadRespawn
		}
		m.car.State.Boost = math.Min(100, m.car.State.Boost+gain)
		m.pads[i].Active = false
		m.padTimers[i] = respawn
	}
}

// resolveTouch pushes the ball away when the car reaches it. The impulse
// follows the contact normal and scales with closing speed, floored so a
// slow nudge still moves the ball.
func (m *Match) resolveTouch() {
	delta := m.ball.Pos.Sub(m.car.State.Pos)
	dist := delta.Length()
	if dist > TouchRange {
		return
	}
	m.stats.Touches++

	normal := delta.Scale(1 / math.Max(dist, 1))
	impulse := math.Max(m.car.State.Vel.Length()*0.8, 400)
	m.ball.Vel = m.ball.Vel.Add(normal.Scale(impulse))
	m.ball.Vel.Z += 150

	// Separate the bodies so one touch is one touch.
	m.ball.Pos = m.car.State.Pos.Add(normal.Scale(TouchRange + 1))
}

// resolveGoal checks the goal mouths on both end walls and, on a score,
// runs a one-second non-live pause followed by a kickoff reset with a
// seeded nudge.
func (m *Match) resolveGoal() {
	if math.Abs(m.ball.Pos.Y) < FieldHalfLength-BallRadius-1 || math.Abs(m.ball.Pos.X) > goalMouthHalfGap {
		return
	}
	m.stats.Goals++
	m.pauseTicks = TickRate
	m.forecast.SetLive(false)

	nudge := pilot.Vec3{
		X: (m.rng.Float64() - 0.5) * 200,
		Y: (m.rng.Float64() - 0.5) * 200,
	}
	m.ball = Ball{Pos: pilot.Vec3{Z: BallRadius}, Vel: nudge}
	m.car = NewCar(m.car.State.Name, m.car.State.Team, pilot.Vec3{Y: -4000}, math.Pi/2)
}

// Accessors for viewers and reports.

func (m *Match) Stats() Stats                  { return m.stats }
func (m *Match) Tick() int                     { return m.tick }
func (m *Match) Elapsed() float64              { return m.elapsed }
func (m *Match) BallState() pilot.BallState    { return m.ball.State() }
func (m *Match) CarState() pilot.CarState      { return m.car.State }
func (m *Match) Pads() []pilot.Pad             { return m.pads }
func (m *Match) LastFrame() pilot.ControlFrame { return m.lastFrame }
func (m *Match) LastSnapshot() pilot.Snapshot  { return m.lastSnap }
func (m *Match) Live() bool                    { return m.pauseTicks == 0 }
