package pilot

import "fmt"

// Pilot is the action decision/execution engine: each tick it either lets
// a running maneuver produce the frame, or decides an Action and routes it
// to the matching handler. It holds the only mutable state that survives
// between ticks (the sequencer, the pad tracker, and debug bookkeeping);
// everything about the world arrives fresh in the Snapshot.
type Pilot struct {
	selector *Selector
	seq      Sequencer
	pads     PadTracker
	thoughts *ThoughtLog

	tick        int
	lastElapsed float64
	seenElapsed bool

	lastAction   Action
	lastTarget   Vec3
	flipsStarted int
	fallbacks    int // aim points computed without a usable prediction
}

// New creates a pilot with the given tuning. oracle may be nil; the
// selector then treats every prediction as unavailable.
func New(t Tuning, oracle Oracle) *Pilot {
	return &Pilot{
		selector: NewSelector(t, oracle),
		thoughts: NewThoughtLog(t.ThoughtCap),
	}
}

// Output is the host's per-tick callback: exactly one ControlFrame per
// snapshot, for any reachable input. A running maneuver is polled first
// and, while unfinished, its frame is authoritative; the decision path
// is skipped entirely.
func (p *Pilot) Output(snap Snapshot) ControlFrame {
	p.tick++
	dt := p.tickDelta(snap.Elapsed)

	if frame, ok := p.seq.Tick(dt); ok {
		return frame
	}

	action := p.Decide(snap)
	if action != p.lastAction {
		p.thoughts.Add(p.tick, action, "action selected")
	}
	p.lastAction = action
	return p.Dispatch(action, snap)
}

// tickDelta derives the per-tick time step from the host's absolute clock.
// The first tick and clock rewinds (replays) yield zero rather than a
// negative step.
func (p *Pilot) tickDelta(elapsed float64) float64 {
	dt := elapsed - p.lastElapsed
	if !p.seenElapsed || dt < 0 {
		dt = 0
	}
	p.lastElapsed = elapsed
	p.seenElapsed = true
	return dt
}

// Decide maps a snapshot to an Action. Placeholder policy: always chase
// the ball. This is the extension point for real strategy, not a finished
// one; it stays a pure function of the snapshot.
func (p *Pilot) Decide(snap Snapshot) Action {
	return ActionChaseBall
}

// Dispatch routes an action to its handler. The mapping is total over the
// enumeration: every variant returns a well-formed frame, and a variant
// without a handler is a configuration error worth dying for, not a
// silent no-op.
func (p *Pilot) Dispatch(action Action, snap Snapshot) ControlFrame {
	switch action {
	case ActionWait:
		return p.wait(snap)
	case ActionChaseBall:
		return p.chaseBall(snap)
	case ActionDisableOpponent:
		return p.disableOpponent(snap)
	case ActionShoot:
		return p.shoot(snap)
	case ActionPass:
		return p.passToTeammate(snap)
	case ActionDefend:
		return p.defend(snap)
	case ActionHoldDefense:
		return p.holdDefense(snap)
	case ActionHoldOffense:
		return p.holdOffense(snap)
	case ActionSeekBoost:
		return p.seekBoost(snap)
	default:
		panic(fmt.Sprintf("pilot: no handler for action %d (%s)", int(action), action))
	}
}

// chaseBall composes the interception selector with the sequencer: aim at
// the (possibly led) ball, flip when the speed gate fires, otherwise drive
// flat out toward the aim point.
func (p *Pilot) chaseBall(snap Snapshot) ControlFrame {
	aim := p.selector.AimPoint(snap.Self.Pos, snap.Ball.Pos, snap.Elapsed)
	p.lastTarget = aim
	if snap.Self.Pos.Dist(snap.Ball.Pos) > p.selector.NearRange && aim == snap.Ball.Pos {
		p.fallbacks++
	}

	if p.selector.FlipGate(snap.Self.Vel.Length()) {
		return p.frontFlip()
	}

	return ControlFrame{
		Steer:    SteerToward(snap.Self, aim),
		Throttle: 1,
		Boost:    true,
	}
}

// frontFlip commits to the canned flip maneuver and returns its first
// frame so it starts this very tick. For its full duration the sequencer,
// not the dispatcher, owns the output.
func (p *Pilot) frontFlip() ControlFrame {
	if err := p.seq.Start(FrontFlipSteps()); err != nil {
		// Unreachable for the canned steps; fail closed with neutral input.
		return ControlFrame{}
	}
	p.flipsStarted++
	p.thoughts.Add(p.tick, p.lastAction, "front flip committed")
	frame, _ := p.seq.Tick(0)
	return frame
}

// FrontFlipSteps is the canned flip: jump, release, jump again with full
// back pitch, then coast the landing. 1.10 s committed in total.
func FrontFlipSteps() []ControlStep {
	return []ControlStep{
		{Duration: 0.05, Frame: ControlFrame{Jump: true, Throttle: 1}},
		{Duration: 0.05, Frame: ControlFrame{Throttle: 1}},
		{Duration: 0.20, Frame: ControlFrame{Jump: true, Pitch: -1, Throttle: 1}},
		{Duration: 0.80, Frame: ControlFrame{Throttle: 1}},
	}
}

func (p *Pilot) wait(Snapshot) ControlFrame { return ControlFrame{} }

// The rest of the action catalogue is dispatchable but unimplemented:
// every handler honours the contract by returning a neutral frame.

func (p *Pilot) disableOpponent(Snapshot) ControlFrame { return ControlFrame{} }
func (p *Pilot) shoot(Snapshot) ControlFrame           { return ControlFrame{} }
func (p *Pilot) passToTeammate(Snapshot) ControlFrame  { return ControlFrame{} }
func (p *Pilot) defend(Snapshot) ControlFrame          { return ControlFrame{} }
func (p *Pilot) holdDefense(Snapshot) ControlFrame     { return ControlFrame{} }
func (p *Pilot) holdOffense(Snapshot) ControlFrame     { return ControlFrame{} }
func (p *Pilot) seekBoost(Snapshot) ControlFrame       { return ControlFrame{} }

// Pads exposes the boost pad tracker so the host can refresh it once per
// tick before asking for output.
func (p *Pilot) Pads() *PadTracker { return &p.pads }

// Sequencing reports whether a maneuver currently owns the output.
func (p *Pilot) Sequencing() bool { return p.seq.Active() }

// Debug accessors, read by the viewer and report code only.

func (p *Pilot) LastAction() Action    { return p.lastAction }
func (p *Pilot) LastTarget() Vec3      { return p.lastTarget }
func (p *Pilot) FlipsStarted() int     { return p.flipsStarted }
func (p *Pilot) Fallbacks() int        { return p.fallbacks }
func (p *Pilot) Thoughts() *ThoughtLog { return p.thoughts }
func (p *Pilot) Tick() int             { return p.tick }
