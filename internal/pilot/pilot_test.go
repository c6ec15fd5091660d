package pilot

import "testing"

func snapshotAt(carPos Vec3, speed float64, ballPos Vec3, elapsed float64) Snapshot {
	return Snapshot{
		Self:    CarState{Pos: carPos, Vel: Vec3{X: speed}},
		Ball:    BallState{Pos: ballPos},
		Elapsed: elapsed,
	}
}

func TestDispatch_TotalOverAllActions(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	snap := snapshotAt(Vec3{}, 0, Vec3{X: 500}, 1)

	for _, a := range Actions() {
		frame := p.Dispatch(a, snap) // must not panic
		if frame.Steer < -1 || frame.Steer > 1 || frame.Throttle < -1 || frame.Throttle > 1 {
			t.Fatalf("%s produced out-of-range frame %+v", a, frame)
		}
	}
}

func TestDispatch_UnmappedVariant_Panics(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	defer func() {
		if recover() == nil {
			t.Fatal("dispatching an out-of-enum action must panic")
		}
	}()
	p.Dispatch(Action(99), Snapshot{})
}

func TestDecide_PlaceholderPolicy_ChasesBall(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	if got := p.Decide(Snapshot{}); got != ActionChaseBall {
		t.Fatalf("placeholder policy must pick CHASE_BALL, got %s", got)
	}
}

func TestOutput_ChaseBall_SteersTowardBall(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	// Ball ahead-left of a car facing +X: expect positive steer toward it.
	snap := snapshotAt(Vec3{}, 500, Vec3{X: 1000, Y: 400}, 0.5)
	frame := p.Output(snap)

	if frame.Throttle != 1 || !frame.Boost {
		t.Fatalf("chase frame must drive flat out, got %+v", frame)
	}
	if frame.Steer <= 0 {
		t.Fatalf("expected left turn (positive steer), got %.3f", frame.Steer)
	}
	if frame.Jump {
		t.Fatal("no flip expected outside the speed gate")
	}
}

func TestOutput_SpeedGate_StartsFlipAndReturnsFirstFrame(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	snap := snapshotAt(Vec3{}, 760, Vec3{X: 900}, 0.5)

	frame := p.Output(snap)
	if want := FrontFlipSteps()[0].Frame; frame != want {
		t.Fatalf("gate tick must return the flip's first frame, got %+v", frame)
	}
	if !p.Sequencing() {
		t.Fatal("a sequence must be active after the gate fires")
	}
	if p.FlipsStarted() != 1 {
		t.Fatalf("flips started = %d, want 1", p.FlipsStarted())
	}
}

// While a sequence runs, its frames are authoritative: the decision path
// is skipped even though the speed still sits inside the gate band.
func TestOutput_ActiveSequence_ShadowsDecisions(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	frames := FrontFlipSteps()

	p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 0.50)) // starts the flip

	got := p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 0.55))
	if want := frames[1].Frame; got != want {
		t.Fatalf("tick inside sequence: got %+v want %+v", got, want)
	}
	if p.FlipsStarted() != 1 {
		t.Fatal("running sequence must shadow gate re-triggers")
	}
}

func TestOutput_SequenceCompletion_ReturnsControlToDecisionPath(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 0.0))

	// One giant delta finishes the whole 1.10 s maneuver.
	got := p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 2.0))
	if want := FrontFlipSteps()[3].Frame; got != want {
		t.Fatalf("completing tick: got %+v want last flip frame %+v", got, want)
	}

	// Next tick the dispatcher decides again; speed still in the gate band,
	// so a fresh flip starts. Re-trigger without cooldown is deliberate.
	got = p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 2.1))
	if want := FrontFlipSteps()[0].Frame; got != want {
		t.Fatalf("post-completion tick: got %+v want new flip first frame", got)
	}
	if p.FlipsStarted() != 2 {
		t.Fatalf("flips started = %d, want 2", p.FlipsStarted())
	}
}

func TestOutput_FirstTick_ZeroDelta(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	// A large absolute clock on the first tick must not fast-forward a
	// sequence started later; the first delta is zero by construction.
	p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 1000))
	if !p.Sequencing() {
		t.Fatal("flip should have started")
	}
	got := p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 1000.05))
	if want := FrontFlipSteps()[1].Frame; got != want {
		t.Fatalf("got %+v want second flip frame %+v", got, want)
	}
}

func TestOutput_ClockRewind_DoesNotDesyncSequence(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 5.0))

	// Replay rewinds the match clock; the delta clamps to zero and the
	// sequence stays on its current step.
	got := p.Output(snapshotAt(Vec3{}, 760, Vec3{X: 900}, 3.0))
	if want := FrontFlipSteps()[0].Frame; got != want {
		t.Fatalf("rewind tick: got %+v want %+v", got, want)
	}
}

func TestOutput_EveryTickProducesAFrame(t *testing.T) {
	p := New(DefaultTuning(), NoForecast{})
	// Degenerate snapshots must still yield a frame, never panic.
	for i := 0; i < 5; i++ {
		_ = p.Output(Snapshot{Elapsed: float64(i) * 0.016})
	}
}
