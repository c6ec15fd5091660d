package pilot

import "testing"

// countingOracle records how often it is consulted.
type countingOracle struct {
	state BallState
	ok    bool
	calls int
}

func (o *countingOracle) PredictBall(at float64) (BallState, bool) {
	o.calls++
	return o.state, o.ok
}

func testSelector(oracle Oracle) *Selector {
	return NewSelector(DefaultTuning(), oracle)
}

func TestAimPoint_Near_UsesBallPosition_WithoutOracle(t *testing.T) {
	oracle := &countingOracle{state: BallState{Pos: Vec3{X: 9999}}, ok: true}
	s := testSelector(oracle)

	ball := Vec3{X: 1000, Y: 500}
	got := s.AimPoint(Vec3{}, ball, 10)
	if got != ball {
		t.Fatalf("close-range aim point must be the ball, got %+v", got)
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle consulted %d times inside near range", oracle.calls)
	}
}

func TestAimPoint_NearBoundary_Inclusive(t *testing.T) {
	oracle := &countingOracle{state: BallState{Pos: Vec3{X: 9999}}, ok: true}
	s := testSelector(oracle)

	// Exactly at NearRange: still near.
	ball := Vec3{X: s.NearRange}
	if got := s.AimPoint(Vec3{}, ball, 0); got != ball {
		t.Fatalf("distance == NearRange must aim at the ball, got %+v", got)
	}
	if oracle.calls != 0 {
		t.Fatal("oracle must not be consulted at the near boundary")
	}
}

func TestAimPoint_Far_UsesPrediction(t *testing.T) {
	predicted := Vec3{X: 3000, Y: -1200, Z: 93}
	oracle := &countingOracle{state: BallState{Pos: predicted}, ok: true}
	s := testSelector(oracle)

	got := s.AimPoint(Vec3{}, Vec3{X: 4000}, 30)
	if got != predicted {
		t.Fatalf("got %+v want predicted %+v", got, predicted)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle consulted %d times, want 1", oracle.calls)
	}
}

func TestAimPoint_Far_LeadTimeForwarded(t *testing.T) {
	var asked float64
	s := testSelector(oracleFunc(func(at float64) (BallState, bool) {
		asked = at
		return BallState{}, false
	}))

	now := 12.5
	s.AimPoint(Vec3{}, Vec3{X: 4000}, now)
	if want := now + s.LeadTime; asked != want {
		t.Fatalf("oracle asked for t=%.2f, want %.2f", asked, want)
	}
}

func TestAimPoint_OracleUnavailable_FallsBackToBall(t *testing.T) {
	oracle := &countingOracle{ok: false}
	s := testSelector(oracle)

	ball := Vec3{X: 4000, Y: 2000}
	got := s.AimPoint(Vec3{}, ball, 30)
	if got != ball {
		t.Fatalf("unavailable prediction must fall back to the ball, got %+v", got)
	}
}

func TestAimPoint_NilOracle_NeverPanics(t *testing.T) {
	s := NewSelector(DefaultTuning(), nil)
	ball := Vec3{X: 4000}
	if got := s.AimPoint(Vec3{}, ball, 30); got != ball {
		t.Fatalf("nil oracle must behave as unavailable, got %+v", got)
	}
}

func TestFlipGate_Boundaries(t *testing.T) {
	s := testSelector(NoForecast{})

	cases := []struct {
		speed float64
		want  bool
	}{
		{749.99, false},
		{750, true}, // inclusive lower bound
		{775, true},
		{799.99, true},
		{800, false}, // exclusive upper bound
		{0, false},
		{2300, false},
	}
	for _, c := range cases {
		if got := s.FlipGate(c.speed); got != c.want {
			t.Fatalf("FlipGate(%.2f) = %v, want %v", c.speed, got, c.want)
		}
	}
}

// oracleFunc adapts a closure to the Oracle interface.
type oracleFunc func(at float64) (BallState, bool)

func (f oracleFunc) PredictBall(at float64) (BallState, bool) { return f(at) }
