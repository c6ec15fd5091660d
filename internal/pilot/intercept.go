package pilot

// Oracle supplies predicted ball states. Implementations must return
// immediately; ok=false means no usable prediction exists right now
// (non-live match state, horizon exceeded, or no oracle at all).
type Oracle interface {
	PredictBall(at float64) (BallState, bool)
}

// NoForecast is an Oracle that never has a prediction. Remote pilots run
// with it, exercising the fallback path every tick.
type NoForecast struct{}

func (NoForecast) PredictBall(float64) (BallState, bool) {
	return BallState{}, false
}

// Selector computes the interception aim point and gates the committed
// flip maneuver. It holds no per-tick memory; both checks are pure
// functions of their inputs.
type Selector struct {
	NearRange float64 // inside this distance, aim at the ball directly
	LeadTime  float64 // seconds ahead to ask the oracle for
	FlipMin   float64 // speed band for the flip gate, inclusive
	FlipMax   float64 // exclusive
	Oracle    Oracle
}

// NewSelector builds a selector from tuning values. A nil oracle is
// replaced with NoForecast so the aim-point path never has to nil-check.
func NewSelector(t Tuning, oracle Oracle) *Selector {
	if oracle == nil {
		oracle = NoForecast{}
	}
	return &Selector{
		NearRange: t.NearRange,
		LeadTime:  t.LeadTime,
		FlipMin:   t.FlipGateMin,
		FlipMax:   t.FlipGateMax,
		Oracle:    oracle,
	}
}

// AimPoint returns the world position to steer toward when chasing the
// ball. Close to the ball the current position wins: responsiveness there
// matters more than prediction noise, and the oracle is not consulted at
// all. Farther out the ball is led by LeadTime seconds; if no prediction
// is available the current position is the fallback. Never errors, never
// blocks.
func (s *Selector) AimPoint(carPos, ballPos Vec3, now float64) Vec3 {
	if carPos.Dist(ballPos) <= s.NearRange {
		return ballPos
	}
	if pred, ok := s.Oracle.PredictBall(now + s.LeadTime); ok {
		return pred.Pos
	}
	return ballPos
}

// FlipGate reports whether the car's speed sits in the narrow band where a
// committed front flip beats continuous steering. The check is memoryless
// and re-evaluated every tick; a running sequence shadows re-triggers, and
// re-entering the band after a flip may fire it again.
func (s *Selector) FlipGate(speed float64) bool {
	return speed >= s.FlipMin && speed < s.FlipMax
}
