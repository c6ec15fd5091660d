package arena

import "github.com/Garsondee/Rocket-Sense/internal/pilot"

const (
	forecastHorizon = 6.0 // seconds of ball flight predicted
	forecastStep    = TickSeconds
)

// Forecast predicts future ball states by integrating a copy of the ball
// forward at a fixed step. It implements pilot.Oracle: a query is a single
// slice lookup, never a wait. While the match is not live (kickoff pause,
// replay) every prediction is unavailable.
type Forecast struct {
	start  float64 // match time of slices[0]
	slices []pilot.BallState
	live   bool
}

// NewForecast returns an empty, non-live forecast.
func NewForecast() *Forecast {
	return &Forecast{}
}

// SetLive flips prediction availability. The slices are kept; only the
// queries start failing, which is exactly how the host behaves during
// replays.
func (f *Forecast) SetLive(live bool) {
	f.live = live
}

// Rebuild recomputes the slice table from the current ball state. Called
// once per host tick, before the pilot is polled.
func (f *Forecast) Rebuild(now float64, ball Ball) {
	n := int(forecastHorizon / forecastStep)
	if cap(f.slices) < n {
		f.slices = make([]pilot.BallState, 0, n)
	}
	f.slices = f.slices[:0]
	f.start = now

	b := ball
	for i := 0; i < n; i++ {
		f.slices = append(f.slices, b.State())
		b.Step(forecastStep)
	}
}

// PredictBall returns the forecast slice covering time at, or ok=false
// when the match is not live, nothing has been built yet, or at lies
// outside the horizon.
func (f *Forecast) PredictBall(at float64) (pilot.BallState, bool) {
	if !f.live || len(f.slices) == 0 {
		return pilot.BallState{}, false
	}
	idx := int((at-f.start)/forecastStep + 0.5) // nearest slice
	if idx < 0 || idx >= len(f.slices) {
		return pilot.BallState{}, false
	}
	return f.slices[idx], true
}
