package arena

import (
	"testing"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

func builtForecast(now float64, ball Ball) *Forecast {
	f := NewForecast()
	f.SetLive(true)
	f.Rebuild(now, ball)
	return f
}

func TestForecast_NotLive_Unavailable(t *testing.T) {
	f := NewForecast()
	f.Rebuild(0, Ball{Pos: pilot.Vec3{Z: 500}})
	if _, ok := f.PredictBall(1); ok {
		t.Fatal("non-live forecast must be unavailable")
	}

	f.SetLive(true)
	if _, ok := f.PredictBall(1); !ok {
		t.Fatal("live forecast with slices must answer")
	}

	f.SetLive(false)
	if _, ok := f.PredictBall(1); ok {
		t.Fatal("going non-live must make predictions unavailable again")
	}
}

func TestForecast_Empty_Unavailable(t *testing.T) {
	f := NewForecast()
	f.SetLive(true)
	if _, ok := f.PredictBall(0); ok {
		t.Fatal("forecast with no slices must be unavailable")
	}
}

func TestForecast_AtNow_ReturnsCurrentBall(t *testing.T) {
	ball := Ball{Pos: pilot.Vec3{X: 100, Y: 200, Z: 500}}
	f := builtForecast(10, ball)

	got, ok := f.PredictBall(10)
	if !ok {
		t.Fatal("prediction at the build time must exist")
	}
	if got.Pos != ball.Pos {
		t.Fatalf("slice 0 must be the current ball, got %+v", got.Pos)
	}
}

func TestForecast_FutureSlice_MatchesIntegration(t *testing.T) {
	ball := Ball{Pos: pilot.Vec3{X: 100, Z: 800}, Vel: pilot.Vec3{Y: 300}}
	f := builtForecast(0, ball)

	// Integrate the same ball by hand for two seconds.
	b := ball
	steps := int(2.0 / forecastStep)
	for i := 0; i < steps; i++ {
		b.Step(forecastStep)
	}

	got, ok := f.PredictBall(2.0)
	if !ok {
		t.Fatal("two seconds is inside the horizon")
	}
	if got.Pos.Dist(b.Pos) > 1e-6 {
		t.Fatalf("forecast diverged from integration: %+v vs %+v", got.Pos, b.Pos)
	}
}

func TestForecast_BeyondHorizon_Unavailable(t *testing.T) {
	f := builtForecast(0, Ball{Pos: pilot.Vec3{Z: 500}})
	if _, ok := f.PredictBall(forecastHorizon + 1); ok {
		t.Fatal("past the horizon must be unavailable")
	}
	if _, ok := f.PredictBall(-1); ok {
		t.Fatal("before the build time must be unavailable")
	}
}
