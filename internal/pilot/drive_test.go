package pilot

import (
	"math"
	"testing"
)

func TestSteerToward_TargetAhead_NoSteer(t *testing.T) {
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: 0}}
	if got := SteerToward(car, Vec3{X: 100}); got != 0 {
		t.Fatalf("target dead ahead must need no steering, got %.3f", got)
	}
}

func TestSteerToward_TargetLeft_PositiveSteer(t *testing.T) {
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: 0}}
	got := SteerToward(car, Vec3{X: 100, Y: 100})
	if got <= 0 {
		t.Fatalf("target to the left must give positive steer, got %.3f", got)
	}
}

func TestSteerToward_TargetRight_NegativeSteer(t *testing.T) {
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: 0}}
	got := SteerToward(car, Vec3{X: 100, Y: -100})
	if got >= 0 {
		t.Fatalf("target to the right must give negative steer, got %.3f", got)
	}
}

func TestSteerToward_TargetBehind_Saturates(t *testing.T) {
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: 0}}
	got := SteerToward(car, Vec3{X: -100, Y: 1})
	if math.Abs(got) != 1 {
		t.Fatalf("target behind must saturate the steer axis, got %.3f", got)
	}
}

func TestSteerToward_WrapsAcrossPi(t *testing.T) {
	// Car facing -X (yaw = pi), target almost dead ahead but across the
	// atan2 branch cut: the error must wrap to a small correction instead
	// of commanding a full spin.
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: math.Pi}}
	got := SteerToward(car, Vec3{X: -100, Y: -1})
	if got <= 0 || got == 1 {
		t.Fatalf("expected a small positive correction, got %.3f", got)
	}
}

func TestSteerToward_SmallError_Proportional(t *testing.T) {
	car := CarState{Pos: Vec3{}, Rot: Rotation{Yaw: 0}}
	angle := 0.05 // well inside the linear band
	target := Vec3{X: 100 * math.Cos(angle), Y: 100 * math.Sin(angle)}
	got := SteerToward(car, target)
	want := angle * steerGain
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %.6f want %.6f", got, want)
	}
}
