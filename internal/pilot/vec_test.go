package pilot

import (
	"math"
	"testing"
)

func TestVec3_LengthAndDist(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Fatalf("length = %.3f, want 5", v.Length())
	}
	if d := v.Dist(Vec3{X: 3, Y: 4, Z: 12}); d != 12 {
		t.Fatalf("dist = %.3f, want 12", d)
	}
}

func TestVec3_HeadingTo(t *testing.T) {
	origin := Vec3{}
	cases := []struct {
		target Vec3
		want   float64
	}{
		{Vec3{X: 1}, 0},
		{Vec3{Y: 1}, math.Pi / 2},
		{Vec3{X: -1}, math.Pi},
		{Vec3{Y: -1}, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := origin.HeadingTo(c.target); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("HeadingTo(%+v) = %.4f, want %.4f", c.target, got, c.want)
		}
	}
}

func TestNormalizeAngle_Wraps(t *testing.T) {
	if got := normalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("3pi wrapped to %.4f, want pi", got)
	}
	if got := normalizeAngle(-3 * math.Pi); math.Abs(got+math.Pi) > 1e-12 {
		t.Fatalf("-3pi wrapped to %.4f, want -pi", got)
	}
	if got := normalizeAngle(0.5); got != 0.5 {
		t.Fatalf("in-range angle changed: %.4f", got)
	}
}

func TestVec3_Flat_DropsZ(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := v.Flat(); got != (Vec3{X: 1, Y: 2}) {
		t.Fatalf("flat = %+v", got)
	}
}
