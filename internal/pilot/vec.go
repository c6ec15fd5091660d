package pilot

import "math"

// Vec3 is a point or direction in the arena's right-handed,
// world-fixed coordinate frame (Z up). Units are unreal units (uu).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the distance between two points.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Flat drops the Z component; steering works in the ground plane.
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// HeadingTo returns the ground-plane angle from v toward target.
func (v Vec3) HeadingTo(target Vec3) float64 {
	return math.Atan2(target.Y-v.Y, target.X-v.X)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
