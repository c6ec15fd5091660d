package pilot

// steerGain converts heading error (radians) into a steer command. Small
// errors steer proportionally; anything past ~1/5 rad saturates the axis.
const steerGain = 5.0

// SteerToward returns the steer axis value that turns the car toward
// target: the heading error between the car's yaw and the bearing to the
// target, scaled and clamped to [-1, 1]. Pure geometric helper; works in
// the ground plane.
func SteerToward(car CarState, target Vec3) float64 {
	bearing := car.Pos.HeadingTo(target)
	err := normalizeAngle(bearing - car.Rot.Yaw)
	return clampAxis(err * steerGain)
}
