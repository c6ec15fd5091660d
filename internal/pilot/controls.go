package pilot

// ControlFrame is the complete set of output commands for one tick.
// The zero value is all-neutral: no steering, no throttle, no buttons.
// Axis values are expected in [-1, 1]; the host clamps out-of-range input.
type ControlFrame struct {
	Steer    float64 `json:"steer"`
	Throttle float64 `json:"throttle"`
	Pitch    float64 `json:"pitch"`
	Yaw      float64 `json:"yaw"`
	Roll     float64 `json:"roll"`

	Jump      bool `json:"jump"`
	Boost     bool `json:"boost"`
	Handbrake bool `json:"handbrake"`
}

// Rotation is a car's orientation as Euler angles in radians.
type Rotation struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// clampAxis limits an axis command to the valid [-1, 1] range.
func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
