package pilot

// CarState is one vehicle's physics state for a single tick.
type CarState struct {
	Name  string   `json:"name"`
	Team  int      `json:"team"`
	Pos   Vec3     `json:"pos"`
	Vel   Vec3     `json:"vel"`
	Rot   Rotation `json:"rot"`
	Boost float64  `json:"boost"` // remaining boost, 0..100
}

// BallState is the ball's physics state for a single tick.
type BallState struct {
	Pos Vec3 `json:"pos"`
	Vel Vec3 `json:"vel"`
}

// Snapshot is the per-tick view of the match used for decision making.
// It is rebuilt wholesale by the host every tick and never mutated after
// construction; the pilot treats it as read-only.
type Snapshot struct {
	Self      CarState   `json:"self"`
	Teammates []CarState `json:"teammates"`
	Enemies   []CarState `json:"enemies"`
	Ball      BallState  `json:"ball"`
	Elapsed   float64    `json:"elapsed"` // seconds since match start
}
