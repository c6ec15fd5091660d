// Package arena is the host side of the simulation: a bounded field, ball
// flight, simple car kinematics, and the match loop that feeds the pilot
// one snapshot per tick and applies the frame it returns.
package arena

import "github.com/Garsondee/Rocket-Sense/internal/pilot"

// Field geometry and physics constants, in unreal units and seconds.
const (
	FieldHalfWidth  = 4096.0 // |x| bound
	FieldHalfLength = 5120.0 // |y| bound
	CeilingHeight   = 2044.0

	BallRadius      = 92.75
	Gravity         = 650.0 // uu/s^2, straight down
	BallRestitution = 0.6   // vertical bounce energy kept
	BallFriction    = 0.8   // ground-plane speed kept per floor bounce

	CarRestHeight = 17.0
	CarMaxSpeed   = 2300.0
	ThrottleAccel = 1000.0
	BoostAccel    = 991.667
	CoastDrag     = 0.6 // 1/s, velocity decay while coasting
	TurnRate      = 2.6 // rad/s at full steer
	JumpImpulse   = 292.0

	TickRate    = 60
	TickSeconds = 1.0 / TickRate

	// TouchRange is how close the car's centre must get to the ball's to
	// count as a touch.
	TouchRange = BallRadius + 60

	padPickupRange   = 160.0
	smallPadRespawn  = 4.0 // seconds
	bigPadRespawn    = 10.0
	smallPadBoost    = 12.0
	bigPadBoost      = 100.0
	goalMouthHalfGap = 893.0 // |x| within which a ball past the end wall is a goal
)

// DefaultPadLayout mirrors the standard field: six big corner/midfield
// pads plus a sparse set of small pads along the middle.
func DefaultPadLayout() []pilot.Pad {
	big := []pilot.Vec3{
		{X: -3584, Y: 0}, {X: 3584, Y: 0},
		{X: -3072, Y: 4096}, {X: 3072, Y: 4096},
		{X: -3072, Y: -4096}, {X: 3072, Y: -4096},
	}
	small := []pilot.Vec3{
		{X: 0, Y: 0}, {X: -1792, Y: 0}, {X: 1792, Y: 0},
		{X: 0, Y: 2816}, {X: 0, Y: -2816},
		{X: -2048, Y: 2560}, {X: 2048, Y: 2560},
		{X: -2048, Y: -2560}, {X: 2048, Y: -2560},
	}

	pads := make([]pilot.Pad, 0, len(big)+len(small))
	for _, p := range big {
		pads = append(pads, pilot.Pad{Pos: p, IsBig: true, Active: true})
	}
	for _, p := range small {
		pads = append(pads, pilot.Pad{Pos: p, Active: true})
	}
	return pads
}
