package arena

import "github.com/Garsondee/Rocket-Sense/internal/pilot"

// Ball is the ball's physics body. Value semantics on purpose: the
// forecast integrates throwaway copies.
type Ball struct {
	Pos pilot.Vec3
	Vel pilot.Vec3
}

// Step integrates one time slice: gravity, then position, then collision
// with floor, ceiling and side walls. Bounces keep BallRestitution of the
// normal speed; floor bounces also scrub ground-plane speed by
// BallFriction.
func (b *Ball) Step(dt float64) {
	b.Vel.Z -= Gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.Z < BallRadius {
		b.Pos.Z = BallRadius
		if b.Vel.Z < 0 {
			b.Vel.Z = -b.Vel.Z * BallRestitution
			b.Vel.X *= BallFriction
			b.Vel.Y *= BallFriction
		}
	}
	if b.Pos.Z > CeilingHeight-BallRadius {
		b.Pos.Z = CeilingHeight - BallRadius
		if b.Vel.Z > 0 {
			b.Vel.Z = -b.Vel.Z * BallRestitution
		}
	}

	if b.Pos.X < -FieldHalfWidth+BallRadius {
		b.Pos.X = -FieldHalfWidth + BallRadius
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * BallRestitution
		}
	}
	if b.Pos.X > FieldHalfWidth-BallRadius {
		b.Pos.X = FieldHalfWidth - BallRadius
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * BallRestitution
		}
	}
	if b.Pos.Y < -FieldHalfLength+BallRadius {
		b.Pos.Y = -FieldHalfLength + BallRadius
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * BallRestitution
		}
	}
	if b.Pos.Y > FieldHalfLength-BallRadius {
		b.Pos.Y = FieldHalfLength - BallRadius
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * BallRestitution
		}
	}
}

// State exports the ball for a snapshot.
func (b Ball) State() pilot.BallState {
	return pilot.BallState{Pos: b.Pos, Vel: b.Vel}
}
