package arena

import (
	"math"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

// Car holds one vehicle's physics body plus the bits the kinematics need
// that a Snapshot does not carry (airborne state).
type Car struct {
	State pilot.CarState

	onGround bool
	jumpHeld bool // edge detection: a new jump needs a release first
}

// NewCar places a grounded car at pos facing yaw.
func NewCar(name string, team int, pos pilot.Vec3, yaw float64) Car {
	pos.Z = CarRestHeight
	return Car{
		State: pilot.CarState{
			Name:  name,
			Team:  team,
			Pos:   pos,
			Rot:   pilot.Rotation{Yaw: yaw},
			Boost: 33,
		},
		onGround: true,
	}
}

// Apply advances the car by dt under the given control frame. The model is
// deliberately coarse: ground driving, a jump impulse, gravity in the air.
func (c *Car) Apply(frame pilot.ControlFrame, dt float64) {
	s := &c.State

	if c.onGround {
		// Steering turns the heading; turn authority needs some speed.
		speed := s.Vel.Flat().Length()
		authority := math.Min(1, speed/300+0.2)
		steer := clamp(frame.Steer, -1, 1)
		s.Rot.Yaw += steer * TurnRate * authority * dt
		if s.Rot.Yaw > math.Pi {
			s.Rot.Yaw -= 2 * math.Pi
		}
		if s.Rot.Yaw < -math.Pi {
			s.Rot.Yaw += 2 * math.Pi
		}

		accel := clamp(frame.Throttle, -1, 1) * ThrottleAccel
		if frame.Boost && s.Boost > 0 {
			accel += BoostAccel
			s.Boost = math.Max(0, s.Boost-33*dt)
		}

		forward := pilot.Vec3{X: math.Cos(s.Rot.Yaw), Y: math.Sin(s.Rot.Yaw)}
		s.Vel = s.Vel.Add(forward.Scale(accel * dt))

		if frame.Throttle == 0 && !frame.Boost {
			s.Vel = s.Vel.Scale(math.Max(0, 1-CoastDrag*dt))
		}

		// Grounded cars move along their heading: project velocity onto it.
		ground := s.Vel.Flat().Length()
		s.Vel = forward.Scale(ground)

		if frame.Jump && !c.jumpHeld {
			s.Vel.Z = JumpImpulse
			c.onGround = false
		}
	} else {
		s.Vel.Z -= Gravity * dt
		// An air pitch input with jump is the dodge: convert some of it
		// into forward impulse once per flip window.
		if frame.Jump && !c.jumpHeld && frame.Pitch < 0 {
			forward := pilot.Vec3{X: math.Cos(s.Rot.Yaw), Y: math.Sin(s.Rot.Yaw)}
			s.Vel = s.Vel.Add(forward.Scale(500))
		}
	}
	c.jumpHeld = frame.Jump

	if speed := s.Vel.Length(); speed > CarMaxSpeed {
		s.Vel = s.Vel.Scale(CarMaxSpeed / speed)
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	if s.Pos.Z <= CarRestHeight {
		s.Pos.Z = CarRestHeight
		if s.Vel.Z < 0 {
			s.Vel.Z = 0
		}
		c.onGround = true
	}
	s.Pos.X = clamp(s.Pos.X, -FieldHalfWidth, FieldHalfWidth)
	s.Pos.Y = clamp(s.Pos.Y, -FieldHalfLength, FieldHalfLength)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
