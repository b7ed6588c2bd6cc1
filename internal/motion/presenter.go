package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is the renderable projection of a State.
type Pose struct {
	Position Vec3
	Heading  float64
	Pitch    float64
	Roll     float64
	ScaleY   float64 // squash while charging a jump, 1 at rest
	Grounded bool
}

// Transform composes the model matrix: translate, yaw, pitch, roll, squash.
func (p Pose) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(p.Heading)).
		Mul4(mgl64.HomogRotate3DX(p.Pitch)).
		Mul4(mgl64.HomogRotate3DZ(p.Roll)).
		Mul4(mgl64.Scale3D(1, p.ScaleY, 1))
}

// Presenter derives poses for rendering. It never writes to a State.
type Presenter struct {
	params Params
}

// NewPresenter creates a presenter using the squash tuning from p.
func NewPresenter(p Params) Presenter {
	return Presenter{params: p}
}

// Pose projects s into a renderable transform.
func (pr Presenter) Pose(s *State) Pose {
	return Pose{
		Position: s.Position,
		Heading:  s.Heading,
		Pitch:    s.Pitch,
		Roll:     s.Roll,
		ScaleY:   1 - s.JumpCharge*pr.params.SquashFactor,
		Grounded: s.Grounded(),
	}
}

// Forward returns the horizontal unit facing for a heading.
func Forward(heading float64) Vec3 {
	return Vec3{math.Sin(heading), 0, math.Cos(heading)}
}

// LeftAxis returns the horizontal unit vector to the rider's left.
func LeftAxis(heading float64) Vec3 {
	return Vec3{math.Cos(heading), 0, -math.Sin(heading)}
}

// blendRoll eases roll toward the lean implied by lateral input while
// grounded, and back to level while airborne.
func blendRoll(roll float64, grounded bool, in Input, dt float64, p Params) float64 {
	target, rate := 0.0, p.AirRollRate
	if grounded {
		target, rate = in.lateral()*p.Lean, p.LeanRate
	}
	return roll + (target-roll)*math.Min(1, dt*rate)
}
