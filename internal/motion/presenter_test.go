package motion

import (
	"math"
	"testing"
)

func TestPoseSquashesWithCharge(t *testing.T) {
	p := DefaultParams()
	s := NewState(Vec3{1, 2, 3}, 0)
	s.JumpCharge = 0.5

	pose := NewPresenter(p).Pose(s)
	if !approx(pose.ScaleY, 1-0.5*p.SquashFactor) {
		t.Errorf("ScaleY = %v, expected %v", pose.ScaleY, 1-0.5*p.SquashFactor)
	}
	if pose.Position != s.Position {
		t.Errorf("Position = %v, expected %v", pose.Position, s.Position)
	}
	if s.JumpCharge != 0.5 {
		t.Error("Pose must not modify the state")
	}
}

func TestPoseTransformPlacesOrigin(t *testing.T) {
	pose := Pose{Position: Vec3{4, 5, 6}, Heading: math.Pi / 2, ScaleY: 1}
	m := pose.Transform()

	origin := m.Mul4x1([4]float64{0, 0, 0, 1})
	if !approx(origin[0], 4) || !approx(origin[1], 5) || !approx(origin[2], 6) {
		t.Errorf("origin maps to %v, expected (4,5,6)", origin)
	}

	nose := m.Mul4x1([4]float64{0, 0, 1, 1})
	if !approx(nose[0], 5) || !approx(nose[2], 6) {
		t.Errorf("nose maps to %v, expected (5,5,6) at heading pi/2", nose)
	}
}

func TestForwardAndLeftAreOrthogonal(t *testing.T) {
	for _, h := range []float64{0, 0.7, -2.1, math.Pi} {
		f, l := Forward(h), LeftAxis(h)
		if !approx(f.Dot(l), 0) {
			t.Errorf("heading %v: forward·left = %v", h, f.Dot(l))
		}
		if !approx(f.Len(), 1) || !approx(l.Len(), 1) {
			t.Errorf("heading %v: axes should be unit length", h)
		}
	}
}

func TestBlendRoll(t *testing.T) {
	p := DefaultParams()

	grounded := blendRoll(0, true, Input{Left: true}, 0.1, p)
	if !approx(grounded, p.Lean*0.1*p.LeanRate) {
		t.Errorf("grounded lean = %v, expected %v", grounded, p.Lean*0.1*p.LeanRate)
	}

	airborne := blendRoll(0.4, false, Input{Left: true}, 0.1, p)
	if !approx(airborne, 0.4-0.4*0.1*p.AirRollRate) {
		t.Errorf("airborne roll = %v, expected %v", airborne, 0.4-0.4*0.1*p.AirRollRate)
	}

	if still := blendRoll(0.25, true, Input{Right: true}, 0, p); still != 0.25 {
		t.Errorf("dt=0 should not change roll, got %v", still)
	}
}
