package motion

import (
	"errors"
	"fmt"
)

// Params holds every tunable of the locomotion core.
// Units are meters, seconds and radians.
type Params struct {
	Gravity float64 // downward acceleration

	// Contact classification. The distance and vertical speed gates are
	// independent tunables.
	SnapDistance      float64
	SnapMargin        float64 // added to SnapDistance
	LandVerticalSpeed float64 // velocity.y must not exceed this to be grounded
	GroundFollow      float64 // rate at which position.y eases onto the sampled ground

	// Contact patch: half extents of the probe rectangle and the height the
	// probes start from above the rider.
	FootprintHalfLength float64
	FootprintHalfWidth  float64
	ProbeHeight         float64

	BaseFriction  float64
	CarveFriction float64
	Grip          float64 // exponential blend rate toward the slope-aligned facing
	SteerMinSpeed float64
	MaxSpeed      float64

	TurnRate       float64 // rad/s of grounded turning
	SpinBoost      float64 // extra magnitude from spin actions while airborne
	SpinMultiplier float64 // airborne turn magnitude multiplier
	FlipRate       float64 // rad/s of pitch while flipping
	AirSteer       float64 // lateral acceleration while flipping
	AirDrag        float64

	PitchDecay   float64 // grounded pitch recovery rate
	PitchEpsilon float64

	ChargeRate    float64
	MaxJumpCharge float64
	CoyoteTime    float64
	JumpForce     float64
	JumpAirTime   float64 // airTime assigned on launch, past the coyote window

	Lean         float64 // grounded roll target magnitude
	LeanRate     float64
	AirRollRate  float64
	SquashFactor float64 // vertical scale lost per unit of jump charge
}

// NoGround is the elevation assumed when no probe hits terrain.
const NoGround = -1e9

// ErrNonFiniteStep is returned by Engine.Tick for NaN, infinite or negative dt.
var ErrNonFiniteStep = errors.New("motion: non-finite or negative time step")

// DefaultParams returns the tuning the game ships with.
func DefaultParams() Params {
	return Params{
		Gravity: 19.6,

		SnapDistance:      0.5,
		SnapMargin:        0.5,
		LandVerticalSpeed: 0.1,
		GroundFollow:      15.0,

		FootprintHalfLength: 0.8,
		FootprintHalfWidth:  0.25,
		ProbeHeight:         50.0,

		BaseFriction:  0.2,
		CarveFriction: 5.0,
		Grip:          8.0,
		SteerMinSpeed: 0.5,
		MaxSpeed:      40.0,

		TurnRate:       2.5,
		SpinBoost:      2.0,
		SpinMultiplier: 2.0,
		FlipRate:       6.0,
		AirSteer:       6.0,
		AirDrag:        0.05,

		PitchDecay:   10.0,
		PitchEpsilon: 0.01,

		ChargeRate:    1.5,
		MaxJumpCharge: 1.0,
		CoyoteTime:    0.25,
		JumpForce:     8.0,
		JumpAirTime:   1.0,

		Lean:         0.5,
		LeanRate:     5.0,
		AirRollRate:  2.0,
		SquashFactor: 0.3,
	}
}

// Validate rejects tunings the tick cannot run with.
func (p Params) Validate() error {
	switch {
	case p.MaxJumpCharge <= 0:
		return fmt.Errorf("motion: max jump charge must be positive, got %v", p.MaxJumpCharge)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("motion: max speed must be positive, got %v", p.MaxSpeed)
	case p.ProbeHeight <= 0:
		return fmt.Errorf("motion: probe height must be positive, got %v", p.ProbeHeight)
	case p.Gravity < 0:
		return fmt.Errorf("motion: gravity must not be negative, got %v", p.Gravity)
	case p.SquashFactor < 0 || p.SquashFactor*p.MaxJumpCharge >= 1:
		return fmt.Errorf("motion: squash factor %v collapses the body at full charge", p.SquashFactor)
	}
	return nil
}

// groundedThreshold is the largest distance above the sampled ground that
// still counts as contact.
func (p Params) groundedThreshold() float64 {
	return p.SnapDistance + p.SnapMargin
}
