// Package motion implements the rider locomotion core: a single owned motion
// record advanced once per tick across a terrain that is only reachable
// through vertical probes.
//
// The package has no rendering or input-device dependencies. Hosts feed it an
// Input snapshot per tick and read a Pose back for display.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the world-space vector type used throughout the core.
// Y is up; riders travel downhill along +Z on generated courses.
type Vec3 = mgl64.Vec3

// Regime is the rider's contact classification for the current tick.
type Regime int

const (
	Airborne Regime = iota
	Grounded
)

// String returns a human-readable name for the regime.
func (r Regime) String() string {
	switch r {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// State is the authoritative motion record for one rider.
// Only Engine.Tick and the methods below mutate it; everything else reads it
// between ticks.
type State struct {
	Position Vec3
	Velocity Vec3

	Heading float64 // yaw around +Y, radians
	Pitch   float64 // flip rotation, radians
	Roll    float64 // cosmetic lean, radians

	Regime     Regime
	AirTime    float64 // seconds since leaving the ground
	JumpCharge float64 // in [0, Params.MaxJumpCharge]

	Score         int
	LastTrickName string
}

// NewState creates a rider hovering startHeight above spawn with no velocity.
func NewState(spawn Vec3, startHeight float64) *State {
	s := &State{}
	s.Reset(spawn, startHeight)
	return s
}

// Reset returns the record to its session-start values.
func (s *State) Reset(spawn Vec3, startHeight float64) {
	*s = State{
		Position: spawn.Add(Vec3{0, startHeight, 0}),
		Regime:   Airborne,
	}
}

// Relocate moves the rider to pos. Velocity, orientation, regime, charge and
// score carry over.
func (s *State) Relocate(pos Vec3) {
	s.Position = pos
}

// Grounded reports whether the rider is in contact with the terrain.
func (s *State) Grounded() bool {
	return s.Regime == Grounded
}

// Speed returns the magnitude of the rider's velocity.
func (s *State) Speed() float64 {
	return s.Velocity.Len()
}

// wrapAngle keeps an angle in [-pi, pi] so headings stay bounded over long sessions.
func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
