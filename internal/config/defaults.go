package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/snowboard.yaml
var defaultSnowboardYAML []byte

// DefaultSnowboardConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultSnowboardConfig() SnowboardConfig {
	return SnowboardConfig{
		Physics: PhysicsConfig{
			Gravity:             19.6,
			SnapDistance:        0.5,
			SnapMargin:          0.5,
			LandVerticalSpeed:   0.1,
			GroundFollow:        15,
			FootprintHalfLength: 0.8,
			FootprintHalfWidth:  0.25,
			ProbeHeight:         50,
			BaseFriction:        0.2,
			CarveFriction:       5.0,
			Grip:                8.0,
			SteerMinSpeed:       0.5,
			MaxSpeed:            40,
			AirDrag:             0.05,
		},
		Rider: RiderConfig{
			StartHeight:    2,
			TurnRate:       2.5,
			SpinBoost:      2.0,
			SpinMultiplier: 2.0,
			FlipRate:       6,
			AirSteer:       6,
			PitchDecay:     10,
			PitchEpsilon:   0.01,
			ChargeRate:     1.5,
			MaxJumpCharge:  1.0,
			CoyoteTime:     0.25,
			JumpForce:      8,
			JumpAirTime:    1.0,
			Lean:           0.5,
			LeanRate:       5,
			AirRollRate:    2,
			SquashFactor:   0.3,
		},
		Terrain: TerrainConfig{
			Length:         600,
			FreerideLength: 400,
			Width:          24,
			Margin:         4,
			Cell:           1,
			Incline:        0.25,
			NoiseAmplitude: 0.6,
			NoiseScale:     6,
			KickerSpacing:  60,
			KickerLength:   6,
			KickerHeight:   2.5,
			KickerWidth:    8,
			CrevasseChance: 0.3,
			CrevasseLength: 3,
			RunIn:          30,
		},
		Tricks: TricksConfig{
			Tolerance:    30,
			MinAir:       0.5,
			AirBonus:     100,
			BigAirTime:   1.2,
			BigAirPoints: 150,
			FlipPoints:   300,
			RepeatDecay:  0.75,
			Tiers: []TierConfig{
				{Degrees: 180, Points: 100},
				{Degrees: 360, Points: 250},
				{Degrees: 540, Points: 400},
				{Degrees: 720, Points: 600},
				{Degrees: 900, Points: 850},
				{Degrees: 1080, Points: 1200},
			},
		},
		Run: RunConfig{
			TickRate:     60,
			TimeLimit:    90,
			FinishBonus:  500,
			TimeBonus:    10,
			WipeoutDepth: 15,
			CrashPitch:   math.Pi / 2,
			HoldInitial:  0.5,
			HoldRepeat:   0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.25,
				Roughness:        2.0,
				SpacingReduction: 25,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultSnowboardYAML
}
