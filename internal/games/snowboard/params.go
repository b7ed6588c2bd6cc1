package snowboard

import (
	"github.com/vovakirdan/tui-snowboard/internal/config"
	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/motion"
	"github.com/vovakirdan/tui-snowboard/internal/terrain"
	"github.com/vovakirdan/tui-snowboard/internal/tricks"
)

// ParamsFromConfig maps the physics and rider sections onto engine tuning.
func ParamsFromConfig(cfg config.SnowboardConfig) motion.Params {
	ph, r := cfg.Physics, cfg.Rider
	return motion.Params{
		Gravity:             ph.Gravity,
		SnapDistance:        ph.SnapDistance,
		SnapMargin:          ph.SnapMargin,
		LandVerticalSpeed:   ph.LandVerticalSpeed,
		GroundFollow:        ph.GroundFollow,
		FootprintHalfLength: ph.FootprintHalfLength,
		FootprintHalfWidth:  ph.FootprintHalfWidth,
		ProbeHeight:         ph.ProbeHeight,
		BaseFriction:        ph.BaseFriction,
		CarveFriction:       ph.CarveFriction,
		Grip:                ph.Grip,
		SteerMinSpeed:       ph.SteerMinSpeed,
		MaxSpeed:            ph.MaxSpeed,
		TurnRate:            r.TurnRate,
		SpinBoost:           r.SpinBoost,
		SpinMultiplier:      r.SpinMultiplier,
		FlipRate:            r.FlipRate,
		AirSteer:            r.AirSteer,
		AirDrag:             ph.AirDrag,
		PitchDecay:          r.PitchDecay,
		PitchEpsilon:        r.PitchEpsilon,
		ChargeRate:          r.ChargeRate,
		MaxJumpCharge:       r.MaxJumpCharge,
		CoyoteTime:          r.CoyoteTime,
		JumpForce:           r.JumpForce,
		JumpAirTime:         r.JumpAirTime,
		Lean:                r.Lean,
		LeanRate:            r.LeanRate,
		AirRollRate:         r.AirRollRate,
		SquashFactor:        r.SquashFactor,
	}
}

// TerrainOptions maps the terrain section onto generator options for a mode.
func TerrainOptions(cfg config.TerrainConfig, mode Mode) terrain.Options {
	length := cfg.Length
	if mode == ModeFreeride {
		length = cfg.FreerideLength
	}
	return terrain.Options{
		Length:         length,
		Width:          cfg.Width,
		Margin:         cfg.Margin,
		Cell:           cfg.Cell,
		Incline:        cfg.Incline,
		NoiseAmplitude: cfg.NoiseAmplitude,
		NoiseScale:     cfg.NoiseScale,
		KickerSpacing:  cfg.KickerSpacing,
		KickerLength:   cfg.KickerLength,
		KickerHeight:   cfg.KickerHeight,
		KickerWidth:    cfg.KickerWidth,
		CrevasseChance: cfg.CrevasseChance,
		CrevasseLength: cfg.CrevasseLength,
		RunIn:          cfg.RunIn,
	}
}

// TricksConfig maps the tricks section onto scorer tuning.
func TricksConfig(cfg config.TricksConfig) tricks.Config {
	tc := tricks.DefaultConfig()
	tc.Tolerance = cfg.Tolerance
	tc.MinAir = cfg.MinAir
	tc.AirBonus = cfg.AirBonus
	tc.BigAirTime = cfg.BigAirTime
	tc.BigAirPoints = cfg.BigAirPoints
	tc.FlipPoints = cfg.FlipPoints
	tc.RepeatDecay = cfg.RepeatDecay
	if len(cfg.Tiers) > 0 {
		tc.Tiers = make([]tricks.Tier, len(cfg.Tiers))
		for i, t := range cfg.Tiers {
			tc.Tiers[i] = tricks.Tier{Degrees: t.Degrees, Points: t.Points}
		}
	}
	return tc
}

// InputFromFrame reads the riding actions out of a platform frame.
func InputFromFrame(in core.InputFrame) motion.Input {
	return motion.Input{
		Forward:   in.Has(core.ActionForward),
		Backward:  in.Has(core.ActionBackward),
		Left:      in.Has(core.ActionLeft),
		Right:     in.Has(core.ActionRight),
		SpinLeft:  in.Has(core.ActionSpinLeft),
		SpinRight: in.Has(core.ActionSpinRight),
		Jump:      in.Has(core.ActionJump),
		Carve:     in.Has(core.ActionCarve),
	}
}
