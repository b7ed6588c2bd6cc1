package config

import "math"

// DifficultyManager calculates dynamic run parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the max speed for the current level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Roughness returns the terrain roughness for the current level, starting at 1.
func (d *DifficultyManager) Roughness(score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return 1.0 + level*d.cfg.Scaling.Roughness
}

// KickerSpacing returns the distance between kickers for the current level.
func (d *DifficultyManager) KickerSpacing(baseSpacing float64, score int, ticks int) float64 {
	if baseSpacing <= 0 {
		return baseSpacing
	}
	level := d.Level(score, ticks)
	result := baseSpacing - level*d.cfg.Scaling.SpacingReduction
	if result < minKickerSpacing { // room to land between kickers
		result = minKickerSpacing
	}
	return result
}

const minKickerSpacing = 25.0

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
