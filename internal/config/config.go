// Package config provides YAML-based configuration loading and
// difficulty management for the snowboard runs.
package config

// SnowboardConfig contains all configuration for a run.
type SnowboardConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Rider      RiderConfig      `yaml:"rider"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Tricks     TricksConfig     `yaml:"tricks"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines contact and sliding parameters.
type PhysicsConfig struct {
	Gravity             float64 `yaml:"gravity"`
	SnapDistance        float64 `yaml:"snap_distance"`
	SnapMargin          float64 `yaml:"snap_margin"`
	LandVerticalSpeed   float64 `yaml:"land_vertical_speed"`
	GroundFollow        float64 `yaml:"ground_follow"`
	FootprintHalfLength float64 `yaml:"footprint_half_length"`
	FootprintHalfWidth  float64 `yaml:"footprint_half_width"`
	ProbeHeight         float64 `yaml:"probe_height"`
	BaseFriction        float64 `yaml:"base_friction"`
	CarveFriction       float64 `yaml:"carve_friction"`
	Grip                float64 `yaml:"grip"`
	SteerMinSpeed       float64 `yaml:"steer_min_speed"`
	MaxSpeed            float64 `yaml:"max_speed"`
	AirDrag             float64 `yaml:"air_drag"`
}

// RiderConfig defines steering, jumping and body parameters.
type RiderConfig struct {
	StartHeight    float64 `yaml:"start_height"` // above spawn
	TurnRate       float64 `yaml:"turn_rate"`
	SpinBoost      float64 `yaml:"spin_boost"`
	SpinMultiplier float64 `yaml:"spin_multiplier"`
	FlipRate       float64 `yaml:"flip_rate"`
	AirSteer       float64 `yaml:"air_steer"`
	PitchDecay     float64 `yaml:"pitch_decay"`
	PitchEpsilon   float64 `yaml:"pitch_epsilon"`
	ChargeRate     float64 `yaml:"charge_rate"`
	MaxJumpCharge  float64 `yaml:"max_jump_charge"`
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpForce      float64 `yaml:"jump_force"`
	JumpAirTime    float64 `yaml:"jump_air_time"`
	Lean           float64 `yaml:"lean"`
	LeanRate       float64 `yaml:"lean_rate"`
	AirRollRate    float64 `yaml:"air_roll_rate"`
	SquashFactor   float64 `yaml:"squash_factor"`
}

// TerrainConfig defines course generation.
type TerrainConfig struct {
	Length         float64 `yaml:"length"`
	FreerideLength float64 `yaml:"freeride_length"` // per segment
	Width          float64 `yaml:"width"`
	Margin         float64 `yaml:"margin"`
	Cell           float64 `yaml:"cell"`
	Incline        float64 `yaml:"incline"`
	NoiseAmplitude float64 `yaml:"noise_amplitude"`
	NoiseScale     float64 `yaml:"noise_scale"`
	KickerSpacing  float64 `yaml:"kicker_spacing"`
	KickerLength   float64 `yaml:"kicker_length"`
	KickerHeight   float64 `yaml:"kicker_height"`
	KickerWidth    float64 `yaml:"kicker_width"`
	CrevasseChance float64 `yaml:"crevasse_chance"`
	CrevasseLength float64 `yaml:"crevasse_length"`
	RunIn          float64 `yaml:"run_in"`
}

// TricksConfig defines trick scoring.
type TricksConfig struct {
	Tolerance    float64      `yaml:"tolerance"` // degrees
	MinAir       float64      `yaml:"min_air"`
	AirBonus     float64      `yaml:"air_bonus"`
	BigAirTime   float64      `yaml:"big_air_time"`
	BigAirPoints int          `yaml:"big_air_points"`
	FlipPoints   int          `yaml:"flip_points"`
	RepeatDecay  float64      `yaml:"repeat_decay"`
	Tiers        []TierConfig `yaml:"tiers"`
}

// TierConfig is one spin tier.
type TierConfig struct {
	Degrees int `yaml:"degrees"`
	Points  int `yaml:"points"`
}

// RunConfig defines run rules and input timing.
type RunConfig struct {
	TickRate     int     `yaml:"tick_rate"`
	TimeLimit    float64 `yaml:"time_limit"` // seconds, slopestyle only
	FinishBonus  int     `yaml:"finish_bonus"`
	TimeBonus    int     `yaml:"time_bonus"` // per second left at the finish
	WipeoutDepth float64 `yaml:"wipeout_depth"`
	CrashPitch   float64 `yaml:"crash_pitch"` // radians
	HoldInitial  float64 `yaml:"hold_initial"`
	HoldRepeat   float64 `yaml:"hold_repeat"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to max speed at max difficulty
	Roughness        float64 `yaml:"roughness"`         // added to terrain roughness at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // kicker spacing removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
