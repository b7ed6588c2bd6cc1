package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "snowboard.yaml"

// LoadSnowboard loads run configuration.
// Search order: customPath -> ~/.snowboard/configs/snowboard.yaml -> ./configs/snowboard.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadSnowboard(customPath string) (SnowboardConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnowboardConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultSnowboardConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if it is unusable.
func embeddedDefault() SnowboardConfig {
	var cfg SnowboardConfig
	if err := yaml.Unmarshal(defaultSnowboardYAML, &cfg); err != nil {
		return DefaultSnowboardConfig()
	}
	return cfg
}

func decode(data []byte) (SnowboardConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snowboard", "configs", filename)
}

// ApplySnowboardPreset modifies the config based on a difficulty preset.
func ApplySnowboardPreset(cfg *SnowboardConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust forgiveness based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rider.CoyoteTime = 0.35
		cfg.Run.CrashPitch = cfg.Run.CrashPitch * 1.25
		cfg.Terrain.CrevasseChance = 0
	case DifficultyHard:
		cfg.Rider.CoyoteTime = 0.15
		cfg.Run.CrashPitch = cfg.Run.CrashPitch * 0.75
		cfg.Terrain.CrevasseChance = min(1, cfg.Terrain.CrevasseChance*2)
	}
}

// Validate rejects values the simulation cannot run with.
func (c SnowboardConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.probe_height", c.Physics.ProbeHeight)
	positive("physics.max_speed", c.Physics.MaxSpeed)
	positive("rider.max_jump_charge", c.Rider.MaxJumpCharge)
	positive("terrain.length", c.Terrain.Length)
	positive("terrain.freeride_length", c.Terrain.FreerideLength)
	positive("terrain.width", c.Terrain.Width)
	positive("terrain.cell", c.Terrain.Cell)
	positive("terrain.noise_scale", c.Terrain.NoiseScale)
	positive("run.tick_rate", float64(c.Run.TickRate))
	positive("run.wipeout_depth", c.Run.WipeoutDepth)
	positive("run.crash_pitch", c.Run.CrashPitch)
	if c.Terrain.CrevasseChance < 0 || c.Terrain.CrevasseChance > 1 {
		errs = append(errs, fmt.Errorf("terrain.crevasse_chance must be in [0, 1], got %v", c.Terrain.CrevasseChance))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
