package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// lookup chain only sees what the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if !reflect.DeepEqual(embeddedDefault(), DefaultSnowboardConfig()) {
		t.Error("embedded snowboard.yaml drifted from DefaultSnowboardConfig")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)
	cfg, err := LoadSnowboard("")
	if err != nil {
		t.Fatalf("LoadSnowboard: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnowboardConfig()) {
		t.Error("expected defaults with no config files present")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "custom.yaml")
	writeFile(t, path, "physics:\n  max_speed: 55\nrun:\n  time_limit: 30\n")

	cfg, err := LoadSnowboard(path)
	if err != nil {
		t.Fatalf("LoadSnowboard: %v", err)
	}
	if cfg.Physics.MaxSpeed != 55 || cfg.Run.TimeLimit != 30 {
		t.Errorf("overrides not applied: max_speed=%v time_limit=%v", cfg.Physics.MaxSpeed, cfg.Run.TimeLimit)
	}
	if cfg.Physics.Gravity != DefaultSnowboardConfig().Physics.Gravity {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := LoadSnowboard(filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom path")
	}

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "physics: [not, a, map")
	if _, err := LoadSnowboard(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", ConfigFile), "run:\n  finish_bonus: 111\n")

	cfg, _ := LoadSnowboard("")
	if cfg.Run.FinishBonus != 111 {
		t.Errorf("local config ignored: finish_bonus=%d", cfg.Run.FinishBonus)
	}

	writeFile(t, filepath.Join(home, ".snowboard", "configs", ConfigFile), "run:\n  finish_bonus: 222\n")
	cfg, _ = LoadSnowboard("")
	if cfg.Run.FinishBonus != 222 {
		t.Errorf("user config should win over local: finish_bonus=%d", cfg.Run.FinishBonus)
	}
}

func TestBrokenUserConfigIsSkipped(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".snowboard", "configs", ConfigFile), "{{{")

	cfg, err := LoadSnowboard("")
	if err != nil {
		t.Fatalf("LoadSnowboard: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnowboardConfig()) {
		t.Error("a broken user config should fall through to defaults")
	}
}

func TestApplySnowboardPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		level    float64
		coyote   float64
		crevasse float64
	}{
		{DifficultyEasy, true, 0.0, 0.35, 0},
		{DifficultyNormal, true, 0.3, 0.25, 0.3},
		{DifficultyHard, true, 0.7, 0.15, 0.6},
		{DifficultyFixed, false, 0.0, 0.25, 0.3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnowboardConfig()
			ApplySnowboardPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Rider.CoyoteTime != tc.coyote {
				t.Errorf("CoyoteTime = %v, expected %v", cfg.Rider.CoyoteTime, tc.coyote)
			}
			if math.Abs(cfg.Terrain.CrevasseChance-tc.crevasse) > 1e-12 {
				t.Errorf("CrevasseChance = %v, expected %v", cfg.Terrain.CrevasseChance, tc.crevasse)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("brutal") != "" {
		t.Error("unknown presets should yield empty")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultSnowboardConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*SnowboardConfig)
	}{
		{"zero max charge", func(c *SnowboardConfig) { c.Rider.MaxJumpCharge = 0 }},
		{"negative max speed", func(c *SnowboardConfig) { c.Physics.MaxSpeed = -1 }},
		{"zero probe height", func(c *SnowboardConfig) { c.Physics.ProbeHeight = 0 }},
		{"zero tick rate", func(c *SnowboardConfig) { c.Run.TickRate = 0 }},
		{"crevasse chance above one", func(c *SnowboardConfig) { c.Terrain.CrevasseChance = 1.5 }},
		{"initial level out of range", func(c *SnowboardConfig) { c.Difficulty.InitialLevel = 2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnowboardConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultSnowboardConfig().Difficulty
	cfg.InitialLevel = 0.2
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.2 {
		t.Errorf("Level(0) = %v, expected 0.2", got)
	}
	if got := d.Level(cfg.Progression.MaxAt*2, 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("Level past max_at = %v, expected 1", got)
	}
	if got := d.Level(cfg.Progression.MaxAt/2, 0); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Level at half = %v, expected 0.6", got)
	}

	d.SetEnabled(false)
	if got := d.Level(cfg.Progression.MaxAt, 0); got != 0.2 {
		t.Errorf("disabled Level = %v, expected initial 0.2", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultSnowboardConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(1)

	if got := d.Roughness(0, 0); got != 1+cfg.Scaling.Roughness {
		t.Errorf("Roughness = %v", got)
	}
	if got := d.Speed(40, 0, 0); got != 40*(1+cfg.Scaling.SpeedMultiplier) {
		t.Errorf("Speed = %v", got)
	}
	if got := d.KickerSpacing(30, 0, 0); got != minKickerSpacing {
		t.Errorf("KickerSpacing should clamp to %v, got %v", minKickerSpacing, got)
	}
	if got := d.KickerSpacing(0, 0, 0); got != 0 {
		t.Errorf("disabled kickers should stay disabled, got %v", got)
	}
}
