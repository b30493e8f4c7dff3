package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BotRunConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultBotRunConfig()) {
		t.Errorf("embedded defaults drifted from DefaultBotRunConfig():\nyaml: %+v\ngo:   %+v",
			fromYAML, DefaultBotRunConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultBotRunConfig().Validate(); err != nil {
		t.Fatalf("Validate() on defaults = %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("speed:\n  initial: 5\n  max: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBotRun(path)
	if err != nil {
		t.Fatalf("LoadBotRun() failed: %v", err)
	}
	if cfg.Speed.Initial != 5 || cfg.Speed.Max != 12 {
		t.Errorf("speed = %+v, expected initial 5 max 12", cfg.Speed)
	}
	// Untouched sections keep their defaults
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Gravity = %v, expected default 0.6", cfg.Physics.Gravity)
	}
	if len(cfg.Spawner.Pool) != len(DefaultBotRunConfig().Spawner.Pool) {
		t.Errorf("pool should keep defaults, got %d entries", len(cfg.Spawner.Pool))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBotRun(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBotRun(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBotRun(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BotRunConfig)
	}{
		{"zero gravity", func(c *BotRunConfig) { c.Physics.Gravity = 0 }},
		{"upward jump sign", func(c *BotRunConfig) { c.Physics.JumpStrength = 13 }},
		{"empty phases", func(c *BotRunConfig) { c.Speed.PhaseMultipliers = nil }},
		{"inverted spawn range", func(c *BotRunConfig) { c.Spawner.MaxInterval = 10 }},
		{"inverted rain range", func(c *BotRunConfig) { c.Weather.RainMax = 1 }},
		{"slip cap above one", func(c *BotRunConfig) { c.Weather.SlipCap = 1.5 }},
		{"unknown pool kind", func(c *BotRunConfig) {
			c.Spawner.Pool = append(c.Spawner.Pool, PoolEntry{Kind: "lava", Weight: 1})
		}},
		{"max shrinks faster than min", func(c *BotRunConfig) { c.Spawner.MaxShrink = c.Spawner.MinShrink + 1 }},
		{"negative shrink", func(c *BotRunConfig) { c.Spawner.MinShrink = -1 }},
		{"zero weight", func(c *BotRunConfig) { c.Spawner.Pool[0].Weight = 0 }},
		{"ground fills field", func(c *BotRunConfig) { c.Field.GroundHeight = c.Field.Height }},
		{"bad sky colour", func(c *BotRunConfig) { c.Environment.SkyDusk = "purple" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBotRunConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		progression bool
		initial     float64
	}{
		{DifficultyEasy, true, 2.5},
		{DifficultyNormal, true, 3},
		{DifficultyHard, true, 4},
		{DifficultyFixed, false, 3},
		{"", true, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBotRunConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Speed.Progression != tc.progression || cfg.Spawner.Progression != tc.progression {
				t.Errorf("progression = %v/%v, expected %v",
					cfg.Speed.Progression, cfg.Spawner.Progression, tc.progression)
			}
			if cfg.Speed.Initial != tc.initial {
				t.Errorf("Speed.Initial = %v, expected %v", cfg.Speed.Initial, tc.initial)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be a fixed preset")
	}
}
