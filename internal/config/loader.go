package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBotRun loads the runner configuration.
// Search order: customPath -> ~/.botrun/configs/botrun.yaml -> ./configs/botrun.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial YAML only
// overrides the keys it names.
func LoadBotRun(customPath string) (BotRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BotRunConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BotRunConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BotRunConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("botrun.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "botrun.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBotRunYAML)
	if err != nil {
		return DefaultBotRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid
// files are skipped so the next search location is consulted.
func tryLoad(path string) (BotRunConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BotRunConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return BotRunConfig{}, false
	}
	return cfg, true
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (BotRunConfig, error) {
	cfg := DefaultBotRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BotRunConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".botrun", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BotRunConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Speed.Progression = false
		cfg.Spawner.Progression = false
		return
	case "":
		return
	}

	cfg.Speed.Progression = true
	cfg.Spawner.Progression = true

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 2.5
		cfg.Speed.Max = 8
		cfg.Spawner.MinInterval += 15
		cfg.Spawner.MaxInterval += 15
		cfg.Spawner.PowerupChance = 0.08
	case DifficultyHard:
		cfg.Speed.Initial = 4
		cfg.Speed.Max = 12
		cfg.Spawner.MinInterval = 60
		cfg.Spawner.MaxInterval = 120
		cfg.Spawner.PowerupChance = 0.03
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c BotRunConfig) Validate() error {
	switch {
	case c.Field.Height <= 0:
		return fmt.Errorf("%w: field.height must be positive", ErrInvalidConfig)
	case c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height:
		return fmt.Errorf("%w: field.ground_height must be in [0, field.height)", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpStrength >= 0:
		return fmt.Errorf("%w: physics.jump_strength must be negative", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial:
		return fmt.Errorf("%w: speed.initial must be positive and not above speed.max", ErrInvalidConfig)
	case c.Speed.ScoreTickInterval <= 0:
		return fmt.Errorf("%w: speed.score_tick_interval must be positive", ErrInvalidConfig)
	case len(c.Speed.PhaseMultipliers) == 0:
		return fmt.Errorf("%w: speed.phase_multipliers must not be empty", ErrInvalidConfig)
	case c.Speed.PhaseInterval <= 0 || c.Speed.IncreaseInterval <= 0:
		return fmt.Errorf("%w: speed intervals must be positive", ErrInvalidConfig)
	case c.Spawner.MinInterval <= 0 || c.Spawner.MaxInterval < c.Spawner.MinInterval:
		return fmt.Errorf("%w: spawner interval range is inverted", ErrInvalidConfig)
	case c.Spawner.FloorInterval <= 0:
		return fmt.Errorf("%w: spawner.floor_interval must be positive", ErrInvalidConfig)
	case c.Spawner.MinShrink < 0 || c.Spawner.MaxShrink < 0:
		return fmt.Errorf("%w: spawner shrink rates must not be negative", ErrInvalidConfig)
	case c.Spawner.MaxShrink > c.Spawner.MinShrink:
		return fmt.Errorf("%w: spawner.max_shrink must not exceed spawner.min_shrink", ErrInvalidConfig)
	case c.Spawner.DifficultyScoreInterval <= 0:
		return fmt.Errorf("%w: spawner.difficulty_score_interval must be positive", ErrInvalidConfig)
	case len(c.Spawner.Pool) == 0:
		return fmt.Errorf("%w: spawner.pool must not be empty", ErrInvalidConfig)
	case c.Weather.DryMax < c.Weather.DryMin || c.Weather.RainMax < c.Weather.RainMin:
		return fmt.Errorf("%w: weather interval range is inverted", ErrInvalidConfig)
	case c.Weather.DryMin <= 0 || c.Weather.RainMin <= 0:
		return fmt.Errorf("%w: weather intervals must be positive", ErrInvalidConfig)
	case c.Weather.SlipCap < 0 || c.Weather.SlipCap > 1:
		return fmt.Errorf("%w: weather.slip_cap must be in [0, 1]", ErrInvalidConfig)
	}

	for _, e := range c.Spawner.Pool {
		if !lo.Contains(PoolKinds, e.Kind) {
			return fmt.Errorf("%w: unknown pool kind %q", ErrInvalidConfig, e.Kind)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%w: pool kind %q has non-positive weight", ErrInvalidConfig, e.Kind)
		}
	}

	env := c.Environment
	for key, hex := range map[string]string{
		"sky_day":       env.SkyDay,
		"sky_dusk":      env.SkyDusk,
		"game_over_sky": env.GameOverSky,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: environment.%s: %v", ErrInvalidConfig, key, err)
		}
	}
	return nil
}

// PoolKinds lists the obstacle kinds accepted in spawner.pool.
var PoolKinds = []string{"ground", "water", "enemy", "spike", "flying", "bouncing"}
