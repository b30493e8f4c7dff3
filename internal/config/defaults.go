package config

import (
	_ "embed"
)

//go:embed defaults/botrun.yaml
var defaultBotRunYAML []byte

// DefaultBotRunConfig returns the built-in runner configuration.
// It mirrors defaults/botrun.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBotRunConfig() BotRunConfig {
	return BotRunConfig{
		Field: FieldConfig{
			Width:        0,
			Height:       400,
			GroundHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:           0.6,
			JumpStrength:      -13,
			JumpSlipReduction: 0.3,
			SlipJumpChance:    0.5,
			SlipJumpFactor:    0.6,
			BumpChance:        0.004,
			BumpStrength:      -2,
		},
		Player: PlayerConfig{
			X:                     50,
			Width:                 40,
			Height:                50,
			InvincibilityDuration: 300,
		},
		Speed: SpeedConfig{
			Progression:          true,
			Initial:              3,
			Max:                  10,
			ScoreTickInterval:    10,
			IncreaseInterval:     300,
			IncreaseAmount:       0.5,
			TimeIncreaseInterval: 15 * 1000.0 / 60.0,
			TimeIncreaseAmount:   0.2,
			PhaseInterval:        500,
			PhaseMultipliers:     []float64{1.0, 1.2, 1.0, 1.35},
		},
		Spawner: SpawnerConfig{
			Progression:             true,
			InitialInterval:         150,
			MinInterval:             75,
			MaxInterval:             150,
			FloorInterval:           35,
			MinShrink:               5,
			MaxShrink:               3,
			DifficultyScoreInterval: 100,
			MaxLevel:                8,
			PowerupChance:           0.05,
			WaterMinScore:           200,
			WideWaterChance:         0.3,
			WideWaterOffset:         250,
			Pool: []PoolEntry{
				{Kind: "ground", Weight: 3},
				{Kind: "spike", Weight: 1},
				{Kind: "water", Weight: 1, MinScore: 200},
				{Kind: "enemy", Weight: 2, MinLevel: 2},
				{Kind: "flying", Weight: 2, MinLevel: 3},
				{Kind: "bouncing", Weight: 2, MinLevel: 4},
				{Kind: "water", Weight: 1, MinLevel: 4, MinScore: 200},
				{Kind: "flying", Weight: 1, MinLevel: 6},
				{Kind: "bouncing", Weight: 1, MinLevel: 6},
			},
		},
		Obstacles: ObstaclesConfig{
			Ground: GroundConfig{
				MinWidth:  20,
				MaxWidth:  50,
				MinHeight: 30,
				MaxHeight: 70,
			},
			Water: WaterConfig{
				MinWidth:        60,
				MaxWidth:        100,
				WideMinWidth:    160,
				WideMaxWidth:    220,
				BaseHeight:      12,
				RippleAmplitude: 3,
				RippleSpeed:     0.1,
			},
			Enemy: EnemyConfig{
				Width:        36,
				Height:       30,
				HoverHeight:  20,
				BobAmplitude: 8,
				BobSpeed:     0.08,
			},
			Spike: SpikeConfig{
				MinWidth:  30,
				MaxWidth:  60,
				MinHeight: 20,
				MaxHeight: 40,
				PeakWidth: 10,
			},
			Flying: FlyingConfig{
				Size:        28,
				OrbitRadius: 25,
				OrbitSpeed:  0.05,
				MinAltitude: 60,
			},
			Bouncing: BouncingConfig{
				Size:           26,
				Gravity:        0.4,
				Elasticity:     0.85,
				CeilingHeight:  180,
				LaunchSpeed:    -8,
				MinBounceSpeed: 6,
			},
			Heart: HeartConfig{
				Width:        24,
				Height:       22,
				FloatHeight:  60,
				BobAmplitude: 6,
				BobSpeed:     0.06,
			},
		},
		Weather: WeatherConfig{
			DryMin:        900,
			DryMax:        1800,
			RainMin:       480,
			RainMax:       900,
			RainMinScore:  150,
			SlipRise:      0.002,
			SlipDecay:     0.003,
			SlipCap:       0.8,
			StormFadeRate: 0.01,
			FrictionLoss:  0.5,
			DropRate:      1.5,
			DropSpeed:     8,
			MaxDrops:      200,
		},
		Environment: EnvironmentConfig{
			CloudCount:      5,
			CloudMinSize:    15,
			CloudMaxSize:    35,
			CloudMinSpeed:   0.1,
			CloudMaxSpeed:   0.4,
			CloudRespawn:    200,
			StarCount:       150,
			StarMinSize:     0.5,
			StarMaxSize:     2,
			StarMinOpacity:  0.3,
			StarMaxOpacity:  0.8,
			TwinkleSpeed:    0.05,
			StarThreshold:   0.3,
			SkyDay:          "#87CEEB",
			SkyDusk:         "#483D8B",
			SkyCycleSeconds: 120,
			GameOverSky:     "#2C3E50",
		},
		Clock: ClockConfig{
			MaxDelta: 4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
// Used by the CLI to print a starting point for custom configs.
func DefaultYAML() []byte {
	return defaultBotRunYAML
}
