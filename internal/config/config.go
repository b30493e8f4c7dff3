// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

// BotRunConfig contains all tunables for the runner simulation.
// Lengths are logical field units, durations are delta-time units
// (1.0 = one frame at 60 Hz) unless a field says otherwise.
type BotRunConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Speed       SpeedConfig       `yaml:"speed"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Weather     WeatherConfig     `yaml:"weather"`
	Environment EnvironmentConfig `yaml:"environment"`
	Clock       ClockConfig       `yaml:"clock"`
}

// FieldConfig defines the logical playfield.
type FieldConfig struct {
	Width        float64 `yaml:"width"` // 0 = derive from terminal aspect
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines gravity, jump and wet-ground behaviour of the player.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpStrength      float64 `yaml:"jump_strength"` // Negative: up is -Y
	JumpSlipReduction float64 `yaml:"jump_slip_reduction"`
	SlipJumpChance    float64 `yaml:"slip_jump_chance"`
	SlipJumpFactor    float64 `yaml:"slip_jump_factor"`
	BumpChance        float64 `yaml:"bump_chance"`   // Per dt, scaled by slipperiness
	BumpStrength      float64 `yaml:"bump_strength"` // Negative velocity of an involuntary hop
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	X                     float64 `yaml:"x"`
	Width                 float64 `yaml:"width"`
	Height                float64 `yaml:"height"`
	InvincibilityDuration float64 `yaml:"invincibility_duration"`
}

// SpeedConfig defines scroll speed progression.
type SpeedConfig struct {
	Progression          bool      `yaml:"progression"`
	Initial              float64   `yaml:"initial"`
	Max                  float64   `yaml:"max"`
	ScoreTickInterval    float64   `yaml:"score_tick_interval"`
	IncreaseInterval     int       `yaml:"increase_interval"` // Score points
	IncreaseAmount       float64   `yaml:"increase_amount"`
	TimeIncreaseInterval float64   `yaml:"time_increase_interval"` // 0 disables
	TimeIncreaseAmount   float64   `yaml:"time_increase_amount"`
	PhaseInterval        int       `yaml:"phase_interval"` // Score points
	PhaseMultipliers     []float64 `yaml:"phase_multipliers"`
}

// SpawnerConfig defines spawn timing, difficulty levels and the variant pool.
type SpawnerConfig struct {
	Progression             bool        `yaml:"progression"`
	InitialInterval         float64     `yaml:"initial_interval"`
	MinInterval             float64     `yaml:"min_interval"`
	MaxInterval             float64     `yaml:"max_interval"`
	FloorInterval           float64     `yaml:"floor_interval"`
	MinShrink               float64     `yaml:"min_shrink"` // Per level
	MaxShrink               float64     `yaml:"max_shrink"` // Per level
	DifficultyScoreInterval int         `yaml:"difficulty_score_interval"`
	MaxLevel                int         `yaml:"max_level"`
	PowerupChance           float64     `yaml:"powerup_chance"`
	WaterMinScore           int         `yaml:"water_min_score"`
	WideWaterChance         float64     `yaml:"wide_water_chance"`
	WideWaterOffset         float64     `yaml:"wide_water_offset"`
	Pool                    []PoolEntry `yaml:"pool"`
}

// PoolEntry adds Weight copies of Kind to the candidate pool once the
// difficulty level reaches MinLevel and the score reaches MinScore.
type PoolEntry struct {
	Kind     string `yaml:"kind"`
	Weight   int    `yaml:"weight"`
	MinLevel int    `yaml:"min_level"`
	MinScore int    `yaml:"min_score"`
}

// ObstaclesConfig defines per-variant geometry and motion.
type ObstaclesConfig struct {
	Ground   GroundConfig   `yaml:"ground"`
	Water    WaterConfig    `yaml:"water"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Spike    SpikeConfig    `yaml:"spike"`
	Flying   FlyingConfig   `yaml:"flying"`
	Bouncing BouncingConfig `yaml:"bouncing"`
	Heart    HeartConfig    `yaml:"heart"`
}

// GroundConfig defines the plain ground hazard.
type GroundConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// WaterConfig defines rippling water pools.
type WaterConfig struct {
	MinWidth        float64 `yaml:"min_width"`
	MaxWidth        float64 `yaml:"max_width"`
	WideMinWidth    float64 `yaml:"wide_min_width"`
	WideMaxWidth    float64 `yaml:"wide_max_width"`
	BaseHeight      float64 `yaml:"base_height"`
	RippleAmplitude float64 `yaml:"ripple_amplitude"`
	RippleSpeed     float64 `yaml:"ripple_speed"`
}

// EnemyConfig defines the hovering enemy.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HoverHeight  float64 `yaml:"hover_height"` // Gap between floor and the bob centre
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
}

// SpikeConfig defines spiky terrain.
type SpikeConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	PeakWidth float64 `yaml:"peak_width"`
}

// FlyingConfig defines the orbiting flyer.
type FlyingConfig struct {
	Size        float64 `yaml:"size"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitSpeed  float64 `yaml:"orbit_speed"` // Radians per dt
	MinAltitude float64 `yaml:"min_altitude"`
}

// BouncingConfig defines the bouncing ball.
type BouncingConfig struct {
	Size           float64 `yaml:"size"`
	Gravity        float64 `yaml:"gravity"`
	Elasticity     float64 `yaml:"elasticity"`
	CeilingHeight  float64 `yaml:"ceiling_height"` // Above the floor
	LaunchSpeed    float64 `yaml:"launch_speed"`
	MinBounceSpeed float64 `yaml:"min_bounce_speed"`
}

// HeartConfig defines the invincibility power-up.
type HeartConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FloatHeight  float64 `yaml:"float_height"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
}

// WeatherConfig defines the dry/raining cycle.
type WeatherConfig struct {
	DryMin        float64 `yaml:"dry_min"`
	DryMax        float64 `yaml:"dry_max"`
	RainMin       float64 `yaml:"rain_min"`
	RainMax       float64 `yaml:"rain_max"`
	RainMinScore  int     `yaml:"rain_min_score"`
	SlipRise      float64 `yaml:"slip_rise"`
	SlipDecay     float64 `yaml:"slip_decay"`
	SlipCap       float64 `yaml:"slip_cap"`
	StormFadeRate float64 `yaml:"storm_fade_rate"`
	FrictionLoss  float64 `yaml:"friction_loss"`
	DropRate      float64 `yaml:"drop_rate"` // Drops per dt at full storm opacity
	DropSpeed     float64 `yaml:"drop_speed"`
	MaxDrops      int     `yaml:"max_drops"`
}

// EnvironmentConfig defines decorative clouds, stars and sky.
type EnvironmentConfig struct {
	CloudCount      int     `yaml:"cloud_count"`
	CloudMinSize    float64 `yaml:"cloud_min_size"`
	CloudMaxSize    float64 `yaml:"cloud_max_size"`
	CloudMinSpeed   float64 `yaml:"cloud_min_speed"`
	CloudMaxSpeed   float64 `yaml:"cloud_max_speed"`
	CloudRespawn    float64 `yaml:"cloud_respawn"` // Extra spread beyond the right edge
	StarCount       int     `yaml:"star_count"`
	StarMinSize     float64 `yaml:"star_min_size"`
	StarMaxSize     float64 `yaml:"star_max_size"`
	StarMinOpacity  float64 `yaml:"star_min_opacity"`
	StarMaxOpacity  float64 `yaml:"star_max_opacity"`
	TwinkleSpeed    float64 `yaml:"twinkle_speed"`
	StarThreshold   float64 `yaml:"star_visibility_threshold"`
	SkyDay          string  `yaml:"sky_day"`
	SkyDusk         string  `yaml:"sky_dusk"`
	SkyCycleSeconds float64 `yaml:"sky_cycle_seconds"`
	GameOverSky     string  `yaml:"game_over_sky"`
}

// ClockConfig defines delta-time handling.
type ClockConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // 0 disables clamping
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty
// strings yield "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
