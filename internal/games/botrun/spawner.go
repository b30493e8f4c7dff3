package botrun

import (
	"math/rand"

	"github.com/vovakirdan/botrun/internal/config"
)

// Spawner emits obstacles at the right edge on a randomized timer.
type Spawner struct {
	cfg        config.SpawnerConfig
	physics    config.PhysicsConfig
	difficulty *config.DifficultyManager
	world      *world
	rng        *rand.Rand
	fieldW     float64

	timer float64
	next  float64
}

// NewSpawner creates a spawner whose first spawn comes after initial_interval.
func NewSpawner(cfg config.BotRunConfig, w *world, fieldW float64, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:        cfg.Spawner,
		physics:    cfg.Physics,
		difficulty: config.NewDifficultyManager(cfg.Spawner),
		world:      w,
		rng:        rng,
		fieldW:     fieldW,
		next:       cfg.Spawner.InitialInterval,
	}
}

// Level returns the current difficulty level.
func (sp *Spawner) Level(score int) int {
	return sp.difficulty.Level(score)
}

// Update advances the timer and returns any obstacles spawned this step.
func (sp *Spawner) Update(dt float64, score int, invincible bool) []Obstacle {
	sp.timer += dt
	if sp.timer < sp.next {
		return nil
	}
	sp.timer = 0

	spawned := sp.spawn(score, invincible)

	minInterval, maxInterval := sp.difficulty.SpawnWindow(score)
	sp.next = uniform(sp.rng, minInterval, maxInterval)
	return spawned
}

func (sp *Spawner) spawn(score int, invincible bool) []Obstacle {
	// No hearts while one is already in effect
	if !invincible && sp.rng.Float64() < sp.cfg.PowerupChance {
		return []Obstacle{newObstacle(KindHeart, sp.fieldW, sp.world, sp.physics, sp.rng)}
	}

	// Plain ground while nothing in the pool is eligible yet
	kind := KindGround
	if pool := sp.difficulty.Pool(score); len(pool) > 0 {
		kind, _ = ParseKind(pool[sp.rng.Intn(len(pool))]) // Validate rejects unknown kinds
	}

	// Pool only offers water at or above water_min_score
	if kind == KindWater && sp.rng.Float64() < sp.cfg.WideWaterChance {
		// A wide pool is too long to clear, so a heart always comes first
		return []Obstacle{
			newObstacle(KindHeart, sp.fieldW, sp.world, sp.physics, sp.rng),
			newWideWater(sp.fieldW+sp.cfg.WideWaterOffset, sp.world, sp.rng),
		}
	}

	return []Obstacle{newObstacle(kind, sp.fieldW, sp.world, sp.physics, sp.rng)}
}
