package botrun

import (
	"math/rand"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
)

// Drop is one falling raindrop.
type Drop struct {
	X, Y float64
	Len  float64
}

// Weather alternates dry and raining spells. Rain makes the floor
// slippery and fades in a storm layer that emits drops.
type Weather struct {
	cfg    config.WeatherConfig
	fieldW float64
	floorY float64

	Raining      bool
	Slip         float64 // [0, slip_cap]
	StormOpacity float64 // [0, 1]
	Drops        []Drop

	countdown float64
	dropAcc   float64
}

// NewWeather starts dry with a fresh dry-spell timer.
func NewWeather(cfg config.WeatherConfig, fieldW, floorY float64, rng *rand.Rand) *Weather {
	return &Weather{
		cfg:       cfg,
		fieldW:    fieldW,
		floorY:    floorY,
		countdown: uniform(rng, cfg.DryMin, cfg.DryMax),
		Drops:     make([]Drop, 0, cfg.MaxDrops),
	}
}

// Update advances the spell timer, slipperiness, storm layer and drops.
// Returns true when it started or stopped raining.
func (w *Weather) Update(dt float64, score int, rng *rand.Rand) bool {
	changed := false

	w.countdown -= dt
	if w.countdown <= 0 {
		switch {
		case w.Raining:
			w.Raining = false
			w.countdown = uniform(rng, w.cfg.DryMin, w.cfg.DryMax)
			changed = true
		case score >= w.cfg.RainMinScore:
			w.Raining = true
			w.countdown = uniform(rng, w.cfg.RainMin, w.cfg.RainMax)
			changed = true
		default:
			// Too early for rain, stay dry for another spell
			w.countdown = uniform(rng, w.cfg.DryMin, w.cfg.DryMax)
		}
	}

	slip, fade := -w.cfg.SlipDecay*dt, -w.cfg.StormFadeRate*dt
	if w.Raining {
		slip, fade = w.cfg.SlipRise*dt, w.cfg.StormFadeRate*dt
	}
	w.Slip = core.ClampF(w.Slip+slip, 0, w.cfg.SlipCap)
	w.StormOpacity = core.ClampF(w.StormOpacity+fade, 0, 1)

	w.updateDrops(dt, rng)
	return changed
}

func (w *Weather) updateDrops(dt float64, rng *rand.Rand) {
	w.dropAcc += w.cfg.DropRate * w.StormOpacity * dt
	for w.dropAcc >= 1 {
		w.dropAcc--
		if len(w.Drops) < w.cfg.MaxDrops {
			w.Drops = append(w.Drops, Drop{
				X:   rng.Float64() * w.fieldW,
				Len: uniform(rng, 8, 16),
			})
		}
	}

	kept := w.Drops[:0]
	for _, d := range w.Drops {
		d.Y += w.cfg.DropSpeed * dt
		if d.Y < w.floorY {
			kept = append(kept, d)
		}
	}
	w.Drops = kept
}

// Friction returns the ground friction factor, 1 on a dry floor.
func (w *Weather) Friction() float64 {
	return 1 - w.Slip*w.cfg.FrictionLoss
}
