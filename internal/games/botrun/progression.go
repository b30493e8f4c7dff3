package botrun

import (
	"math"

	"github.com/vovakirdan/botrun/internal/config"
)

// Progression turns survival time into score and scroll speed.
type Progression struct {
	cfg config.SpeedConfig

	Score     float64 // Whole points, displayed as floor
	BaseSpeed float64
	Phase     int // Index into PhaseMultipliers

	scoreTimer     float64
	speedTimer     float64
	lastPhaseBlock int
}

// progressStep reports what changed during one Advance.
type progressStep struct {
	Points       int
	SpeedUps     int
	PhaseChanged bool
}

// NewProgression starts at score 0 and the initial speed.
func NewProgression(cfg config.SpeedConfig) *Progression {
	return &Progression{
		cfg:       cfg,
		BaseSpeed: cfg.Initial,
	}
}

// Advance adds dt of survival. Every score_tick_interval earns a point;
// points may raise the base speed and rotate the speed phase.
func (p *Progression) Advance(dt float64) progressStep {
	var step progressStep

	p.scoreTimer += dt
	for p.cfg.ScoreTickInterval > 0 && p.scoreTimer >= p.cfg.ScoreTickInterval {
		p.scoreTimer -= p.cfg.ScoreTickInterval
		p.Score++
		step.Points++

		if !p.cfg.Progression {
			continue
		}

		s := int(p.Score)
		if p.cfg.IncreaseInterval > 0 && s%p.cfg.IncreaseInterval == 0 {
			if p.raise(p.cfg.IncreaseAmount) {
				step.SpeedUps++
			}
		}
		if p.cfg.PhaseInterval > 0 && len(p.cfg.PhaseMultipliers) > 0 {
			if block := s / p.cfg.PhaseInterval; block != p.lastPhaseBlock {
				p.lastPhaseBlock = block
				p.Phase = (p.Phase + 1) % len(p.cfg.PhaseMultipliers)
				step.PhaseChanged = true
			}
		}
	}

	if p.cfg.Progression && p.cfg.TimeIncreaseInterval > 0 {
		p.speedTimer += dt
		for p.speedTimer >= p.cfg.TimeIncreaseInterval {
			p.speedTimer -= p.cfg.TimeIncreaseInterval
			if p.raise(p.cfg.TimeIncreaseAmount) {
				step.SpeedUps++
			}
		}
	}

	return step
}

// raise bumps the base speed, capped at max. Reports whether it moved.
func (p *Progression) raise(amount float64) bool {
	next := math.Min(p.BaseSpeed+amount, p.cfg.Max)
	if next == p.BaseSpeed {
		return false
	}
	p.BaseSpeed = next
	return true
}

// Multiplier returns the current phase multiplier.
func (p *Progression) Multiplier() float64 {
	if len(p.cfg.PhaseMultipliers) == 0 {
		return 1
	}
	return p.cfg.PhaseMultipliers[p.Phase]
}

// Speed returns the effective scroll speed, never above max.
func (p *Progression) Speed() float64 {
	return math.Min(p.BaseSpeed*p.Multiplier(), p.cfg.Max)
}

// Points returns the displayed score.
func (p *Progression) Points() int {
	return int(math.Floor(p.Score))
}
