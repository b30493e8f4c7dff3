package config

import "math"

// DifficultyManager derives the spawner's difficulty level, spawn window
// and variant pool from the current score.
type DifficultyManager struct {
	cfg SpawnerConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg SpawnerConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Progression = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression
}

// Level returns floor(score / difficulty_score_interval), capped at max_level.
// Always 0 when progression is disabled.
func (d *DifficultyManager) Level(score int) int {
	if !d.cfg.Progression || d.cfg.DifficultyScoreInterval <= 0 || score <= 0 {
		return 0
	}
	level := score / d.cfg.DifficultyScoreInterval
	if d.cfg.MaxLevel > 0 && level > d.cfg.MaxLevel {
		level = d.cfg.MaxLevel
	}
	return level
}

// SpawnWindow returns the [min, max] range the next spawn interval is drawn
// from. The lower bound shrinks faster than the upper one, so the window
// moves earlier while its spread widens. Once min sits on the floor, max
// stops shrinking too, so the spread never narrows. Max never drops below
// min.
func (d *DifficultyManager) SpawnWindow(score int) (minInterval, maxInterval float64) {
	level := float64(d.Level(score))

	minInterval = math.Max(d.cfg.FloorInterval, d.cfg.MinInterval-level*d.cfg.MinShrink)

	maxLevel := level
	if d.cfg.MinShrink > 0 {
		floorLevel := math.Max(0, (d.cfg.MinInterval-d.cfg.FloorInterval)/d.cfg.MinShrink)
		maxLevel = math.Min(level, floorLevel)
	}
	maxInterval = math.Max(minInterval, d.cfg.MaxInterval-maxLevel*d.cfg.MaxShrink)
	return minInterval, maxInterval
}

// Pool returns the weighted candidate kinds for the given score, built by
// concatenating every pool entry whose thresholds are met. Duplicates bias
// the draw. Water is left out entirely below water_min_score, whatever its
// entry says. The pool only ever grows as score rises.
func (d *DifficultyManager) Pool(score int) []string {
	level := d.Level(score)

	pool := make([]string, 0, 16)
	for _, e := range d.cfg.Pool {
		if level < e.MinLevel || score < e.MinScore {
			continue
		}
		if e.Kind == "water" && !d.WaterAllowed(score) {
			continue
		}
		for i := 0; i < e.Weight; i++ {
			pool = append(pool, e.Kind)
		}
	}
	return pool
}

// WaterAllowed reports whether the score has reached water_min_score.
func (d *DifficultyManager) WaterAllowed(score int) bool {
	return score >= d.cfg.WaterMinScore
}
