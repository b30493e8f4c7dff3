package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)

	tests := []struct {
		score, want int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{250, 2},
		{800, 8},
		{5000, 8}, // capped at max_level
	}

	for _, tc := range tests {
		if got := d.Level(tc.score); got != tc.want {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyDisabledHoldsLevelZero(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false after SetEnabled(false)")
	}
	if got := d.Level(1000); got != 0 {
		t.Errorf("Level(1000) with progression disabled = %d, expected 0", got)
	}
}

func TestSpawnWindowShrinksAndWidens(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)

	lo0, hi0 := d.SpawnWindow(0)
	if lo0 != 75 || hi0 != 150 {
		t.Fatalf("SpawnWindow(0) = (%v, %v), expected (75, 150)", lo0, hi0)
	}

	prevLo, prevHi := lo0, hi0
	prevSpread := hi0 - lo0
	for score := 100; score <= 800; score += 100 {
		lo, hi := d.SpawnWindow(score)
		if lo > prevLo || hi > prevHi {
			t.Errorf("SpawnWindow(%d) = (%v, %v) grew from (%v, %v)", score, lo, hi, prevLo, prevHi)
		}
		if hi-lo < prevSpread {
			t.Errorf("spread at score %d = %v, expected at least %v", score, hi-lo, prevSpread)
		}
		if lo < 35 {
			t.Errorf("SpawnWindow(%d) min %v dropped below floor", score, lo)
		}
		prevLo, prevHi, prevSpread = lo, hi, hi-lo
	}
}

func TestSpawnWindowSpreadNeverNarrows(t *testing.T) {
	presets := []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

	for _, preset := range presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultBotRunConfig()
			ApplyPreset(&cfg, preset)
			d := NewDifficultyManager(cfg.Spawner)

			prevLo, prevHi := d.SpawnWindow(0)
			for level := 1; level <= cfg.Spawner.MaxLevel+2; level++ {
				score := level * cfg.Spawner.DifficultyScoreInterval
				lo, hi := d.SpawnWindow(score)
				if hi-lo < prevHi-prevLo {
					t.Errorf("level %d spread = %v, narrower than %v", level, hi-lo, prevHi-prevLo)
				}
				if lo > prevLo || hi > prevHi {
					t.Errorf("level %d window (%v, %v) moved later than (%v, %v)", level, lo, hi, prevLo, prevHi)
				}
				if lo < cfg.Spawner.FloorInterval {
					t.Errorf("level %d min %v below floor", level, lo)
				}
				prevLo, prevHi = lo, hi
			}
		})
	}
}

func TestSpawnWindowHardFreezesMaxAtFloor(t *testing.T) {
	cfg := DefaultBotRunConfig()
	ApplyPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg.Spawner)

	// min 60 reaches the 35 floor at level 5, max stops at 120 - 5*3
	for _, score := range []int{500, 600, 800} {
		lo, hi := d.SpawnWindow(score)
		if lo != 35 || hi != 105 {
			t.Errorf("SpawnWindow(%d) = (%v, %v), expected (35, 105)", score, lo, hi)
		}
	}
}

func TestSpawnWindowClampsInvertedRange(t *testing.T) {
	cfg := DefaultBotRunConfig().Spawner
	cfg.MinInterval = 100
	cfg.MaxInterval = 40 // below the floor and below min
	cfg.FloorInterval = 50
	d := NewDifficultyManager(cfg)

	lo, hi := d.SpawnWindow(0)
	if lo != 100 || hi != 100 {
		t.Errorf("SpawnWindow() = (%v, %v), expected (100, 100)", lo, hi)
	}
}

func TestPoolGrowsMonotonically(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)

	prev := d.Pool(0)
	for score := 50; score <= 1000; score += 50 {
		pool := d.Pool(score)
		if len(pool) < len(prev) {
			t.Fatalf("Pool(%d) has %d entries, fewer than %d before", score, len(pool), len(prev))
		}
		// Every earlier entry is still present
		counts := map[string]int{}
		for _, k := range pool {
			counts[k]++
		}
		for _, k := range prev {
			counts[k]--
			if counts[k] < 0 {
				t.Fatalf("Pool(%d) lost a %q entry", score, k)
			}
		}
		prev = pool
	}
}

func TestPoolExcludesWaterBelowMinScore(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)

	for _, k := range d.Pool(199) {
		if k == "water" {
			t.Fatal("Pool(199) should not contain water")
		}
	}

	found := false
	for _, k := range d.Pool(200) {
		if k == "water" {
			found = true
		}
	}
	if !found {
		t.Error("Pool(200) should contain water")
	}
	if d.WaterAllowed(199) || !d.WaterAllowed(200) {
		t.Error("WaterAllowed threshold should be 200")
	}
}

func TestPoolWaterFloorOverridesEntry(t *testing.T) {
	cfg := DefaultBotRunConfig().Spawner
	cfg.Pool = []PoolEntry{{Kind: "ground", Weight: 1}, {Kind: "water", Weight: 1}}
	d := NewDifficultyManager(cfg)

	for _, score := range []int{0, 100, cfg.WaterMinScore - 1} {
		pool := d.Pool(score)
		if len(pool) != 1 || pool[0] != "ground" {
			t.Errorf("Pool(%d) = %v, expected only ground", score, pool)
		}
	}
	if pool := d.Pool(cfg.WaterMinScore); len(pool) != 2 {
		t.Errorf("Pool(%d) = %v, expected ground and water", cfg.WaterMinScore, pool)
	}
}

func TestPoolLevelZeroContents(t *testing.T) {
	d := NewDifficultyManager(DefaultBotRunConfig().Spawner)

	pool := d.Pool(0)
	want := []string{"ground", "ground", "ground", "spike"}
	if len(pool) != len(want) {
		t.Fatalf("Pool(0) = %v, expected %v", pool, want)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Errorf("Pool(0)[%d] = %q, expected %q", i, pool[i], want[i])
		}
	}
}
