package core

import (
	"math"
	"testing"
)

func TestTickerFirstTickSeedsOnly(t *testing.T) {
	tk := NewTicker(0)

	dt, ok := tk.Tick(5000)
	if ok || dt != 0 {
		t.Fatalf("first Tick() = (%v, %v), expected (0, false)", dt, ok)
	}

	dt, ok = tk.Tick(5000 + ReferenceFrameMs)
	if !ok {
		t.Fatal("second Tick() should produce a step")
	}
	if math.Abs(dt-1.0) > 1e-9 {
		t.Errorf("dt = %v, expected 1.0", dt)
	}
}

func TestTickerDeltaNormalization(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"one frame", ReferenceFrameMs, 1},
		{"half frame at 120hz", ReferenceFrameMs / 2, 0.5},
		{"two frames at 30hz", ReferenceFrameMs * 2, 2},
		{"no time", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := NewTicker(0)
			tk.Tick(1000)
			dt, ok := tk.Tick(1000 + tc.elapsed)
			if !ok {
				t.Fatal("expected a step")
			}
			if math.Abs(dt-tc.want) > 1e-9 {
				t.Errorf("dt = %v, expected %v", dt, tc.want)
			}
		})
	}
}

func TestTickerNegativeDelta(t *testing.T) {
	tk := NewTicker(0)
	tk.Tick(1000)

	dt, ok := tk.Tick(900)
	if !ok || dt != 0 {
		t.Errorf("backwards clock Tick() = (%v, %v), expected (0, true)", dt, ok)
	}
}

func TestTickerClamp(t *testing.T) {
	tk := NewTicker(4)
	tk.Tick(0)

	// A 10 second pause would be 600 frames unclamped.
	dt, _ := tk.Tick(10000)
	if dt != 4 {
		t.Errorf("clamped dt = %v, expected 4", dt)
	}

	unclamped := NewTicker(0)
	unclamped.Tick(0)
	dt, _ = unclamped.Tick(10000)
	if math.Abs(dt-600) > 1e-9 {
		t.Errorf("unclamped dt = %v, expected 600", dt)
	}
}

func TestTickerReset(t *testing.T) {
	tk := NewTicker(0)
	tk.Tick(0)
	tk.Tick(ReferenceFrameMs)

	tk.Reset()
	if _, ok := tk.Tick(100000); ok {
		t.Error("first Tick() after Reset should not produce a step")
	}
}
