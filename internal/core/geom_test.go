package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(50, 290, 30, 60)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"block under the player", NewRect(60, 310, 40, 40), true},
		{"block ahead", NewRect(120, 310, 40, 40), false},
		{"block touching the front edge", NewRect(80, 310, 40, 40), false},
		{"flyer above the head", NewRect(55, 250, 20, 40), false},
		{"flyer grazing the head", NewRect(55, 250, 20, 40.5), true},
		{"wide pool under the feet", NewRect(0, 350, 300, 12), false},
		{"heart inside the hitbox", NewRect(60, 300, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := tc.other.Intersects(player); got != tc.want {
				t.Errorf("reversed Intersects() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(800, 320, 45, 30)
	if r.Right() != 845 || r.Bottom() != 350 {
		t.Errorf("edges = (%v, %v), expected (845, 350)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{0.4, 0, 0.9, 0.4},
		{-0.02, 0, 0.9, 0},
		{1.3, 0, 0.9, 0.9},
		{0.9, 0, 0.9, 0.9},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 12) != 12 || Max(12, 3) != 12 || Max(-1, -4) != -1 {
		t.Error("Max should return the larger value")
	}
}
