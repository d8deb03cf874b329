package geometry

import (
	"testing"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func TestHitTest(t *testing.T) {
	s := Build(scenarioOptions(), scenarioAppearance())

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"right half", 160, 90, 0},
		{"left half", 20, 90, 1},
		{"top edge of ring", 90, 15, 0},
		{"bottom is second sector", 90, 165, 1},
		{"center hole", 90, 90, -1},
		{"outside ring", 179, 10, -1},
		{"on outer radius", 180, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestQuadrants(t *testing.T) {
	s := Build(nOptions(4), scenarioAppearance())
	// Quadrant mid points at distance 70 from (90, 90).
	pts := []struct {
		x, y float64
		want int
	}{
		{139.5, 40.5, 0},
		{139.5, 139.5, 1},
		{40.5, 139.5, 2},
		{40.5, 40.5, 3},
	}
	for _, p := range pts {
		if got := s.HitTest(p.x, p.y); got != p.want {
			t.Errorf("HitTest(%v, %v) = %d, want %d", p.x, p.y, got, p.want)
		}
	}
}

func TestHitTestEmpty(t *testing.T) {
	s := Build(nil, wheel.DefaultAppearance())
	if got := s.HitTest(150, 10); got != -1 {
		t.Errorf("HitTest on empty scene = %d, want -1", got)
	}
}
