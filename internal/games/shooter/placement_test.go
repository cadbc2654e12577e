package shooter

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// noCornerInside is the placement guarantee: no corner of placed lies inside
// other, bounds inclusive.
func noCornerInside(placed, other core.Rect) bool {
	for _, c := range placed.Corners() {
		if other.ContainsInclusive(c) {
			return false
		}
	}
	return true
}

func TestFindPositionValidity(t *testing.T) {
	for _, alg := range algorithms {
		for _, policy := range []string{config.OverlapCorners, config.OverlapAABB} {
			t.Run(string(alg)+"/"+policy, func(t *testing.T) {
				cfg := config.DefaultShooterConfig()
				cfg.Placement.Overlap = policy
				alloc := NewAllocator(newSource(alg, 77), cfg)

				var placed []Target
				for round := 0; round < 200; round++ {
					if len(placed) == 7 {
						placed = placed[:0]
					}
					p, err := alloc.FindPosition(50, 50, placed)
					if err != nil {
						t.Fatalf("FindPosition() failed: %v", err)
					}
					r := core.NewRect(p.X, p.Y, 50, 50)
					if r.X < 0 || r.Right() > cfg.Display.Width || r.Y < 0 || r.Bottom() > cfg.Display.Height {
						t.Fatalf("placed %+v off display", r)
					}
					for _, z := range alloc.Zones() {
						if !noCornerInside(r, z) {
							t.Fatalf("placed %+v has a corner inside zone %+v", r, z)
						}
					}
					for _, other := range placed {
						if !noCornerInside(r, other.Rect) {
							t.Fatalf("placed %+v has a corner inside target %+v", r, other.Rect)
						}
					}
					placed = append(placed, Target{Rect: r})
				}
			})
		}
	}
}

func TestFindPositionChecksEveryCollection(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	alloc := NewAllocator(newSource("mt19937", 5), cfg)

	hero := []Target{{Rect: core.NewRect(100, 100, 50, 50)}}
	evil := []Target{{Rect: core.NewRect(300, 150, 50, 50)}}
	for i := 0; i < 100; i++ {
		p, err := alloc.FindPosition(50, 50, hero, evil)
		if err != nil {
			t.Fatal(err)
		}
		r := core.NewRect(p.X, p.Y, 50, 50)
		if !noCornerInside(r, hero[0].Rect) || !noCornerInside(r, evil[0].Rect) {
			t.Fatalf("placed %+v over an existing target", r)
		}
	}
}

func TestFindPositionExhausted(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Placement.MaxAttempts = 25
	alloc := NewAllocator(newSource("cmwc", 1), cfg)
	// A zone over the whole display leaves nowhere to go.
	alloc.zones = []core.Rect{core.NewRect(0, 0, cfg.Display.Width, cfg.Display.Height)}

	_, err := alloc.FindPosition(50, 50)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("FindPosition() error = %v, expected ErrPlacementExhausted", err)
	}
}

// The corner test cannot see a zone that sits wholly inside the candidate.
// The aabb policy exists to close that gap.
func TestOverlapPolicyContainment(t *testing.T) {
	candidate := core.NewRect(100, 100, 50, 50)
	zone := core.NewRect(110, 110, 10, 10)

	tests := []struct {
		policy   string
		accepted bool
	}{
		{config.OverlapCorners, true},
		{config.OverlapAABB, false},
	}

	for _, tc := range tests {
		t.Run(tc.policy, func(t *testing.T) {
			a := &Allocator{zones: []core.Rect{zone}, overlap: tc.policy}
			if got := a.Acceptable(candidate); got != tc.accepted {
				t.Errorf("Acceptable() = %v, expected %v", got, tc.accepted)
			}
		})
	}
}

func TestOverlapPolicyTouchingEdges(t *testing.T) {
	existing := []Target{{Rect: core.NewRect(100, 100, 50, 50)}}
	// Shares the existing target's right edge.
	candidate := core.NewRect(150, 100, 50, 50)

	for _, policy := range []string{config.OverlapCorners, config.OverlapAABB} {
		a := &Allocator{overlap: policy}
		if a.Acceptable(candidate, existing) {
			t.Errorf("%s: candidate sharing an edge should be rejected", policy)
		}
	}
}
