package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// ErrPlacementExhausted is returned when no free position was found within
// the configured number of attempts.
var ErrPlacementExhausted = errors.New("shooter: placement exhausted")

// Allocator finds free display positions by rejection sampling.
type Allocator struct {
	src         rng.Source
	width       int
	height      int
	zones       []core.Rect
	overlap     string
	maxAttempts int
}

// NewAllocator creates an allocator for cfg's display, HUD zones and overlap policy.
func NewAllocator(src rng.Source, cfg config.ShooterConfig) *Allocator {
	return &Allocator{
		src:         src,
		width:       cfg.Display.Width,
		height:      cfg.Display.Height,
		zones:       config.NewLayout(cfg).ExclusionZones(),
		overlap:     cfg.Placement.Overlap,
		maxAttempts: cfg.Placement.MaxAttempts,
	}
}

// Zones returns the exclusion zones the allocator avoids.
func (a *Allocator) Zones() []core.Rect {
	return a.zones
}

// FindPosition draws candidate positions for a w x h entity until one clears
// every exclusion zone and every target in existing.
func (a *Allocator) FindPosition(w, h int, existing ...[]Target) (core.Point, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		x, y := rng.RectPosition(a.src, a.width, a.height, w, h)
		if a.Acceptable(core.NewRect(x, y, w, h), existing...) {
			return core.Pt(x, y), nil
		}
	}
	return core.Point{}, fmt.Errorf("%w after %d attempts for %dx%d", ErrPlacementExhausted, a.maxAttempts, w, h)
}

// Acceptable reports whether candidate may be placed.
func (a *Allocator) Acceptable(candidate core.Rect, existing ...[]Target) bool {
	for _, z := range a.zones {
		if a.overlaps(candidate, z) {
			return false
		}
	}
	for _, set := range existing {
		for _, t := range set {
			if a.overlaps(candidate, t.Rect) {
				return false
			}
		}
	}
	return true
}

func (a *Allocator) overlaps(candidate, other core.Rect) bool {
	if a.overlap == config.OverlapAABB {
		return candidate.IntersectsClosed(other)
	}
	return cornerInside(candidate, other)
}

// cornerInside reports whether any corner of candidate lies inside other,
// bounds inclusive. It misses overlaps where other sits entirely within
// candidate without reaching a corner.
func cornerInside(candidate, other core.Rect) bool {
	for _, c := range candidate.Corners() {
		if other.ContainsInclusive(c) {
			return true
		}
	}
	return false
}
