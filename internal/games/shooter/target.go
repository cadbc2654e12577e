// Package shooter implements the timed target-shooting session engine:
// target placement, lifecycle, scoring and the countdown state machine.
// It never touches hardware; inputs arrive through small collaborator
// interfaces and output leaves as renderer commands.
package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Class identifies which collection a target belongs to.
type Class int

const (
	ClassHero Class = iota // penalises the score when hit
	ClassEvil              // rewards the score when hit
)

// String returns the class name used in logs.
func (c Class) String() string {
	switch c {
	case ClassHero:
		return "hero"
	case ClassEvil:
		return "evil"
	default:
		return "unknown"
	}
}

// Target is a single shootable entity.
type Target struct {
	Rect     core.Rect
	Bounty   uint32
	Birthday uint64 // tick at spawn
	Lifetime uint64 // ticks the target survives after Birthday
	Image    core.ImageID
	Super    bool
}

// Expired reports whether the target has outlived its lifetime at now.
// A target exactly at its lifetime boundary survives.
func (t Target) Expired(now uint64) bool {
	return now > t.Birthday && now-t.Birthday > t.Lifetime
}

// CheckForHit returns, for every touch, the index of every target containing
// it. A target touched twice is reported twice; callers de-duplicate.
func CheckForHit(targets []Target, touches []core.Point) []int {
	var indices []int
	for i, t := range targets {
		for _, p := range touches {
			if t.Rect.Contains(p.X, p.Y) {
				indices = append(indices, i)
			}
		}
	}
	return indices
}
