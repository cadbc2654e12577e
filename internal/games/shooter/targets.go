package shooter

import (
	"sort"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// Spawn describes a target added by FillToCapacity.
type Spawn struct {
	Class  Class
	Target Target
}

// Targets owns the active hero and evil targets and the super-target schedule.
type Targets struct {
	src   rng.Source
	alloc *Allocator
	cfg   config.ShooterConfig

	hero []Target
	evil []Target
	skin registry.Skin

	lastSuperReveal uint64
	superHiding     uint64
}

// NewTargets creates an empty registry drawing from src and placing through alloc.
func NewTargets(src rng.Source, alloc *Allocator, cfg config.ShooterConfig) *Targets {
	return &Targets{
		src:   src,
		alloc: alloc,
		cfg:   cfg,
		hero:  make([]Target, 0, cfg.Capacity.Hero),
		evil:  make([]Target, 0, cfg.Capacity.Evil),
	}
}

// SetSkin selects the images used for future spawns.
func (t *Targets) SetSkin(s registry.Skin) {
	t.skin = s
}

// Hero returns the active hero targets. The slice must not be modified.
func (t *Targets) Hero() []Target {
	return t.hero
}

// Evil returns the active evil targets, super-evil included. The slice must not be modified.
func (t *Targets) Evil() []Target {
	return t.evil
}

// Len returns the total number of active targets.
func (t *Targets) Len() int {
	return len(t.hero) + len(t.evil)
}

// ResetSuperSchedule restarts the hiding window at now with a fresh duration.
func (t *Targets) ResetSuperSchedule(now uint64) {
	t.lastSuperReveal = now
	t.superHiding = rng.Between(t.src, t.cfg.Super.HidingMin, t.cfg.Super.HidingMax)
}

// SetSuperSchedule overrides the super-target bookkeeping.
func (t *Targets) SetSuperSchedule(lastReveal, hiding uint64) {
	t.lastSuperReveal = lastReveal
	t.superHiding = hiding
}

// SuperSchedule returns the last reveal tick and the current hiding duration.
func (t *Targets) SuperSchedule() (lastReveal, hiding uint64) {
	return t.lastSuperReveal, t.superHiding
}

// superDue reports whether the hiding window has elapsed at now.
func (t *Targets) superDue(now uint64) bool {
	return now >= t.lastSuperReveal && now-t.lastSuperReveal >= t.superHiding
}

// FillToCapacity spawns evil targets, then hero targets, until each
// collection reaches its capacity. On placement failure the targets spawned
// so far are kept and returned together with the error.
func (t *Targets) FillToCapacity(now uint64) ([]Spawn, error) {
	var spawned []Spawn
	size := core.NewRect(0, 0, t.cfg.Target.Width, t.cfg.Target.Height)

	for len(t.evil) < t.cfg.Capacity.Evil {
		lifetime := rng.Between(t.src, t.cfg.Target.LifetimeMin, t.cfg.Target.LifetimeMax)
		pos, err := t.alloc.FindPosition(size.W, size.H, t.hero, t.evil)
		if err != nil {
			return spawned, err
		}

		target := Target{
			Rect:     core.NewRect(pos.X, pos.Y, size.W, size.H),
			Bounty:   t.cfg.Bounty.Evil,
			Birthday: now,
			Lifetime: lifetime,
			Image:    t.skin.Evil,
		}
		if t.superDue(now) {
			target.Bounty = t.cfg.Bounty.SuperEvil
			target.Lifetime = t.cfg.Super.Lifetime
			target.Image = t.skin.Super
			target.Super = true
			t.ResetSuperSchedule(now)
		}

		t.evil = append(t.evil, target)
		spawned = append(spawned, Spawn{Class: ClassEvil, Target: target})
	}

	for len(t.hero) < t.cfg.Capacity.Hero {
		lifetime := rng.Between(t.src, t.cfg.Target.LifetimeMin, t.cfg.Target.LifetimeMax)
		pos, err := t.alloc.FindPosition(size.W, size.H, t.hero, t.evil)
		if err != nil {
			return spawned, err
		}

		target := Target{
			Rect:     core.NewRect(pos.X, pos.Y, size.W, size.H),
			Bounty:   t.cfg.Bounty.Hero,
			Birthday: now,
			Lifetime: lifetime,
			Image:    t.skin.Hero,
		}
		t.hero = append(t.hero, target)
		spawned = append(spawned, Spawn{Class: ClassHero, Target: target})
	}

	return spawned, nil
}

// ExpireAged removes every target whose lifetime has elapsed at now.
func (t *Targets) ExpireAged(now uint64) []Target {
	var removed []Target
	for _, set := range []*[]Target{&t.evil, &t.hero} {
		for i := len(*set) - 1; i >= 0; i-- {
			if (*set)[i].Expired(now) {
				removed = append(removed, (*set)[i])
				*set = removeAt(*set, i)
			}
		}
	}
	return removed
}

// RemoveHit removes the targets of class c at indices. Duplicates and
// out-of-range indices are ignored; removal runs in descending index order so
// earlier removals never shift later ones. Removed targets are returned in
// that order.
func (t *Targets) RemoveHit(c Class, indices []int) []Target {
	set := &t.evil
	if c == ClassHero {
		set = &t.hero
	}

	var removed []Target
	for _, i := range descendingUnique(indices) {
		if i < 0 || i >= len(*set) {
			continue
		}
		removed = append(removed, (*set)[i])
		*set = removeAt(*set, i)
	}
	return removed
}

// Clear removes every target.
func (t *Targets) Clear() []Target {
	removed := make([]Target, 0, t.Len())
	removed = append(removed, t.evil...)
	removed = append(removed, t.hero...)
	t.evil = t.evil[:0]
	t.hero = t.hero[:0]
	return removed
}

func removeAt(s []Target, i int) []Target {
	copy(s[i:], s[i+1:])
	return s[:len(s)-1]
}

// descendingUnique returns a sorted, de-duplicated copy of indices, largest first.
func descendingUnique(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
