// Package config provides YAML-based session configuration loading,
// validation and difficulty presets for the shooter.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid shooter config")

// Overlap policies for target placement.
const (
	OverlapCorners = "corners" // corner containment, inclusive bounds
	OverlapAABB    = "aabb"    // closed rectangle intersection
)

// ShooterConfig contains all configuration for a shooting session.
// Durations are in ticks (milliseconds).
type ShooterConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Target    TargetConfig    `yaml:"target"`
	Capacity  CapacityConfig  `yaml:"capacity"`
	Bounty    BountyConfig    `yaml:"bounty"`
	Super     SuperConfig     `yaml:"super"`
	Session   SessionConfig   `yaml:"session"`
	Input     InputConfig     `yaml:"input"`
	HUD       HUDConfig       `yaml:"hud"`
	Placement PlacementConfig `yaml:"placement"`
	RNG       RNGConfig       `yaml:"rng"`
	Modes     ModesConfig     `yaml:"modes"`
}

// DisplayConfig is the size of the touch display in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TargetConfig defines the target footprint and normal lifetime window.
type TargetConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	LifetimeMin uint64 `yaml:"lifetime_min"`
	LifetimeMax uint64 `yaml:"lifetime_max"`
}

// CapacityConfig is the number of simultaneously active targets per class.
type CapacityConfig struct {
	Hero int `yaml:"hero"`
	Evil int `yaml:"evil"`
}

// BountyConfig defines score deltas per target class.
type BountyConfig struct {
	Hero      uint32 `yaml:"hero"`
	Evil      uint32 `yaml:"evil"`
	SuperEvil uint32 `yaml:"super_evil"`
}

// SuperConfig schedules the rare super-evil target.
type SuperConfig struct {
	Lifetime  uint64 `yaml:"lifetime"`
	HidingMin uint64 `yaml:"hiding_min"`
	HidingMax uint64 `yaml:"hiding_max"`
}

// SessionConfig defines round timing.
type SessionConfig struct {
	DurationSecs      uint32 `yaml:"duration_secs"`
	CountdownInterval uint64 `yaml:"countdown_interval"`
	WarnAt            uint32 `yaml:"warn_at"` // countdown turns red at or below this
}

// InputConfig defines microphone and button handling.
type InputConfig struct {
	VolumeThreshold int    `yaml:"volume_threshold"`
	MuteDebounce    uint64 `yaml:"mute_debounce"`
}

// HUDConfig describes the seven-segment displays and the mute button.
type HUDConfig struct {
	Digits           int        `yaml:"digits"`
	ElementWidth     int        `yaml:"element_width"`
	ElementGap       int        `yaml:"element_gap"`
	SegmentThickness int        `yaml:"segment_thickness"`
	MuteButton       SizeConfig `yaml:"mute_button"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlacementConfig tunes the rejection sampler.
type PlacementConfig struct {
	Overlap     string `yaml:"overlap"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// RNGConfig selects the random word generator.
type RNGConfig struct {
	Algorithm string `yaml:"algorithm"`
}

// ModesConfig names the skins behind the left and right start buttons.
type ModesConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Validate checks the semantic invariants the engine relies on.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	case c.Target.Width <= 0 || c.Target.Height <= 0:
		return fmt.Errorf("%w: target size %dx%d", ErrInvalidConfig, c.Target.Width, c.Target.Height)
	case c.Target.Width >= c.Display.Width || c.Target.Height >= c.Display.Height:
		return fmt.Errorf("%w: target %dx%d does not fit display %dx%d", ErrInvalidConfig,
			c.Target.Width, c.Target.Height, c.Display.Width, c.Display.Height)
	case c.Target.LifetimeMin == 0 || c.Target.LifetimeMin > c.Target.LifetimeMax:
		return fmt.Errorf("%w: target lifetime window [%d, %d]", ErrInvalidConfig, c.Target.LifetimeMin, c.Target.LifetimeMax)
	case c.Capacity.Hero < 0 || c.Capacity.Evil < 0:
		return fmt.Errorf("%w: negative capacity", ErrInvalidConfig)
	case c.Super.Lifetime == 0:
		return fmt.Errorf("%w: super lifetime must be positive", ErrInvalidConfig)
	case c.Super.HidingMin > c.Super.HidingMax:
		return fmt.Errorf("%w: super hiding window [%d, %d]", ErrInvalidConfig, c.Super.HidingMin, c.Super.HidingMax)
	case c.Session.DurationSecs == 0 || c.Session.CountdownInterval == 0:
		return fmt.Errorf("%w: session duration and countdown interval must be positive", ErrInvalidConfig)
	case c.Placement.Overlap != OverlapCorners && c.Placement.Overlap != OverlapAABB:
		return fmt.Errorf("%w: unknown overlap policy %q", ErrInvalidConfig, c.Placement.Overlap)
	case c.Placement.MaxAttempts <= 0:
		return fmt.Errorf("%w: placement max_attempts must be positive", ErrInvalidConfig)
	case c.Modes.Left == "" || c.Modes.Right == "":
		return fmt.Errorf("%w: both start buttons need a skin", ErrInvalidConfig)
	}

	if _, err := rng.New(rng.Algorithm(c.RNG.Algorithm), 1); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return c.checkFreeArea()
}

// checkFreeArea rejects layouts where a full field of targets cannot fit
// beside the HUD, which would starve the placement search.
func (c ShooterConfig) checkFreeArea() error {
	layout := NewLayout(c)
	free := c.Display.Width * c.Display.Height
	for _, z := range layout.ExclusionZones() {
		free -= z.W * z.H
	}
	// Each target keeps its neighbours out of a footprint grown by one target size.
	footprint := (2*c.Target.Width + 1) * (2*c.Target.Height + 1)
	need := (c.Capacity.Hero + c.Capacity.Evil) * footprint
	if free <= 0 || need > free {
		return fmt.Errorf("%w: %d targets need %d px but only %d px are free", ErrInvalidConfig,
			c.Capacity.Hero+c.Capacity.Evil, need, free)
	}
	return nil
}
