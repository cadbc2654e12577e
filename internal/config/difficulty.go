package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // reproducible replays: CMWC words, corner placement
)

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.DurationSecs = 45
		cfg.Target.LifetimeMin = 4000
		cfg.Target.LifetimeMax = 6000
		cfg.Capacity.Hero = 3
		cfg.Super.HidingMin = 4000
		cfg.Super.HidingMax = 8000
	case DifficultyHard:
		cfg.Target.LifetimeMin = 2000
		cfg.Target.LifetimeMax = 3500
		cfg.Capacity.Hero = 5
		cfg.Capacity.Evil = 2
		cfg.Super.Lifetime = 1200
		cfg.Super.HidingMin = 8000
		cfg.Super.HidingMax = 14000
	case DifficultyFixed:
		cfg.RNG.Algorithm = string(rng.AlgorithmCMWC)
		cfg.Placement.Overlap = OverlapCorners
	}
}
