package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/shooter.schema.json
var shooterSchemaJSON []byte

// DefaultShooterConfig returns the default session configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Display: DisplayConfig{Width: 480, Height: 272},
		Target: TargetConfig{
			Width:       50,
			Height:      50,
			LifetimeMin: 3000,
			LifetimeMax: 5000,
		},
		Capacity: CapacityConfig{Hero: 4, Evil: 3},
		Bounty:   BountyConfig{Hero: 70, Evil: 30, SuperEvil: 100},
		Super: SuperConfig{
			Lifetime:  2000,
			HidingMin: 5000,
			HidingMax: 10000,
		},
		Session: SessionConfig{
			DurationSecs:      30,
			CountdownInterval: 1000,
			WarnAt:            5,
		},
		Input: InputConfig{
			VolumeThreshold: 3000, // calibrated against the board microphone
			MuteDebounce:    250,
		},
		HUD: HUDConfig{
			Digits:           5,
			ElementWidth:     6,
			ElementGap:       3,
			SegmentThickness: 3,
			MuteButton:       SizeConfig{Width: 48, Height: 32},
		},
		Placement: PlacementConfig{Overlap: OverlapCorners, MaxAttempts: 10000},
		RNG:       RNGConfig{Algorithm: "mt19937"},
		Modes:     ModesConfig{Left: "burger", Right: "taco"},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
