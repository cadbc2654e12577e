package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded default differs from DefaultShooterConfig:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultShooterConfig()
		ApplyShooterPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", p, err)
		}
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := []byte("capacity:\n  hero: 2\nrng:\n  algorithm: cmwc\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Capacity.Hero != 2 {
		t.Errorf("Capacity.Hero = %d, expected 2", cfg.Capacity.Hero)
	}
	if cfg.RNG.Algorithm != "cmwc" {
		t.Errorf("RNG.Algorithm = %q, expected cmwc", cfg.RNG.Algorithm)
	}
	// Untouched sections keep their defaults.
	if cfg.Capacity.Evil != 3 || cfg.Target.Width != 50 {
		t.Errorf("partial document should keep defaults, got %+v", cfg)
	}
}

func TestLoadShooterMissingFile(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "target:\n  widht: 40\n"},
		{"wrong type", "display:\n  width: wide\n"},
		{"unknown overlap", "placement:\n  overlap: pixels\n"},
		{"unknown algorithm", "rng:\n  algorithm: xorshift\n"},
		{"inverted lifetime", "target:\n  lifetime_min: 6000\n  lifetime_max: 5000\n"},
		{"inverted hiding", "super:\n  hiding_min: 9000\n  hiding_max: 1000\n"},
		{"target wider than display", "target:\n  width: 480\n"},
		{"no free area", "capacity:\n  hero: 40\n  evil: 40\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Error("empty document should yield defaults")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyShooterPresetNormalIsNoop(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Error("normal preset should not change the config")
	}
}

func TestApplyShooterPresetFixed(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Placement.Overlap = OverlapAABB
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.RNG.Algorithm != "cmwc" || cfg.Placement.Overlap != OverlapCorners {
		t.Errorf("fixed preset gave rng=%q overlap=%q", cfg.RNG.Algorithm, cfg.Placement.Overlap)
	}
}

func TestLayout(t *testing.T) {
	cfg := DefaultShooterConfig()
	l := NewLayout(cfg)

	// 5 digits of (6 + 2*3) px plus 4 gaps of 3 px; 2*6 + 3*3 px tall.
	if l.Score != core.NewRect(0, 0, 72, 21) {
		t.Errorf("Score = %+v", l.Score)
	}
	if l.Countdown != core.NewRect(408, 0, 72, 21) {
		t.Errorf("Countdown = %+v", l.Countdown)
	}
	if l.MuteButton != core.NewRect(0, 240, 48, 32) {
		t.Errorf("MuteButton = %+v", l.MuteButton)
	}
	if len(l.ExclusionZones()) != 3 {
		t.Errorf("ExclusionZones() returned %d zones, expected 3", len(l.ExclusionZones()))
	}
}
