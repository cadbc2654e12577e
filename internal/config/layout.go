package config

import "github.com/vovakirdan/tui-shooter/internal/core"

// Layout holds the fixed UI chrome rectangles derived from display geometry.
// Targets may never be placed over any of them.
type Layout struct {
	Score      core.Rect // score seven-segment display, top-left
	Countdown  core.Rect // countdown seven-segment display, top-right
	MuteButton core.Rect // silent-mode toggle, bottom-left
}

// DigitWidth returns the width of one seven-segment digit.
func (h HUDConfig) DigitWidth() int {
	return h.ElementWidth + 2*h.SegmentThickness
}

// DigitHeight returns the height of one seven-segment digit.
func (h HUDConfig) DigitHeight() int {
	return 2*h.ElementWidth + 3*h.SegmentThickness
}

// DisplayWidth returns the width of a full row of digits.
func (h HUDConfig) DisplayWidth() int {
	if h.Digits <= 0 {
		return 0
	}
	return h.Digits*h.DigitWidth() + (h.Digits-1)*h.ElementGap
}

// NewLayout computes the HUD rectangles for cfg.
func NewLayout(cfg ShooterConfig) Layout {
	w := cfg.HUD.DisplayWidth()
	h := cfg.HUD.DigitHeight()
	btn := cfg.HUD.MuteButton
	return Layout{
		Score:      core.NewRect(0, 0, w, h),
		Countdown:  core.NewRect(cfg.Display.Width-w, 0, w, h),
		MuteButton: core.NewRect(0, cfg.Display.Height-btn.Height, btn.Width, btn.Height),
	}
}

// ExclusionZones returns the rectangles placement must avoid.
func (l Layout) ExclusionZones() []core.Rect {
	return []core.Rect{l.Score, l.Countdown, l.MuteButton}
}
