package input

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// BotConfig tunes the simulated player. Percentages are 0..100.
type BotConfig struct {
	Reaction uint64 // ticks between shots
	Accuracy int    // chance a shot lands on its target
	Mistakes int    // chance a shot is aimed at a hero target
}

// DefaultBotConfig is a decent but fallible player.
func DefaultBotConfig() BotConfig {
	return BotConfig{Reaction: 400, Accuracy: 85, Mistakes: 10}
}

// Shouter is notified before every shot so the volume gate opens.
type Shouter interface {
	Shout()
}

// Bot is a touch source that plays a session by itself. It aims at the
// active targets, starts a new round whenever the field is empty and shouts
// with every shot.
type Bot struct {
	cfg     BotConfig
	src     rng.Source
	clock   Clock
	view    *shooter.Targets
	shouter Shouter
	start   core.Point
	area    core.Rect

	lastShot uint64
	shots    int
}

// NewBot creates a bot drawing its decisions from src. start is touched to
// begin a round; misses land anywhere in area.
func NewBot(cfg BotConfig, src rng.Source, clock Clock, shouter Shouter, start core.Point, area core.Rect) *Bot {
	return &Bot{
		cfg:     cfg,
		src:     src,
		clock:   clock,
		shouter: shouter,
		start:   start,
		area:    area,
	}
}

// Watch points the bot at the targets of a session.
func (b *Bot) Watch(t *shooter.Targets) {
	b.view = t
}

// Shots returns the number of touches produced so far.
func (b *Bot) Shots() int {
	return b.shots
}

// Touches returns at most one touch per reaction window.
func (b *Bot) Touches() []core.Point {
	now := b.clock.Now()
	if b.shots > 0 && now-b.lastShot < b.cfg.Reaction {
		return nil
	}

	if b.view == nil || b.view.Len() == 0 {
		return b.fire(now, b.start)
	}

	var aim []shooter.Target
	switch {
	case b.roll() < b.cfg.Mistakes && len(b.view.Hero()) > 0:
		aim = b.view.Hero()
	case len(b.view.Evil()) > 0:
		aim = b.view.Evil()
	default:
		aim = b.view.Hero()
	}

	if b.roll() >= b.cfg.Accuracy {
		x, y := rng.RectPosition(b.src, b.area.W, b.area.H, 1, 1)
		return b.fire(now, core.Pt(b.area.X+x, b.area.Y+y))
	}

	target := aim[int(rng.Between(b.src, 0, uint64(len(aim))))]
	x, y := target.Rect.Center()
	return b.fire(now, core.Pt(x, y))
}

func (b *Bot) fire(now uint64, p core.Point) []core.Point {
	b.lastShot = now
	b.shots++
	if b.shouter != nil {
		b.shouter.Shout()
	}
	return []core.Point{p}
}

func (b *Bot) roll() int {
	return int(rng.Between(b.src, 0, 100))
}
