package shooter

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// Mode is the session state.
type Mode int

const (
	ModeIdle     Mode = iota // waiting for a start touch
	ModeRunning              // countdown active
	ModeGameOver             // final score shown, Idle on the next tick
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeRunning:
		return "Running"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Clock returns a monotonic, non-decreasing tick count in milliseconds.
type Clock interface {
	Now() uint64
}

// TouchSource returns the touch points of the current poll, possibly none.
type TouchSource interface {
	Touches() []core.Point
}

// VolumeSource returns one sample per stereo channel, channel A first.
// The call may block until a sample pair is ready.
type VolumeSource interface {
	Sample() (a, b int16)
}

// Renderer receives draw and clear commands. The engine never reads back.
type Renderer interface {
	ScoreListener
	Draw(r core.Rect, img core.ImageID)
	Clear(r core.Rect)
	Countdown(secs uint32, c core.Color)
	StartBanner(left, right registry.Skin)
	GameOver(score, highscore uint32)
}

// RoundRecorder stores finished rounds.
type RoundRecorder interface {
	RecordRound(r RoundSummary) error
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	Skin       string
	Score      uint32
	Highscore  uint32
	EvilHits   int
	HeroHits   int
	SuperHits  int
	Supers     int // super-evil targets revealed
	StartedAt  uint64
	EndedAt    uint64
	Seed       uint32
	Algorithm  string
	Difficulty string
}

// Deps are the collaborators of a Session. Clock, Touches and Renderer are
// required; Volume is required unless every round is played in silent mode.
type Deps struct {
	Clock    Clock
	Touches  TouchSource
	Volume   VolumeSource
	Renderer Renderer
	Recorder RoundRecorder
	Logger   *log.Logger

	// Seed initialises the configured RNG algorithm and is recorded with each
	// round. Source, when set, replaces the generator entirely and nothing
	// is recorded.
	Seed   uint32
	Source rng.Source

	// Difficulty is only recorded in round summaries.
	Difficulty string
}

// Session is the countdown-driven game state machine. It is owned by a single
// frame loop and is not safe for concurrent use.
type Session struct {
	cfg    config.ShooterConfig
	layout config.Layout
	deps   Deps
	logger *log.Logger

	left, right registry.Skin
	skin        registry.Skin

	targets *Targets
	score   *ScoreKeeper

	mode              Mode
	tick              uint64
	countdown         uint32
	lastCountdownTick uint64
	silent            bool
	muteDebounceUntil uint64

	round     RoundSummary
	lastRound *RoundSummary
}

// NewSession validates cfg, resolves the start-button skins and seeds the RNG.
// The session starts Idle with the start banner drawn.
func NewSession(cfg config.ShooterConfig, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Clock == nil || deps.Touches == nil || deps.Renderer == nil {
		return nil, errors.New("shooter: clock, touch source and renderer are required")
	}

	left, err := registry.Get(cfg.Modes.Left)
	if err != nil {
		return nil, fmt.Errorf("shooter: left start button: %w", err)
	}
	right, err := registry.Get(cfg.Modes.Right)
	if err != nil {
		return nil, fmt.Errorf("shooter: right start button: %w", err)
	}

	src := deps.Source
	if src == nil {
		src, err = rng.New(rng.Algorithm(cfg.RNG.Algorithm), deps.Seed)
		if err != nil {
			return nil, fmt.Errorf("shooter: %w", err)
		}
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     cfg,
		layout:  config.NewLayout(cfg),
		deps:    deps,
		logger:  logger,
		left:    left,
		right:   right,
		skin:    left,
		targets: NewTargets(src, NewAllocator(src, cfg), cfg),
		score:   NewScoreKeeper(deps.Renderer),
		tick:    deps.Clock.Now(),
	}
	s.enterIdle()
	return s, nil
}

// Mode returns the current state.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the running score.
func (s *Session) Score() uint32 { return s.score.Score() }

// Highscore returns the best score of this process.
func (s *Session) Highscore() uint32 { return s.score.Highscore() }

// Countdown returns the remaining round time in seconds.
func (s *Session) Countdown() uint32 { return s.countdown }

// Silent reports whether silent mode bypasses the volume gate.
func (s *Session) Silent() bool { return s.silent }

// Skin returns the skin of the current or last round.
func (s *Session) Skin() registry.Skin { return s.skin }

// Targets exposes the target registry for inspection.
func (s *Session) Targets() *Targets { return s.targets }

// Layout returns the HUD rectangles.
func (s *Session) Layout() config.Layout { return s.layout }

// LastRound returns the summary of the most recently finished round.
func (s *Session) LastRound() (RoundSummary, bool) {
	if s.lastRound == nil {
		return RoundSummary{}, false
	}
	return *s.lastRound, true
}

// Tick runs one frame: it reads the clock and the touches once and advances
// the state machine. It returns the mode after the frame.
func (s *Session) Tick() Mode {
	now := s.deps.Clock.Now()
	if now < s.tick {
		now = s.tick
	}
	s.tick = now
	touches := s.deps.Touches.Touches()

	switch s.mode {
	case ModeIdle:
		if len(touches) > 0 {
			s.start(now, touches[0])
		}
	case ModeRunning:
		s.run(now, touches)
	case ModeGameOver:
		s.enterIdle()
	}
	return s.mode
}

// Abort forces the session back to Idle. A running round is discarded
// without touching the highscore.
func (s *Session) Abort() {
	switch s.mode {
	case ModeRunning:
		s.clearTargets()
		s.score.Discard()
		s.deps.Renderer.Clear(s.layout.MuteButton)
		s.logger.Info("round aborted", "skin", s.skin.ID, "countdown", s.countdown)
		s.countdown = 0
		s.enterIdle()
	case ModeGameOver:
		s.enterIdle()
	}
}

func (s *Session) enterIdle() {
	s.mode = ModeIdle
	s.deps.Renderer.StartBanner(s.left, s.right)
}

func (s *Session) start(now uint64, touch core.Point) {
	s.skin = s.left
	if touch.X > s.cfg.Display.Width/2 {
		s.skin = s.right
	}

	s.clearTargets()
	s.targets.SetSkin(s.skin)
	s.targets.ResetSuperSchedule(now)
	s.score.Discard()

	s.countdown = s.cfg.Session.DurationSecs
	s.lastCountdownTick = now
	s.deps.Renderer.Countdown(s.countdown, s.countdownColor())
	s.deps.Renderer.ScoreChanged(0, core.ColorDefault)
	s.drawSilentButton()

	s.round = RoundSummary{
		Skin:       s.skin.ID,
		StartedAt:  now,
		Seed:       s.deps.Seed,
		Algorithm:  s.cfg.RNG.Algorithm,
		Difficulty: s.deps.Difficulty,
	}
	// An injected generator is not reproducible from the configured seed.
	if s.deps.Source != nil {
		s.round.Seed = 0
		s.round.Algorithm = ""
	}
	s.mode = ModeRunning

	_, hiding := s.targets.SuperSchedule()
	s.logger.Info("round started", "skin", s.skin.ID, "countdown", s.countdown, "super_hiding", hiding)
}

func (s *Session) run(now uint64, touches []core.Point) {
	if s.countdown > 0 {
		s.fill(now)
		s.processShooting(now, touches)
		s.purge(now)
	}

	s.updateCountdown(now)
	if s.countdown == 0 {
		s.gameOver(now)
	}
}

func (s *Session) fill(now uint64) {
	spawned, err := s.targets.FillToCapacity(now)
	for _, sp := range spawned {
		s.deps.Renderer.Draw(sp.Target.Rect, sp.Target.Image)
		if sp.Target.Super {
			s.round.Supers++
			s.logger.Debug("super target revealed", "x", sp.Target.Rect.X, "y", sp.Target.Rect.Y, "tick", now)
		}
	}
	if err != nil {
		// The free area is a configuration invariant; retry next frame.
		s.logger.Warn("target placement failed", "error", err, "active", s.targets.Len())
	}
}

func (s *Session) processShooting(now uint64, touches []core.Point) {
	touches = s.consumeMuteTouches(now, touches)
	if len(touches) == 0 {
		return
	}
	if !s.silent && !s.volumeAboveThreshold() {
		return
	}

	evilHits := s.targets.RemoveHit(ClassEvil, CheckForHit(s.targets.Evil(), touches))
	for _, t := range evilHits {
		s.deps.Renderer.Clear(t.Rect)
		s.score.ApplyEvilHit(t.Bounty)
		s.round.EvilHits++
		if t.Super {
			s.round.SuperHits++
		}
	}

	heroHits := s.targets.RemoveHit(ClassHero, CheckForHit(s.targets.Hero(), touches))
	for _, t := range heroHits {
		s.deps.Renderer.Clear(t.Rect)
		s.score.ApplyHeroHit(t.Bounty)
		s.round.HeroHits++
	}

	if len(evilHits)+len(heroHits) > 0 {
		s.logger.Debug("shots landed", "evil", len(evilHits), "hero", len(heroHits), "score", s.score.Score())
	}
}

// consumeMuteTouches toggles silent mode for touches on the mute button and
// returns the remaining touches.
func (s *Session) consumeMuteTouches(now uint64, touches []core.Point) []core.Point {
	rest := touches[:0:0]
	pressed := false
	for _, p := range touches {
		if s.layout.MuteButton.ContainsInclusive(p) {
			pressed = true
			continue
		}
		rest = append(rest, p)
	}

	if pressed && now >= s.muteDebounceUntil {
		s.silent = !s.silent
		s.muteDebounceUntil = now + s.cfg.Input.MuteDebounce
		s.drawSilentButton()
		s.logger.Debug("silent mode toggled", "silent", s.silent)
	}
	return rest
}

func (s *Session) volumeAboveThreshold() bool {
	if s.deps.Volume == nil {
		return false
	}
	a, b := s.deps.Volume.Sample()
	level := max(abs16(a), abs16(b))
	return level > int32(s.cfg.Input.VolumeThreshold)
}

func abs16(v int16) int32 {
	x := int32(v)
	if x < 0 {
		return -x
	}
	return x
}

func (s *Session) purge(now uint64) {
	for _, t := range s.targets.ExpireAged(now) {
		s.deps.Renderer.Clear(t.Rect)
	}
}

func (s *Session) updateCountdown(now uint64) {
	if now-s.lastCountdownTick < s.cfg.Session.CountdownInterval {
		return
	}
	if s.countdown > 0 {
		s.countdown--
	}
	s.lastCountdownTick = now
	s.deps.Renderer.Countdown(s.countdown, s.countdownColor())
}

func (s *Session) countdownColor() core.Color {
	if s.countdown <= s.cfg.Session.WarnAt {
		return core.ColorRed
	}
	return core.ColorDefault
}

func (s *Session) gameOver(now uint64) {
	score, high := s.score.Finalize()
	s.clearTargets()
	s.deps.Renderer.Clear(s.layout.MuteButton)
	s.deps.Renderer.GameOver(score, high)

	s.round.Score = score
	s.round.Highscore = high
	s.round.EndedAt = now
	last := s.round
	s.lastRound = &last

	if s.deps.Recorder != nil {
		if err := s.deps.Recorder.RecordRound(last); err != nil {
			s.logger.Warn("could not record round", "error", err)
		}
	}

	s.mode = ModeGameOver
	s.logger.Info("game over", "score", score, "highscore", high, "evil_hits", last.EvilHits, "hero_hits", last.HeroHits)
}

func (s *Session) clearTargets() {
	for _, t := range s.targets.Clear() {
		s.deps.Renderer.Clear(t.Rect)
	}
}

func (s *Session) drawSilentButton() {
	img := core.ImageSilentOff
	if s.silent {
		img = core.ImageSilentOn
	}
	s.deps.Renderer.Draw(s.layout.MuteButton, img)
}
