package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// algorithms lets RNG-dependent tests run against both generators.
var algorithms = []rng.Algorithm{rng.AlgorithmCMWC, rng.AlgorithmMT19937}

func newSource(alg rng.Algorithm, seed uint32) rng.Source {
	src, err := rng.New(alg, seed)
	if err != nil {
		panic(err)
	}
	return src
}

type fakeClock struct {
	now uint64
}

func (c *fakeClock) Now() uint64 { return c.now }

// fakeTouches hands out one queued batch per poll.
type fakeTouches struct {
	queue [][]core.Point
	polls int
}

func (f *fakeTouches) Touches() []core.Point {
	f.polls++
	if len(f.queue) == 0 {
		return nil
	}
	batch := f.queue[0]
	f.queue = f.queue[1:]
	return batch
}

func (f *fakeTouches) push(points ...core.Point) {
	f.queue = append(f.queue, points)
}

type fakeVolume struct {
	a, b    int16
	samples int
}

func (v *fakeVolume) Sample() (int16, int16) {
	v.samples++
	return v.a, v.b
}

type drawCmd struct {
	rect core.Rect
	img  core.ImageID
}

type recordingRenderer struct {
	draws     []drawCmd
	clears    []core.Rect
	scores    []uint32
	colors    []core.Color
	countdown []uint32
	cdColors  []core.Color
	banners   int
	gameOvers [][2]uint32
}

func (r *recordingRenderer) Draw(rect core.Rect, img core.ImageID) {
	r.draws = append(r.draws, drawCmd{rect, img})
}

func (r *recordingRenderer) Clear(rect core.Rect) { r.clears = append(r.clears, rect) }

func (r *recordingRenderer) ScoreChanged(score uint32, c core.Color) {
	r.scores = append(r.scores, score)
	r.colors = append(r.colors, c)
}

func (r *recordingRenderer) Countdown(secs uint32, c core.Color) {
	r.countdown = append(r.countdown, secs)
	r.cdColors = append(r.cdColors, c)
}

func (r *recordingRenderer) StartBanner(_, _ registry.Skin) { r.banners++ }

func (r *recordingRenderer) GameOver(score, high uint32) {
	r.gameOvers = append(r.gameOvers, [2]uint32{score, high})
}

type memRecorder struct {
	rounds []RoundSummary
}

func (m *memRecorder) RecordRound(r RoundSummary) error {
	m.rounds = append(m.rounds, r)
	return nil
}

// rig bundles a session with its fakes.
type rig struct {
	cfg      config.ShooterConfig
	clock    *fakeClock
	touches  *fakeTouches
	volume   *fakeVolume
	renderer *recordingRenderer
	recorder *memRecorder
	session  *Session
}

func newRig(cfg config.ShooterConfig, alg rng.Algorithm) *rig {
	cfg.RNG.Algorithm = string(alg)
	r := &rig{
		cfg:      cfg,
		clock:    &fakeClock{},
		touches:  &fakeTouches{},
		volume:   &fakeVolume{},
		renderer: &recordingRenderer{},
		recorder: &memRecorder{},
	}
	s, err := NewSession(cfg, Deps{
		Clock:    r.clock,
		Touches:  r.touches,
		Volume:   r.volume,
		Renderer: r.renderer,
		Recorder: r.recorder,
		Seed:     4242,
	})
	if err != nil {
		panic(err)
	}
	r.session = s
	return r
}

// tickAt advances the clock to now and runs one frame with the given touches.
func (r *rig) tickAt(now uint64, touches ...core.Point) Mode {
	r.clock.now = now
	r.touches.push(touches...)
	return r.session.Tick()
}

// evilCenter returns the centre of the i-th active evil target.
func (r *rig) evilCenter(i int) core.Point {
	x, y := r.session.Targets().Evil()[i].Rect.Center()
	return core.Pt(x, y)
}

// heroCenter returns the centre of the i-th active hero target.
func (r *rig) heroCenter(i int) core.Point {
	x, y := r.session.Targets().Hero()[i].Rect.Center()
	return core.Pt(x, y)
}

// mutePoint returns a point inside the mute button.
func (r *rig) mutePoint() core.Point {
	b := r.session.Layout().MuteButton
	return core.Pt(b.X+b.W/2, b.Y+b.H/2)
}

// startRight starts a round with a touch on the right half at now.
func (r *rig) startRight(now uint64) {
	r.tickAt(now, core.Pt(r.cfg.Display.Width-10, r.cfg.Display.Height/2))
}
