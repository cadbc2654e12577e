package input

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// DefaultSampleRate is used when no recording dictates one.
const DefaultSampleRate = beep.SampleRate(44100)

// maxDrain caps how much audio one Sample call consumes after a long pause.
const maxDrain = time.Second

// Microphone turns beep streams into the stereo volume source a session
// polls. Audio is consumed in step with the clock: each Sample drains the
// samples that elapsed since the previous call and reports the last one.
type Microphone struct {
	mu    sync.Mutex
	clock Clock
	rate  beep.SampleRate
	mixer *beep.Mixer

	shoutLen time.Duration
	shoutAmp float64

	last  uint64
	frame [2]float64
	buf   [][2]float64
}

// MicOption configures a Microphone.
type MicOption func(*Microphone)

// WithShout sets the length and amplitude of the burst Shout plays.
func WithShout(d time.Duration, amp float64) MicOption {
	return func(m *Microphone) {
		m.shoutLen = d
		m.shoutAmp = amp
	}
}

// WithBackground mixes s under any shouts, for example a decoded recording.
func WithBackground(s beep.Streamer) MicOption {
	return func(m *Microphone) {
		m.mixer.Add(s)
	}
}

// NewMicrophone creates a silent microphone sampling at rate.
func NewMicrophone(clock Clock, rate beep.SampleRate, opts ...MicOption) *Microphone {
	m := &Microphone{
		clock:    clock,
		rate:     rate,
		mixer:    &beep.Mixer{},
		shoutLen: 300 * time.Millisecond,
		shoutAmp: 0.8,
		last:     clock.Now(),
		buf:      make([][2]float64, 512),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Shout starts a loud burst at the current time.
func (m *Microphone) Shout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advance()
	m.mixer.Add(ClapTone(m.rate, m.shoutLen, m.shoutAmp))
}

// Sample returns the current sample pair, channel A first.
func (m *Microphone) Sample() (a, b int16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.advance()
	// A stream just added has not produced audio yet; peek one sample.
	if m.frame == [2]float64{} && m.mixer.Len() > 0 {
		m.drain(1)
	}
	return toPCM(m.frame[0]), toPCM(m.frame[1])
}

// Active reports whether any stream is still playing.
func (m *Microphone) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len() > 0
}

func (m *Microphone) advance() {
	now := m.clock.Now()
	if now <= m.last {
		return
	}
	elapsed := time.Duration(now-m.last) * time.Millisecond
	m.last = now
	m.drain(m.rate.N(min(elapsed, maxDrain)))
}

func (m *Microphone) drain(n int) {
	if n <= 0 {
		return
	}
	if m.mixer.Len() == 0 {
		m.frame = [2]float64{}
		return
	}
	for n > 0 {
		chunk := m.buf[:min(n, len(m.buf))]
		got, _ := m.mixer.Stream(chunk)
		if got == 0 {
			break
		}
		m.frame = chunk[got-1]
		n -= got
	}
}

// toPCM converts a float sample to signed 16-bit PCM.
func toPCM(v float64) int16 {
	switch {
	case v >= 1:
		return 32767
	case v <= -1:
		return -32768
	default:
		return int16(v * 32767)
	}
}
