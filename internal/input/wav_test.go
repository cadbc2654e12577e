package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func writeClapWAV(t *testing.T, rate beep.SampleRate, d time.Duration, amp float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clap.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, ClapTone(rate, d, amp), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenWAV(t *testing.T) {
	rate := beep.SampleRate(8000)
	path := writeClapWAV(t, rate, 250*time.Millisecond, 0.75)

	rec, err := OpenWAV(path)
	if err != nil {
		t.Fatalf("OpenWAV() failed: %v", err)
	}
	defer rec.Close()

	if rec.Format.SampleRate != rate {
		t.Errorf("SampleRate = %d, expected %d", rec.Format.SampleRate, rate)
	}
	if rec.Len() != rate.N(250*time.Millisecond) {
		t.Errorf("Len() = %d, expected %d", rec.Len(), rate.N(250*time.Millisecond))
	}

	clock := &ManualClock{}
	mic := rec.Microphone(clock)
	clock.Advance(100)
	if a, b := mic.Sample(); abs16(a) < 20000 || abs16(b) < 20000 {
		t.Errorf("Sample() in recording = (%d, %d), expected loud", a, b)
	}
	clock.Advance(500)
	if a, b := mic.Sample(); a != 0 || b != 0 {
		t.Errorf("Sample() past the recording = (%d, %d), expected silence", a, b)
	}
}

func TestOpenWAVErrors(t *testing.T) {
	if _, err := OpenWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}

	junk := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenWAV(junk); err == nil {
		t.Error("expected an error for a malformed file")
	}
}

func TestRecordingVolumeGate(t *testing.T) {
	const threshold = 3000
	rate := beep.SampleRate(8000)

	tests := []struct {
		name string
		peak int16
		loud bool
	}{
		{"just above threshold", 3200, true},
		{"just below threshold", 2800, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeClapWAV(t, rate, 250*time.Millisecond, float64(tc.peak)/32767)
			rec, err := OpenWAV(path)
			if err != nil {
				t.Fatalf("OpenWAV() failed: %v", err)
			}
			defer rec.Close()

			clock := &ManualClock{}
			mic := rec.Microphone(clock)
			clock.Advance(100)
			a, b := mic.Sample()
			peak := max(abs16(a), abs16(b))
			if d := peak - int32(tc.peak); d < -2 || d > 2 {
				t.Errorf("Sample() peak = %d, expected about %d", peak, tc.peak)
			}
			if got := peak > threshold; got != tc.loud {
				t.Errorf("peak %d passes gate = %v, expected %v", peak, got, tc.loud)
			}
		})
	}
}
