package input

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Recording is a decoded WAV file used as microphone input.
type Recording struct {
	Stream beep.StreamSeekCloser
	Format beep.Format

	// signal is Stream scaled to full range.
	signal beep.Streamer
}

// OpenWAV decodes the WAV file at path.
func OpenWAV(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open recording: %w", err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("input: decode %s: %w", path, err)
	}
	rec := &Recording{Stream: stream, Format: format, signal: stream}
	// The 16-bit decoder maps samples onto half of [-1, 1]; a gain of 1 doubles them back.
	if format.Precision == 2 {
		rec.signal = &effects.Gain{Streamer: stream, Gain: 1}
	}
	return rec, nil
}

// Len returns the recording length in samples.
func (r *Recording) Len() int {
	return r.Stream.Len()
}

// Close releases the decoder, which closes the underlying file.
func (r *Recording) Close() error {
	return r.Stream.Close()
}

// Microphone returns a microphone that plays the recording in step with clock.
func (r *Recording) Microphone(clock Clock, opts ...MicOption) *Microphone {
	opts = append([]MicOption{WithBackground(r.signal)}, opts...)
	return NewMicrophone(clock, r.Format.SampleRate, opts...)
}
