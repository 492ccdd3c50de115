// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides generated audio.Source implementations for tests.
package audiotest

import (
	"io"
	"math"
	"slices"

	"github.com/jmcabandara/openmpt/audio"
)

// MockSource generates a waveform and optionally reports loop and cue
// metadata, standing in for a decoded file.
type MockSource struct {
	sampleRate  int
	channels    int
	bitDepth    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32

	loops  []audio.Loop
	cues   []int
	closed bool
}

var _ audio.LoopSource = (*MockSource)(nil)

// NewMockSource creates a 16-bit source of totalFrames frames whose values
// come from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		bitDepth:    16,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// WithBitDepth sets the reported bit depth.
func (m *MockSource) WithBitDepth(bits int) *MockSource {
	m.bitDepth = bits
	return m
}

// WithLoops sets the loops reported by Loops.
func (m *MockSource) WithLoops(loops ...audio.Loop) *MockSource {
	m.loops = loops
	return m
}

// WithCues sets the cue positions reported by Cues.
func (m *MockSource) WithCues(cues ...int) *MockSource {
	m.cues = cues
	return m
}

func (m *MockSource) SampleRate() int     { return m.sampleRate }
func (m *MockSource) Channels() int       { return m.channels }
func (m *MockSource) BitDepth() int       { return m.bitDepth }
func (m *MockSource) Loops() []audio.Loop { return slices.Clone(m.loops) }
func (m *MockSource) Cues() []int         { return slices.Clone(m.cues) }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}
	if len(dst)%m.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
