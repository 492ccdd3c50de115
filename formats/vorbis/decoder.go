// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/jmcabandara/openmpt/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

// BitDepth reports 16, the resolution a decoded stream is stored at.
func (s *source) BitDepth() int { return 16 }
func (s *source) Close() error  { return nil }

// Frames is the stream length in frames, or -1 when the reader could not
// seek to find it.
func (s *source) Frames() int {
	n := s.dec.Length()
	if n <= 0 {
		return -1
	}
	return int(n)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// keep reads frame aligned so a frame is never split between calls
	dst = dst[:len(dst)/s.channels*s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	// Read decodes straight into dst and counts values, not frames
	n, err := s.dec.Read(dst)
	if n == 0 && err != nil {
		return 0, err
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
