// SPDX-License-Identifier: EPL-2.0

package openmpt

import (
	"fmt"
	"io"

	"github.com/jmcabandara/openmpt/audio"
	"github.com/jmcabandara/openmpt/formats/aiff"
	"github.com/jmcabandara/openmpt/formats/mp3"
	"github.com/jmcabandara/openmpt/formats/vorbis"
	"github.com/jmcabandara/openmpt/formats/wav"
	"github.com/jmcabandara/openmpt/sample"
	"github.com/jmcabandara/openmpt/utils"
)

// Options controls how a decoded stream becomes a sample.
type Options struct {
	// BitDepth forces 8 or 16-bit storage. Zero keeps the source's depth,
	// with anything deeper than 8 bits stored as 16.
	BitDepth int
	// MaxLength caps the frame count. Zero means sample.MaxSampleLength.
	MaxLength int
	// ITPingPongMode selects the legacy ping-pong lookahead.
	ITPingPongMode bool
}

// NewRegistry returns a registry with every bundled decoder, keyed by the
// usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

var defaultRegistry = NewRegistry()

// Load decodes r with the decoder registered for format and returns the
// result as a sample with its loop lookahead already computed.
func Load(r io.Reader, format string, opts Options) (*sample.Sample, error) {
	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, audio.ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	return Decode(src, opts)
}

// Decode reads src to the end and stores it as a sample.
//
// Streams with more than two channels are folded to stereo. Loops and cues
// of an audio.LoopSource are carried over: a single loop becomes the
// primary loop, and with two or more the first is the sustain loop and the
// second the primary one. The caller keeps ownership of src.
func Decode(src audio.Source, opts Options) (*sample.Sample, error) {
	var (
		loops []audio.Loop
		cues  []int
	)
	if ls, ok := src.(audio.LoopSource); ok {
		loops, cues = ls.Loops(), ls.Cues()
	}
	switch {
	case src.Channels() < 1:
		return nil, fmt.Errorf("%d channels: %w", src.Channels(), sample.ErrUnsupported)
	case src.Channels() > 2:
		src = audio.NewDownmixer(src, 2)
	}

	maxLen := opts.MaxLength
	if maxLen <= 0 || maxLen > sample.MaxSampleLength {
		maxLen = sample.MaxSampleLength
	}

	bits := opts.BitDepth
	if bits == 0 {
		bits = 16
		if src.BitDepth() <= 8 {
			bits = 8
		}
	}

	var (
		s   *sample.Sample
		err error
	)
	switch bits {
	case 8:
		s, err = collect[int8](src, maxLen)
	case 16:
		s, err = collect[int16](src, maxLen)
	default:
		return nil, fmt.Errorf("%d-bit storage: %w", bits, sample.ErrUnsupported)
	}
	if err != nil {
		return nil, err
	}

	s.C5Speed = src.SampleRate()
	if s.C5Speed <= 0 {
		s.C5Speed = sample.DefaultC5Speed
	}
	applyLoops(s, loops)
	s.Cues = cues

	if err := s.Precompute(opts.ITPingPongMode); err != nil {
		return nil, fmt.Errorf("decoded stream: %w", err)
	}
	return s, nil
}

// framesHint is implemented by sources that know their length up front.
type framesHint interface {
	Frames() int
}

func collect[T sample.Elem](src audio.Source, maxLen int) (*sample.Sample, error) {
	ch := src.Channels()

	capacity := 0
	if h, ok := src.(framesHint); ok {
		n := h.Frames()
		if n > maxLen {
			return nil, fmt.Errorf("%d frames: %w", n, sample.ErrSampleTooLong)
		}
		capacity = max(n, 0) * ch
	}

	frames := make([]T, 0, capacity)
	buf := make([]float32, 4096*ch)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if (len(frames)+n)/ch > maxLen {
				return nil, fmt.Errorf("more than %d frames: %w", maxLen, sample.ErrSampleTooLong)
			}
			for _, x := range buf[:n] {
				frames = append(frames, utils.FloatToPCM[T](x))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	// a trailing partial frame is dropped
	frames = frames[:len(frames)/ch*ch]
	if len(frames) == 0 {
		return nil, fmt.Errorf("decoded stream: %w", sample.ErrNoData)
	}
	return sample.FromFrames(frames, ch)
}

func applyLoops(s *sample.Sample, loops []audio.Loop) {
	primary := -1
	switch {
	case len(loops) == 1:
		primary = 0
	case len(loops) >= 2:
		primary = 1
		l := loops[0]
		s.SustainStart, s.SustainEnd = l.Start, l.End
		s.Flags.Set(sample.FlagSustainLoop, true)
		s.Flags.Set(sample.FlagPingPongSustain, l.PingPong)
	}
	if primary < 0 {
		return
	}
	l := loops[primary]
	s.LoopStart, s.LoopEnd = l.Start, l.End
	s.Flags.Set(sample.FlagLoop, true)
	s.Flags.Set(sample.FlagPingPongLoop, l.PingPong)
}
