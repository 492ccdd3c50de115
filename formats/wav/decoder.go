// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jmcabandara/openmpt/audio"
)

const (
	formatPCM = 1

	// smpl loop type for alternating (forward/backward) loops
	loopTypeAlternating = 1
)

// source serves the decoded PCM of a WAV file together with the loops and
// cue points found in its smpl and cue chunks.
type source struct {
	data       []int
	pos        int
	sampleRate int
	channels   int
	bitDepth   int
	scale      float32
	bias       int

	loops []audio.Loop
	cues  []int
}

var _ audio.LoopSource = (*source)(nil)

func (s *source) SampleRate() int     { return s.sampleRate }
func (s *source) Channels() int       { return s.channels }
func (s *source) BitDepth() int       { return s.bitDepth }
func (s *source) Loops() []audio.Loop { return slices.Clone(s.loops) }
func (s *source) Cues() []int         { return slices.Clone(s.cues) }
func (s *source) Close() error        { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	n := copy32(dst, s.data[s.pos:], s.bias, s.scale)
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}

func copy32(dst []float32, src []int, bias int, scale float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]-bias) / scale
	}
	return n
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// metadata chunks may sit on either side of the data chunk, so they get
	// a pass of their own
	meta := wav.NewDecoder(rs)
	if !meta.IsValidFile() {
		return nil, ErrNotWavFile
	}
	meta.ReadMetadata()

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	s := &source{
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}
	switch s.bitDepth {
	case 8:
		// 8-bit WAV data is unsigned
		s.scale, s.bias = 128, 128
	case 16:
		s.scale = 32768
	default:
		return nil, ErrUnsupportedBitDepth
	}
	if s.channels < 1 || s.sampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	s.data = wholeFrames(buf, s.channels)

	if meta.Metadata != nil {
		s.loops = samplerLoops(meta.Metadata.SamplerInfo)
		s.cues = cuePositions(meta.Metadata.CuePoints)
	}

	return s, nil
}

func wholeFrames(buf *goaudio.IntBuffer, channels int) []int {
	if buf == nil {
		return nil
	}
	return buf.Data[:len(buf.Data)/channels*channels]
}

// samplerLoops converts smpl loops, whose end is inclusive, to half-open
// frame ranges.
func samplerLoops(info *wav.SamplerInfo) []audio.Loop {
	if info == nil {
		return nil
	}
	loops := make([]audio.Loop, 0, len(info.Loops))
	for _, l := range info.Loops {
		if l == nil {
			continue
		}
		loops = append(loops, audio.Loop{
			Start:    int(l.Start),
			End:      int(l.End) + 1,
			PingPong: l.Type == loopTypeAlternating,
		})
	}
	return loops
}

func cuePositions(points []*wav.CuePoint) []int {
	cues := make([]int, 0, len(points))
	for _, p := range points {
		if p != nil {
			cues = append(cues, int(p.Position))
		}
	}
	return cues
}
