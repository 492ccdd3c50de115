// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/jmcabandara/openmpt/sample"
	"github.com/jmcabandara/openmpt/utils"
)

// SampleSource renders a sample as a Source: frames are visited in playback
// order, following the sample's loop, and resampled from the sample's C5
// speed to the requested rate with cubic interpolation. The interpolation
// taps before the first frame and past the last one come from the sample's
// pre-roll and post-roll.
type SampleSource struct {
	smp      *sample.Sample
	cur      *sample.Cursor
	rate     int
	ratio    float64 // source frames per output frame
	channels int

	// Ring buffer holding 4 frames for cubic interpolation
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool
	// tail is the next frame read once the cursor is exhausted. It walks
	// the post-roll and stops at its last frame.
	tail int

	pos float64
}

// NewSampleSource returns a source playing s at rate Hz. A non-positive
// rate plays at the sample's own C5 speed.
func NewSampleSource(s *sample.Sample, rate int, opts sample.CursorOptions) *SampleSource {
	srcRate := s.C5Speed
	if srcRate <= 0 {
		srcRate = sample.DefaultC5Speed
	}
	if rate <= 0 {
		rate = srcRate
	}

	r := &SampleSource{
		smp:      s,
		cur:      sample.NewCursor(s, opts),
		rate:     rate,
		ratio:    float64(srcRate) / float64(rate),
		channels: s.NumChannels(),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, r.channels)
	}
	return r
}

func (r *SampleSource) SampleRate() int { return r.rate }
func (r *SampleSource) Channels() int   { return r.channels }
func (r *SampleSource) BitDepth() int   { return r.smp.BitsPerSample() }
func (r *SampleSource) Close() error    { return nil }

// pull reads the next frame in playback order into dst. Once playback has
// left the sample it reads the post-roll instead and reports false.
func (r *SampleSource) pull(dst []float32) bool {
	f, ok := r.cur.Next()
	if ok {
		r.tail = f + 1
		r.smp.Frame(f, dst)
		return true
	}
	if r.smp.Len() == 0 {
		clear(dst)
		return false
	}
	r.smp.Frame(r.tail, dst)
	r.tail = min(r.tail+1, r.smp.Len()+sample.InterpolationMaxLookahead-1)
	return false
}

func (r *SampleSource) prime() {
	r.primed = true
	if !r.pull(r.frames[1]) {
		return
	}
	// t-1 of the first frame comes from the pre-roll
	r.smp.Frame(-1, r.frames[0])
	r.hasFrame[0], r.hasFrame[1] = true, true
	for i := 2; i < 4; i++ {
		r.hasFrame[i] = r.pull(r.frames[i])
	}
}

// advance shifts the ring by one frame.
func (r *SampleSource) advance() {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]
	r.hasFrame[3] = r.pull(r.frames[3])
}

// ReadSamples produces interleaved samples at the output rate.
// dst length should be a multiple of the channel count.
func (r *SampleSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		r.prime()
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			r.advance()
		}
		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		utils.CubicFrame(dst[written*r.channels:(written+1)*r.channels],
			r.frames[0], r.frames[1], r.frames[2], r.frames[3], float32(r.pos))

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
