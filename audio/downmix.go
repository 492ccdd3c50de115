// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer folds a multi-channel source down to mono or stereo by
// averaging. With stereo output, even-numbered source channels feed the
// left side and odd-numbered ones the right.
type Downmixer struct {
	src Source
	out int
	tmp []float32
}

// NewDownmixer returns a Downmixer producing channels outputs, clamped to
// [1, 2] and to the source channel count.
func NewDownmixer(src Source, channels int) *Downmixer {
	out := max(1, min(channels, 2, src.Channels()))
	return &Downmixer{
		src: src,
		out: out,
		tmp: make([]float32, 4096),
	}
}

func (d *Downmixer) SampleRate() int { return d.src.SampleRate() }
func (d *Downmixer) Channels() int   { return d.out }
func (d *Downmixer) BitDepth() int   { return d.src.BitDepth() }

func (d *Downmixer) Close() error {
	err := d.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (d *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%d.out != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	in := d.src.Channels()
	if in == d.out {
		return d.src.ReadSamples(dst)
	}

	need := len(dst) / d.out * in
	if cap(d.tmp) < need {
		d.tmp = make([]float32, max(need, 8192))
	}
	n, err := d.src.ReadSamples(d.tmp[:need])
	frames := n / in

	if d.out == 1 {
		inv := 1 / float32(in)
		for f := range frames {
			var sum float32
			for _, v := range d.tmp[f*in : (f+1)*in] {
				sum += v
			}
			dst[f] = sum * inv
		}
		return frames, err
	}

	invL := 1 / float32((in+1)/2)
	invR := 1 / float32(in/2)
	for f := range frames {
		var l, r float32
		for c, v := range d.tmp[f*in : (f+1)*in] {
			if c%2 == 0 {
				l += v
			} else {
				r += v
			}
		}
		dst[2*f] = l * invL
		dst[2*f+1] = r * invR
	}
	return frames * 2, err
}
