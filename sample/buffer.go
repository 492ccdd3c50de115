// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"

	"github.com/jmcabandara/openmpt/utils"
)

const (
	// InterpolationMaxLookahead is the number of frames an interpolating
	// reader may touch on either side of the current position.
	InterpolationMaxLookahead = 16

	// MaxSampleLength is the hard upper bound on a sample's frame count.
	MaxSampleLength = 0x10000000

	// MinLoopLength is the shortest loop span that stays enabled.
	MinLoopLength = 2

	// pre-roll + post-roll + loop lookahead + sustain lookahead
	paddingFrames = 10 * InterpolationMaxLookahead
)

// Elem is the set of element types sample storage can hold.
type Elem interface {
	int8 | int16
}

// PCM is the read-only view of sample storage handed to playback channels.
type PCM interface {
	Len() int
	NumChannels() int
	BitsPerSample() int
}

// Buffer is the storage of one sample.
//
// Frames are interleaved and surrounded by derived regions that let a
// cubic or sinc reader run past the edges of the data without bounds checks:
//
//	[pre-roll L][frames N][post-roll L][loop lookahead 4L][sustain lookahead 4L]
//
// The element offset of frame 0 is fixed when the buffer is allocated, so
// shrinking the frame count or the channel count in place keeps it valid.
type Buffer[T Elem] struct {
	raw      []T
	base     int
	length   int
	channels int
}

// pcm is the set of editing primitives every Buffer instantiation provides.
// Frame arguments are relative to frame 0; element arguments are offsets
// into the interleaved data.
type pcm interface {
	PCM

	alloc(frames, channels int) (pcm, error)
	copyTo(dst pcm, dstFrame, srcFrame, n int)
	moveFrames(dstFrame, srcFrame, n int)
	truncate(frames int)
	precompute(loop, sustain loopRegion, itPingPong bool)
	frameFloat(frame, ch int) float32
	appendInts(dst []int) []int

	reverse(start, end int)
	invert(start, end int)
	unsign(start, end int)
	dcOffset(start, end int) dcStats
	removeDC(start, end int, offset, amplify float64)
	xfade(in, out, dst, n int, exp float64)
	ramp(start, end int)
	stereoSep(start, end int, sep int32)
	downmix(mode MonoMode)
	toStereo() (pcm, error)
	convert(bits int) (pcm, error)
	release()
}

func allocate[T Elem](frames, channels int) (*Buffer[T], error) {
	if channels < 1 || channels > 2 {
		return nil, ErrUnsupported
	}
	if frames < 0 || frames > MaxSampleLength {
		return nil, ErrSampleTooLong
	}
	return &Buffer[T]{
		raw:      make([]T, (frames+paddingFrames)*channels),
		base:     InterpolationMaxLookahead * channels,
		length:   frames,
		channels: channels,
	}, nil
}

// newStorage allocates zeroed storage for the given frame format.
func newStorage(frames, channels, bits int) (pcm, error) {
	switch bits {
	case 8:
		b, err := allocate[int8](frames, channels)
		if err != nil {
			return nil, err
		}
		return b, nil
	case 16:
		b, err := allocate[int16](frames, channels)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, ErrUnsupported
}

func (b *Buffer[T]) Len() int           { return b.length }
func (b *Buffer[T]) NumChannels() int   { return b.channels }
func (b *Buffer[T]) BitsPerSample() int { return utils.Bits[T]() }

// Frames returns the interleaved sample data without the derived regions.
func (b *Buffer[T]) Frames() []T {
	return b.raw[b.base : b.base+b.length*b.channels]
}

// At returns channel ch of the given frame. Frames in [-L, Len()+L) are valid;
// the ones outside the data read the pre-roll and post-roll.
func (b *Buffer[T]) At(frame, ch int) T {
	return b.raw[b.base+frame*b.channels+ch]
}

// PreRoll holds L copies of the first frame, stored before it.
func (b *Buffer[T]) PreRoll() []T {
	return b.raw[b.base-InterpolationMaxLookahead*b.channels : b.base]
}

// PostRoll holds L copies of the last frame, stored after it.
func (b *Buffer[T]) PostRoll() []T {
	end := b.end()
	return b.raw[end : end+InterpolationMaxLookahead*b.channels]
}

// LoopLookahead is the unrolled neighbourhood of the primary loop boundary.
func (b *Buffer[T]) LoopLookahead() []T {
	return b.region(1)
}

// SustainLookahead is the unrolled neighbourhood of the sustain loop boundary.
func (b *Buffer[T]) SustainLookahead() []T {
	return b.region(5)
}

func (b *Buffer[T]) end() int { return b.base + b.length*b.channels }

func (b *Buffer[T]) region(offsetL int) []T {
	l := InterpolationMaxLookahead * b.channels
	start := b.end() + offsetL*l
	return b.raw[start : start+4*l]
}

func (b *Buffer[T]) alloc(frames, channels int) (pcm, error) {
	nb, err := allocate[T](frames, channels)
	if err != nil {
		return nil, err
	}
	return nb, nil
}

func (b *Buffer[T]) copyTo(dst pcm, dstFrame, srcFrame, n int) {
	d := dst.(*Buffer[T])
	ch := b.channels
	copy(d.raw[d.base+dstFrame*ch:d.base+(dstFrame+n)*ch], b.raw[b.base+srcFrame*ch:b.base+(srcFrame+n)*ch])
}

func (b *Buffer[T]) moveFrames(dstFrame, srcFrame, n int) {
	b.copyTo(b, dstFrame, srcFrame, n)
}

func (b *Buffer[T]) truncate(frames int) {
	b.length = frames
}

func (b *Buffer[T]) frameFloat(frame, ch int) float32 {
	return utils.PCMToFloat(b.At(frame, ch))
}

func (b *Buffer[T]) appendInts(dst []int) []int {
	for _, v := range b.Frames() {
		dst = append(dst, int(v))
	}
	return dst
}

func (b *Buffer[T]) release() {
	b.raw = nil
	b.length = 0
}

func (b *Buffer[T]) reverse(start, end int) {
	ch := b.channels
	for lo, hi := start, end-1; lo < hi; lo, hi = lo+1, hi-1 {
		for c := range ch {
			i, j := b.base+lo*ch+c, b.base+hi*ch+c
			b.raw[i], b.raw[j] = b.raw[j], b.raw[i]
		}
	}
}

func (b *Buffer[T]) invert(start, end int) {
	d := b.Frames()[start*b.channels : end*b.channels]
	for i := range d {
		d[i] = ^d[i]
	}
}

// unsign flips the sign bit, reinterpreting unsigned data as signed.
func (b *Buffer[T]) unsign(start, end int) {
	lo, _ := utils.Bounds[T]()
	off := T(lo)
	d := b.Frames()[start*b.channels : end*b.channels]
	for i := range d {
		d[i] += off
	}
}

type dcStats struct {
	offset float64
	min    float64
	max    float64
}

// dcOffset measures the mean and extrema of the range, normalized to [-1, 1).
func (b *Buffer[T]) dcOffset(start, end int) dcStats {
	d := b.Frames()[start*b.channels : end*b.channels]
	if len(d) == 0 {
		return dcStats{}
	}
	amp := utils.Amplitude[T]()
	var sum float64
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range d {
		x := float64(v) / amp
		sum += x
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return dcStats{offset: -sum / float64(len(d)), min: lo, max: hi}
}

func (b *Buffer[T]) removeDC(start, end int, offset, amplify float64) {
	d := b.Frames()[start*b.channels : end*b.channels]
	for i, v := range d {
		d[i] = utils.SaturateRound[T](float64(v)*amplify + offset)
	}
}

// xfade blends n elements starting at in and out into dst. The in side
// fades up as (i/n)^exp while the out side fades down as ((n-i)/n)^exp.
func (b *Buffer[T]) xfade(in, out, dst, n int, exp float64) {
	d := b.raw[b.base:]
	step := 1 / float64(n)
	for i := range n {
		fIn := math.Pow(float64(i)*step, exp)
		fOut := math.Pow(float64(n-i)*step, exp)
		v := float64(d[in+i])*fIn + float64(d[out+i])*fOut
		d[dst+i] = utils.SaturateCast[T](int64(int32(v)))
	}
}

// ramp replaces frames [start, end) with a straight line from the frame
// before start to the frame at end. Outside the data the anchor is zero.
func (b *Buffer[T]) ramp(start, end int) {
	ch := b.channels
	n := int64(end - start)
	for c := range ch {
		var from, to int64
		if start > 0 {
			from = int64(b.At(start-1, c))
		}
		if end < b.length {
			to = int64(b.At(end, c))
		}
		for i := range n {
			b.raw[b.base+(start+int(i))*ch+c] = T(from + (to-from)*(i+1)/(n+1))
		}
	}
}

// stereoSep mixes each frame's channels with 16.16 fixed-point factors
// 1/2 +- sep/2.
func (b *Buffer[T]) stereoSep(start, end int, sep int32) {
	f1 := int64(32768 + sep/2)
	f2 := int64(32768 - sep/2)
	d := b.Frames()
	for i := start; i < end; i++ {
		l, r := int64(d[2*i]), int64(d[2*i+1])
		d[2*i] = utils.SaturateCast[T]((l*f1 + r*f2) >> 16)
		d[2*i+1] = utils.SaturateCast[T]((l*f2 + r*f1) >> 16)
	}
}

func (b *Buffer[T]) downmix(mode MonoMode) {
	src := b.raw[b.base : b.base+2*b.length]
	dst := b.raw[b.base : b.base+b.length]
	for i := range dst {
		switch mode {
		case MonoLeft, MonoSplit:
			dst[i] = src[2*i]
		case MonoRight:
			dst[i] = src[2*i+1]
		default:
			dst[i] = T((int(src[2*i]) + int(src[2*i+1]) + 1) >> 1)
		}
	}
	b.channels = 1
}

func (b *Buffer[T]) toStereo() (pcm, error) {
	nb, err := allocate[T](b.length, 2)
	if err != nil {
		return nil, err
	}
	out := nb.Frames()
	for i, v := range b.Frames() {
		out[2*i], out[2*i+1] = v, v
	}
	return nb, nil
}

func (b *Buffer[T]) convert(bits int) (pcm, error) {
	switch bits {
	case 8:
		nb, err := convertBuffer[T, int8](b)
		if err != nil {
			return nil, err
		}
		return nb, nil
	case 16:
		nb, err := convertBuffer[T, int16](b)
		if err != nil {
			return nil, err
		}
		return nb, nil
	}
	return nil, ErrUnsupported
}

// convertBuffer rescales every element to the width of To. Narrowing rounds
// to nearest and saturates.
func convertBuffer[From, To Elem](src *Buffer[From]) (*Buffer[To], error) {
	dst, err := allocate[To](src.length, src.channels)
	if err != nil {
		return nil, err
	}
	shift := utils.Bits[To]() - utils.Bits[From]()
	out := dst.Frames()
	for i, v := range src.Frames() {
		x := int64(v)
		switch {
		case shift > 0:
			out[i] = To(x << shift)
		case shift < 0:
			s := -shift
			out[i] = utils.SaturateCast[To]((x + 1<<(s-1)) >> s)
		default:
			out[i] = To(x)
		}
	}
	return dst, nil
}
