// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"

	"github.com/jmcabandara/openmpt/utils"
)

// wholeIfDegenerate widens a request to the whole sample when end is zero or
// either bound lies past the data.
func wholeIfDegenerate(start, end, n int) (int, int) {
	if end == 0 || start > n || end > n {
		return 0, n
	}
	return start, end
}

// Reverse mirrors frames [start, end) in place.
func (e *Editor) Reverse(s *Sample, start, end int) error {
	const op = "reverse"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	start, end = wholeIfDegenerate(start, end, s.Len())
	if start < 0 || end-start < 2 {
		return e.fail(op, ErrInvalidRange)
	}
	e.edit(s, false, func() { s.data.reverse(start, end) })
	return nil
}

// Invert complements every value in frames [start, end).
func (e *Editor) Invert(s *Sample, start, end int) error {
	return e.perElement("invert", s, start, end, func(start, end int) { s.data.invert(start, end) })
}

// Unsign converts frames [start, end) from unsigned to signed
// representation by adding the storage type's minimum.
func (e *Editor) Unsign(s *Sample, start, end int) error {
	return e.perElement("unsign", s, start, end, func(start, end int) { s.data.unsign(start, end) })
}

func (e *Editor) perElement(op string, s *Sample, start, end int, fn func(start, end int)) error {
	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	start, end = wholeIfDegenerate(start, end, s.Len())
	if start < 0 || start >= end {
		return e.fail(op, ErrInvalidRange)
	}
	e.edit(s, false, func() { fn(start, end) })
	return nil
}

// Silence replaces frames [start, end) with a linear ramp between the frames
// on either side, so the cut does not click.
func (e *Editor) Silence(s *Sample, start, end int) error {
	const op = "silence"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	end = min(end, s.Len())
	if start < 0 || start >= end {
		return e.fail(op, ErrInvalidRange)
	}
	e.edit(s, false, func() { s.data.ramp(start, end) })
	return nil
}

// StereoSeparation widens or narrows the stereo image of frames
// [start, end). percent is the change in separation: 0 leaves the sample
// unchanged, -100 collapses it to mono and +100 doubles the side signal.
func (e *Editor) StereoSeparation(s *Sample, start, end int, percent float64) error {
	const op = "stereo separation"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	if s.NumChannels() != 2 {
		return e.fail(op, ErrUnsupported)
	}
	end = min(end, s.Len())
	if start < 0 || start >= end || math.IsNaN(percent) {
		return e.fail(op, ErrInvalidRange)
	}
	sep := utils.SaturateRound[int32]((100 + percent) * 65536 / 100)
	e.edit(s, false, func() { s.data.stereoSep(start, end, sep) })
	return nil
}
