// SPDX-License-Identifier: EPL-2.0

package sample

// MaxFadeCurve is the fade law setting that gives the steepest
// (constant-power-like) crossfade. 0 is linear.
const MaxFadeCurve = 100000

// XFade crossfades the fadeLength frames before the end of the primary
// loop, or of the sustain loop when sustain is set, with the frames before
// the loop start so the wrap is seamless. With afterLoop the frames after
// the loop end are faded towards the loop start as well.
func (e *Editor) XFade(s *Sample, fadeLength, curve int, afterLoop, sustain bool) error {
	const op = "crossfade loop"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	n := s.Len()
	start, end, active := s.LoopStart, s.LoopEnd, s.LoopActive()
	if sustain {
		start, end, active = s.SustainStart, s.SustainEnd, s.SustainActive()
	}
	if !active || end <= start || end > n {
		return e.fail(op, ErrUnsupported)
	}
	if fadeLength <= 0 || start < fadeLength {
		return e.fail(op, ErrInvalidRange)
	}

	ch := s.NumChannels()
	curve = max(0, min(curve, MaxFadeCurve))
	exp := 1 - float64(curve)/(2*MaxFadeCurve)
	after := min(n-end, fadeLength)

	e.edit(s, true, func() {
		s.data.xfade((start-fadeLength)*ch, (end-fadeLength)*ch, (end-fadeLength)*ch, fadeLength*ch, exp)
		if afterLoop && after > 0 {
			s.data.xfade(end*ch, start*ch, end*ch, after*ch, exp)
		}
	})
	return nil
}
