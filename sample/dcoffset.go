// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"

	"github.com/jmcabandara/openmpt/utils"
)

// RemoveDCOffset centres frames [start, end) around zero and normalizes the
// result to full scale. An empty or reversed range means the whole sample.
//
// When the whole sample is processed and Config.GlobalVolume is set, the
// sample's global volume is lowered by the same gain so playback loudness is
// unchanged. The returned value is the offset that was added, in [-1, 1].
func (e *Editor) RemoveDCOffset(s *Sample, start, end int) (float64, error) {
	const op = "remove dc offset"

	if !s.HasData() {
		return 0, e.fail(op, ErrNoData)
	}
	n := s.Len()
	end = min(end, n)
	start = max(0, min(start, end))
	if start == end {
		start, end = 0, n
	}

	st := s.data.dcOffset(start, end)
	amp := amplitude(s.BitsPerSample())
	if int64(st.offset*amp) == 0 {
		return 0, nil
	}

	amplify := 1 / max(st.max+st.offset, -(st.min+st.offset))
	if math.IsInf(amplify, 0) || math.IsNaN(amplify) {
		// constant signal: nothing left to normalize once centred
		amplify = 1
	}
	bias := st.offset * amp * amplify
	whole := start == 0 && end == n

	e.edit(s, false, func() {
		s.data.removeDC(start, end, bias, amplify)
		if whole && e.cfg.GlobalVolume {
			s.GlobalVol = min(int(math.Round(float64(s.GlobalVol)/amplify)), MaxGlobalVolume)
			for _, c := range e.player.Channels() {
				if c != nil && c.Sample == s {
					c.updateInstrumentVolume(s)
				}
			}
		}
	})

	e.log.Debug("dc offset removed", "offset", st.offset, "amplify", amplify, "frames", end-start)
	return st.offset, nil
}

func amplitude(bits int) float64 {
	if bits == 16 {
		return utils.Amplitude[int16]()
	}
	return utils.Amplitude[int8]()
}
