// SPDX-License-Identifier: EPL-2.0

package sample

// MonoMode selects how ConvertToMono folds two channels into one.
type MonoMode int

const (
	// MonoMix averages both channels.
	MonoMix MonoMode = iota
	MonoLeft
	MonoRight
	// MonoSplit keeps the left channel; callers that split a stereo sample
	// into two mono samples convert a copy with MonoRight for the other half.
	MonoSplit
)

func (m MonoMode) String() string {
	switch m {
	case MonoMix:
		return "mix"
	case MonoLeft:
		return "left"
	case MonoRight:
		return "right"
	case MonoSplit:
		return "split"
	}
	return "unknown"
}

// ConvertToMono folds a stereo sample to mono in place. The storage keeps its
// size; only its first half is used afterwards.
func (e *Editor) ConvertToMono(s *Sample, mode MonoMode) error {
	const op = "convert to mono"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	if s.NumChannels() != 2 {
		return e.fail(op, ErrUnsupported)
	}
	e.edit(s, false, func() {
		s.data.downmix(mode)
		s.Flags.Set(FlagStereo, false)
		for _, c := range e.player.Channels() {
			if c != nil && c.Sample == s {
				c.Flags.Set(ChnStereo, false)
			}
		}
	})
	return nil
}

// ConvertToStereo duplicates the channel of a mono sample into new stereo
// storage.
func (e *Editor) ConvertToStereo(s *Sample) error {
	const op = "convert to stereo"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	if s.NumChannels() != 1 {
		return e.fail(op, ErrUnsupported)
	}
	buf, err := s.data.toStereo()
	if err != nil {
		return e.fail(op, err)
	}
	next := s.stage()
	next.data = buf
	next.Flags.Set(FlagStereo, true)
	e.publish(op, s, next, false)
	return nil
}

// ConvertBitDepth rewrites the sample with 8 or 16 bits per value. Going
// down rounds to nearest and saturates; going up shifts left.
func (e *Editor) ConvertBitDepth(s *Sample, bits int) error {
	const op = "convert bit depth"

	if !s.HasData() {
		return e.fail(op, ErrNoData)
	}
	if bits != 8 && bits != 16 || bits == s.BitsPerSample() {
		return e.fail(op, ErrUnsupported)
	}
	buf, err := s.data.convert(bits)
	if err != nil {
		return e.fail(op, err)
	}
	next := s.stage()
	next.data = buf
	next.Flags.Set(Flag16Bit, bits == 16)
	e.publish(op, s, next, false)
	return nil
}
