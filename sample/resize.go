// SPDX-License-Identifier: EPL-2.0

package sample

// InsertSilence inserts length zero frames before frame at and returns the
// new frame count. Loop bounds and cue points at or after at move with the
// data. Inserting into an empty sample allocates it and makes the whole
// sample the primary loop.
func (e *Editor) InsertSilence(s *Sample, length, at int) (int, error) {
	const op = "insert silence"

	old := s.Len()
	if length <= 0 || at < 0 || at > old {
		return old, e.fail(op, ErrInvalidRange)
	}
	if length > e.cfg.MaxLength || old > e.cfg.MaxLength-length {
		return old, e.fail(op, ErrSampleTooLong)
	}
	n := old + length

	var (
		buf pcm
		err error
	)
	if s.HasData() {
		buf, err = s.data.alloc(n, s.NumChannels())
	} else {
		buf, err = newStorage(n, s.NumChannels(), s.BitsPerSample())
	}
	if err != nil {
		return old, e.fail(op, err)
	}
	if old > 0 {
		s.data.copyTo(buf, 0, 0, at)
		s.data.copyTo(buf, at+length, at, old-at)
	}

	next := s.stage()
	next.data = buf
	if old == 0 {
		next.LoopStart, next.LoopEnd = 0, n
		next.Flags.Set(FlagLoop, true)
	} else {
		shift := func(v *int) {
			if *v >= at {
				*v += length
			}
		}
		shift(&next.LoopStart)
		shift(&next.LoopEnd)
		shift(&next.SustainStart)
		shift(&next.SustainEnd)
		for i := range next.Cues {
			shift(&next.Cues[i])
		}
	}

	e.publish(op, s, next, true)
	return n, nil
}

// Resize grows the sample by appending silence or shrinks it by dropping
// trailing frames, and returns the resulting frame count.
func (e *Editor) Resize(s *Sample, length int) (int, error) {
	const op = "resize"

	old := s.Len()
	switch {
	case length < 0:
		return old, e.fail(op, ErrInvalidRange)
	case length > e.cfg.MaxLength:
		return old, e.fail(op, ErrSampleTooLong)
	case length == old:
		return old, nil
	case length > old:
		return e.InsertSilence(s, length-old, old)
	}

	next := s.stage()
	if length == 0 {
		next.data = nil
	} else {
		buf, err := s.data.alloc(length, s.NumChannels())
		if err != nil {
			return old, e.fail(op, err)
		}
		s.data.copyTo(buf, 0, 0, length)
		next.data = buf
	}
	next.LoopStart, next.LoopEnd = truncateLoop(next.LoopStart, next.LoopEnd, length)
	next.SustainStart, next.SustainEnd = truncateLoop(next.SustainStart, next.SustainEnd, length)

	e.publish(op, s, next, true)
	return length, nil
}

// truncateLoop fits a loop to a sample cut down to n frames. A loop that
// starts past the end is dropped; sanitizeLoops clears its flags.
func truncateLoop(start, end, n int) (int, int) {
	if start > n {
		return 0, 0
	}
	return start, min(end, n)
}

// RemoveRange deletes frames [start, end) and returns the new frame count.
// Loop bounds and cue points past the range move back; ones inside it snap
// to start.
func (e *Editor) RemoveRange(s *Sample, start, end int) (int, error) {
	const op = "remove range"

	n := s.Len()
	if !s.HasData() {
		return n, e.fail(op, ErrNoData)
	}
	end = min(end, n)
	if start < 0 || start >= end {
		return n, e.fail(op, ErrInvalidRange)
	}
	removed := end - start
	adjust := func(v int) int {
		switch {
		case v < start:
			return v
		case v >= end:
			return v - removed
		default:
			return start
		}
	}

	e.edit(s, true, func() {
		s.data.moveFrames(start, end, n-end)
		s.data.truncate(n - removed)

		s.LoopStart, s.LoopEnd = adjust(s.LoopStart), adjust(s.LoopEnd)
		s.SustainStart, s.SustainEnd = adjust(s.SustainStart), adjust(s.SustainEnd)
		for i, c := range s.Cues {
			s.Cues[i] = adjust(c)
		}
	})
	return n - removed, nil
}
