// SPDX-License-Identifier: EPL-2.0

package sample

// CursorOptions control how a Cursor plays through a sample.
type CursorOptions struct {
	// Sustain plays the sustain loop instead of the primary loop.
	Sustain bool
	// Repeats is how many times playback turns back at the loop end before
	// continuing past it. Negative loops forever.
	Repeats int
	// ITPingPongMode must match the editor setting the sample was
	// precomputed with.
	ITPingPongMode bool
}

// Cursor yields the frame indices of a sample in playback order, following
// its loop the same way the precomputed lookahead regions do.
type Cursor struct {
	length  int
	loop    loopRegion
	walk    loopWalker
	pos     int
	repeats int
	done    bool
}

// NewCursor returns a cursor positioned at frame 0 of s. The loop bounds
// are captured now; later edits to s do not affect the cursor.
func NewCursor(s *Sample, opts CursorOptions) *Cursor {
	loop := s.loopRegion()
	if opts.Sustain {
		loop = s.sustainRegion()
	}
	return &Cursor{
		length: s.Len(),
		loop:   loop,
		walk: loopWalker{
			length:   loop.end - loop.start,
			inc:      1,
			pingPong: loop.pingPong,
			itMode:   opts.ITPingPongMode,
		},
		repeats: opts.Repeats,
		done:    s.Len() == 0,
	}
}

// Next returns the next frame index, or false once playback has left the
// end of the sample.
func (c *Cursor) Next() (int, bool) {
	if c.done {
		return 0, false
	}
	f := c.pos
	c.advance()
	return f, true
}

func (c *Cursor) advance() {
	if !c.loop.active || c.pos < c.loop.start || c.pos >= c.loop.end {
		c.forward()
		return
	}
	rel := c.pos - c.loop.start
	if rel == c.walk.length-1 && c.walk.inc > 0 {
		if c.repeats == 0 {
			c.loop.active = false
			c.forward()
			return
		}
		if c.repeats > 0 {
			c.repeats--
		}
	}
	c.walk.pos = rel
	c.walk.step()
	c.pos = c.loop.start + c.walk.pos
}

func (c *Cursor) forward() {
	c.pos++
	if c.pos >= c.length {
		c.done = true
	}
}
