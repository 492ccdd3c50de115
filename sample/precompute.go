// SPDX-License-Identifier: EPL-2.0

package sample

// loopWalker steps through a loop of length frames the way playback does,
// turning or wrapping at the boundaries. pos is relative to the loop start.
type loopWalker struct {
	length   int
	pos      int
	inc      int
	pingPong bool
	// itMode repeats no frame when a ping-pong loop turns at its end.
	itMode bool
}

func (w *loopWalker) step() {
	switch {
	case w.pos == w.length-1 && w.inc > 0:
		if w.pingPong {
			w.inc = -1
			if w.itMode && w.pos > 0 {
				w.pos--
			}
		} else {
			w.pos = 0
		}
	case w.pos == 0 && w.inc < 0:
		if w.pingPong {
			w.inc = 1
		} else {
			w.pos = w.length - 1
		}
	default:
		w.pos += w.inc
	}
}

// precompute rebuilds every derived region from the current frames.
func (b *Buffer[T]) precompute(loop, sustain loopRegion, itPingPong bool) {
	if b.length == 0 {
		return
	}
	ch := b.channels
	first := b.raw[b.base : b.base+ch]
	end := b.end()
	last := b.raw[end-ch : end]
	for i := range InterpolationMaxLookahead {
		copy(b.raw[b.base-(i+1)*ch:], first)
		copy(b.raw[end+i*ch:], last)
	}
	if loop.active {
		b.fillLookahead(b.LoopLookahead(), loop, itPingPong)
	}
	if sustain.active {
		b.fillLookahead(b.SustainLookahead(), sustain, itPingPong)
	}
}

// fillLookahead unrolls the frames around a loop's end boundary into dst.
// Frame 2L-1 of dst is the last frame of the loop. From there one walk goes
// forward through 2L+1 frames as playback would continue past the boundary,
// and another goes backward through 2L frames as playback arrived at it.
func (b *Buffer[T]) fillLookahead(dst []T, r loopRegion, itPingPong bool) {
	const l = InterpolationMaxLookahead
	ch := b.channels
	loop := b.raw[b.base+r.start*ch : b.base+r.end*ch]
	for _, inc := range [...]int{1, -1} {
		n := 2 * l
		if inc > 0 {
			n++
		}
		w := loopWalker{
			length:   r.end - r.start,
			pos:      r.end - r.start - 1,
			inc:      inc,
			pingPong: r.pingPong,
			itMode:   itPingPong,
		}
		at := 2*l - 1
		for range n {
			copy(dst[at*ch:(at+1)*ch], loop[w.pos*ch:(w.pos+1)*ch])
			at += inc
			w.step()
		}
	}
}
