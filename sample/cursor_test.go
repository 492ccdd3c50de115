// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		start, end int
		flags      Flags
		opts       CursorOptions
		want       []int
	}{
		{"no loop", 0, 0, 0, CursorOptions{Repeats: -1}, []int{0, 1, 2, 3, 4, 5}},
		{"loop once", 2, 4, FlagLoop, CursorOptions{Repeats: 1}, []int{0, 1, 2, 3, 2, 3, 4, 5}},
		{"loop skipped", 2, 4, FlagLoop, CursorOptions{}, []int{0, 1, 2, 3, 4, 5}},
		{"ping-pong", 2, 5, FlagLoop | FlagPingPongLoop, CursorOptions{Repeats: 1}, []int{0, 1, 2, 3, 4, 4, 3, 2, 2, 3, 4, 5}},
		{"ping-pong it", 2, 5, FlagLoop | FlagPingPongLoop, CursorOptions{Repeats: 1, ITPingPongMode: true}, []int{0, 1, 2, 3, 4, 3, 2, 2, 3, 4, 5}},
		{"sustain ignored", 2, 4, FlagSustainLoop, CursorOptions{Repeats: 1}, []int{0, 1, 2, 3, 4, 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := patterned16(t, 6, 1)
			s.LoopStart, s.LoopEnd = tc.start, tc.end
			s.Flags |= tc.flags
			require.Equal(t, tc.want, playback(s, tc.opts, 100))
		})
	}
}

func TestCursor_Sustain(t *testing.T) {
	t.Parallel()

	s := patterned16(t, 6, 1)
	s.SustainStart, s.SustainEnd = 3, 5
	s.Flags.Set(FlagSustainLoop, true)

	got := playback(s, CursorOptions{Sustain: true, Repeats: 2}, 100)
	require.Equal(t, []int{0, 1, 2, 3, 4, 3, 4, 3, 4, 5}, got)
}

func TestCursor_Infinite(t *testing.T) {
	t.Parallel()

	s := patterned16(t, 6, 1)
	s.LoopStart, s.LoopEnd = 4, 6
	s.Flags.Set(FlagLoop, true)

	got := playback(s, CursorOptions{Repeats: -1}, 1000)
	require.Len(t, got, 1000)
	require.Equal(t, []int{4, 5, 4, 5}, got[996:])
}

func TestCursor_Empty(t *testing.T) {
	t.Parallel()

	s, err := New(0, 1, 16)
	require.NoError(t, err)
	_, ok := NewCursor(s, CursorOptions{}).Next()
	require.False(t, ok)
}
