// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertSilence_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, at := range []int{0, 20, 40, 99, 100} {
		ed, _ := newTestEditor(t, Config{})
		s := patterned16(t, 100, 2)
		s.LoopStart, s.LoopEnd = 20, 80
		s.SustainStart, s.SustainEnd = 30, 50
		s.Flags.Set(FlagLoop|FlagSustainLoop, true)
		s.Cues = []int{10, 60, 99}
		require.NoError(t, ed.PrecomputeLoops(s, false))

		orig := frames16(s)
		origPad := s.PCM().(*Buffer[int16]).LoopLookahead()
		origLoop := append([]int16(nil), origPad...)

		n, err := ed.InsertSilence(s, 25, at)
		require.NoError(t, err)
		require.Equal(t, 125, n)
		require.Equal(t, 125, s.Len())

		got := frames16(s)
		require.Equal(t, orig[:at*2], got[:at*2])
		require.Equal(t, make([]int16, 50), got[at*2:(at+25)*2])
		require.Equal(t, orig[at*2:], got[(at+25)*2:])

		n, err = ed.RemoveRange(s, at, at+25)
		require.NoError(t, err)
		require.Equal(t, 100, n)
		require.Equal(t, orig, frames16(s))
		require.Equal(t, 20, s.LoopStart)
		require.Equal(t, 80, s.LoopEnd)
		require.Equal(t, 30, s.SustainStart)
		require.Equal(t, 50, s.SustainEnd)
		require.Equal(t, []int{10, 60, 99}, s.Cues)
		require.True(t, s.LoopActive())
		require.True(t, s.SustainActive())
		require.Equal(t, origLoop, s.PCM().(*Buffer[int16]).LoopLookahead())
	}
}

func TestInsertSilence_ShiftsBounds(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s := patterned16(t, 100, 1)
	s.LoopStart, s.LoopEnd = 20, 80
	s.SustainStart, s.SustainEnd = 30, 50
	s.Flags.Set(FlagLoop|FlagSustainLoop, true)
	s.Cues = []int{10, 40, 99}

	_, err := ed.InsertSilence(s, 25, 40)
	require.NoError(t, err)
	require.Equal(t, 20, s.LoopStart)
	require.Equal(t, 105, s.LoopEnd)
	require.Equal(t, 30, s.SustainStart)
	require.Equal(t, 75, s.SustainEnd)
	require.Equal(t, []int{10, 65, 124}, s.Cues)
}

func TestInsertSilence_Empty(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s, err := New(0, 1, 16)
	require.NoError(t, err)

	n, err := ed.InsertSilence(s, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, make([]int16, 10), frames16(s))
	require.Equal(t, 0, s.LoopStart)
	require.Equal(t, 10, s.LoopEnd)
	require.True(t, s.Flags.Has(FlagLoop))
	require.True(t, s.LoopActive())
}

func TestInsertSilence_Rejected(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{MaxLength: 1000})
	for _, tc := range []struct {
		name   string
		length int
		at     int
		err    error
	}{
		{"zero length", 0, 0, ErrInvalidRange},
		{"negative length", -5, 0, ErrInvalidRange},
		{"past end", 10, 101, ErrInvalidRange},
		{"negative position", 10, -1, ErrInvalidRange},
		{"too long", 901, 0, ErrSampleTooLong},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := patterned16(t, 100, 1)
			orig := frames16(s)
			n, err := ed.InsertSilence(s, tc.length, tc.at)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, 100, n)
			require.Equal(t, orig, frames16(s))
		})
	}
}

func TestResize_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 40, 99, 150} {
		ed, _ := newTestEditor(t, Config{})
		s := patterned16(t, 100, 1)
		orig := frames16(s)

		got, err := ed.Resize(s, n)
		require.NoError(t, err)
		require.Equal(t, n, got)
		got, err = ed.Resize(s, 100)
		require.NoError(t, err)
		require.Equal(t, 100, got)

		keep := min(n, 100)
		after := frames16(s)
		require.Equal(t, orig[:keep], after[:keep])
		require.Equal(t, make([]int16, 100-keep), after[keep:])
	}
}

func TestResize_TruncatesLoops(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s := patterned16(t, 100, 1)
	s.LoopStart, s.LoopEnd = 50, 90
	s.SustainStart, s.SustainEnd = 10, 20
	s.Flags.Set(FlagLoop|FlagSustainLoop, true)

	_, err := ed.Resize(s, 60)
	require.NoError(t, err)
	require.Equal(t, 50, s.LoopStart)
	require.Equal(t, 60, s.LoopEnd)
	require.True(t, s.LoopActive())

	_, err = ed.Resize(s, 45)
	require.NoError(t, err)
	require.Zero(t, s.LoopStart)
	require.Zero(t, s.LoopEnd)
	require.False(t, s.Flags.Has(FlagLoop))
	require.True(t, s.SustainActive())
	require.Equal(t, int16(44), s.PCM().(*Buffer[int16]).At(45, 0))
}

func TestResize_Bounds(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{MaxLength: 200})
	s := patterned16(t, 100, 1)

	n, err := ed.Resize(s, 100)
	require.NoError(t, err)
	require.Equal(t, 100, n)

	n, err = ed.Resize(s, 201)
	require.ErrorIs(t, err, ErrSampleTooLong)
	require.Equal(t, 100, n)

	n, err = ed.Resize(s, -1)
	require.ErrorIs(t, err, ErrInvalidRange)
	require.Equal(t, 100, n)

	n, err = ed.Resize(s, 0)
	require.NoError(t, err)
	require.Zero(t, n)
	require.False(t, s.HasData())
}

func TestRemoveRange_Loops(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name             string
		start, end       int
		wantLen          int
		wantStart        int
		wantEnd          int
		wantLoopDisabled bool
	}{
		{"inside loop", 45, 55, 90, 40, 50, false},
		{"before loop", 0, 10, 90, 30, 50, false},
		{"after loop", 70, 100, 70, 40, 60, false},
		{"covers loop", 30, 70, 60, 0, 0, true},
		{"covers loop start", 30, 50, 80, 30, 40, false},
		{"clamped end", 90, 500, 90, 40, 60, false},
		{"leaves one frame", 41, 60, 81, 0, 0, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ed, _ := newTestEditor(t, Config{})
			s := patterned16(t, 100, 1)
			s.LoopStart, s.LoopEnd = 40, 60
			s.Flags.Set(FlagLoop|FlagPingPongLoop, true)

			n, err := ed.RemoveRange(s, tc.start, tc.end)
			require.NoError(t, err)
			require.Equal(t, tc.wantLen, n)
			require.Equal(t, tc.wantStart, s.LoopStart)
			require.Equal(t, tc.wantEnd, s.LoopEnd)
			require.Equal(t, !tc.wantLoopDisabled, s.Flags.Has(FlagLoop))
			require.Equal(t, !tc.wantLoopDisabled, s.Flags.Has(FlagPingPongLoop))
		})
	}
}

func TestRemoveRange_CuesAndSustain(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s := patterned16(t, 100, 1)
	s.Cues = []int{10, 45, 50, 60, 99}
	s.SustainStart, s.SustainEnd = 20, 50
	s.Flags.Set(FlagSustainLoop, true)

	n, err := ed.RemoveRange(s, 40, 55)
	require.NoError(t, err)
	require.Equal(t, 85, n)
	require.Equal(t, []int{10, 40, 40, 45, 84}, s.Cues)
	require.Equal(t, 20, s.SustainStart)
	require.Equal(t, 40, s.SustainEnd)
	require.True(t, s.Flags.Has(FlagSustainLoop))

	// a sustain loop swallowed by the removed range collapses and is disabled
	s.SustainStart, s.SustainEnd = 42, 48
	n, err = ed.RemoveRange(s, 40, 50)
	require.NoError(t, err)
	require.Equal(t, 75, n)
	require.Zero(t, s.SustainStart)
	require.Zero(t, s.SustainEnd)
	require.False(t, s.Flags.Has(FlagSustainLoop))
}

func TestRemoveRange_Data(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s, err := FromFrames([]int8{0, 1, 2, 3, 4, 5, 6, 7}, 2)
	require.NoError(t, err)

	n, err := ed.RemoveRange(s, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int8{0, 1, 6, 7}, frames8(s))
	// post-roll follows the new last frame
	require.Equal(t, int8(6), s.PCM().(*Buffer[int8]).At(2, 0))
	require.Equal(t, int8(7), s.PCM().(*Buffer[int8]).At(2, 1))
}

func TestRemoveRange_Rejected(t *testing.T) {
	t.Parallel()

	ed, _ := newTestEditor(t, Config{})
	s := patterned16(t, 10, 1)

	_, err := ed.RemoveRange(s, 5, 5)
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = ed.RemoveRange(s, 7, 3)
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = ed.RemoveRange(s, 10, 20)
	require.ErrorIs(t, err, ErrInvalidRange)

	empty, err := New(0, 1, 8)
	require.NoError(t, err)
	_, err = ed.RemoveRange(empty, 0, 1)
	require.ErrorIs(t, err, ErrNoData)
}
