// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"slices"

	"github.com/jmcabandara/openmpt/utils"
)

const (
	DefaultC5Speed      = 8363
	DefaultVolume       = 256
	DefaultPan          = 128
	DefaultGlobalVolume = 64
	MaxGlobalVolume     = 64
)

// VibratoType selects the auto-vibrato waveform.
type VibratoType uint8

const (
	VibratoSine VibratoType = iota
	VibratoSquare
	VibratoRampUp
	VibratoRampDown
	VibratoRandom
)

// ResetMode selects what Reset restores.
type ResetMode int

const (
	// ResetInit clears the names and restores the C5 speed, then does
	// everything ResetCompo does.
	ResetInit ResetMode = iota
	// ResetCompo restores pan, volumes and vibrato and clears the panning
	// and no-default-volume flags. Names, C5 speed, loops and cues stay.
	ResetCompo
	// ResetVibrato clears the auto-vibrato settings only.
	ResetVibrato
)

// Sample is one instrument sample: its PCM storage plus loop, cue and
// playback metadata. Loop bounds are frame indices with exclusive ends.
//
// Once a sample is visible to playback channels, its storage must only be
// changed through an Editor.
type Sample struct {
	Name     string
	Filename string

	LoopStart    int
	LoopEnd      int
	SustainStart int
	SustainEnd   int
	Flags        Flags
	Cues         []int

	C5Speed   int
	Volume    int
	GlobalVol int
	Pan       int

	VibType  VibratoType
	VibSweep int
	VibDepth int
	VibRate  int

	data pcm
}

// New returns a sample with zeroed storage for frames frames. A zero frame
// count yields an empty sample that still carries the requested format.
func New(frames, channels, bits int) (*Sample, error) {
	s := &Sample{}
	s.Reset(ResetInit)
	s.Flags.Set(Flag16Bit, bits == 16)
	s.Flags.Set(FlagStereo, channels == 2)
	if bits != 8 && bits != 16 || channels != 1 && channels != 2 {
		return nil, ErrUnsupported
	}
	if frames == 0 {
		return s, nil
	}
	d, err := newStorage(frames, channels, bits)
	if err != nil {
		return nil, err
	}
	s.data = d
	s.data.precompute(loopRegion{}, loopRegion{}, false)
	return s, nil
}

// FromFrames returns a sample holding a copy of the interleaved frames.
func FromFrames[T Elem](frames []T, channels int) (*Sample, error) {
	if channels != 1 && channels != 2 || len(frames)%channels != 0 {
		return nil, ErrUnsupported
	}
	s, err := New(len(frames)/channels, channels, utils.Bits[T]())
	if err != nil {
		return nil, err
	}
	if s.data == nil {
		return s, nil
	}
	copy(s.data.(*Buffer[T]).Frames(), frames)
	s.data.precompute(loopRegion{}, loopRegion{}, false)
	return s, nil
}

// Reset restores the sample's metadata according to mode. Storage, loops
// and cue points are never touched.
//
// Reset does not update channels; use Editor.ResetSample once the sample
// may be playing.
func (s *Sample) Reset(mode ResetMode) {
	switch mode {
	case ResetInit:
		s.Name, s.Filename = "", ""
		s.C5Speed = DefaultC5Speed
		fallthrough
	case ResetCompo:
		s.Pan = DefaultPan
		s.GlobalVol = DefaultGlobalVolume
		s.Volume = DefaultVolume
		s.resetVibrato()
		s.Flags.Set(FlagPanning, false)
		s.Flags.Set(FlagNoDefaultVolume, false)
	case ResetVibrato:
		s.resetVibrato()
	}
}

func (s *Sample) resetVibrato() {
	s.VibType = VibratoSine
	s.VibSweep, s.VibDepth, s.VibRate = 0, 0, 0
}

// Len returns the number of frames.
func (s *Sample) Len() int {
	if s.data == nil {
		return 0
	}
	return s.data.Len()
}

func (s *Sample) HasData() bool { return s.Len() > 0 }

func (s *Sample) NumChannels() int {
	if s.Flags.Has(FlagStereo) {
		return 2
	}
	return 1
}

func (s *Sample) BitsPerSample() int {
	if s.Flags.Has(Flag16Bit) {
		return 16
	}
	return 8
}

func (s *Sample) BytesPerFrame() int { return s.NumChannels() * s.BitsPerSample() / 8 }

// SizeInBytes is the size of the frame data, excluding the derived regions.
func (s *Sample) SizeInBytes() int { return s.Len() * s.BytesPerFrame() }

// PCM returns the sample storage, or nil when there is none. The concrete
// type is *Buffer[int8] or *Buffer[int16].
func (s *Sample) PCM() PCM {
	if s.data == nil {
		return nil
	}
	return s.data
}

// LoopActive reports whether the primary loop is enabled with valid bounds.
func (s *Sample) LoopActive() bool {
	return s.Flags.Has(FlagLoop) && validLoop(s.LoopStart, s.LoopEnd, s.Len())
}

// SustainActive reports whether the sustain loop is enabled with valid bounds.
func (s *Sample) SustainActive() bool {
	return s.Flags.Has(FlagSustainLoop) && validLoop(s.SustainStart, s.SustainEnd, s.Len())
}

func validLoop(start, end, length int) bool {
	return start >= 0 && end <= length && end-start >= MinLoopLength
}

// Frame writes channel values of frame i, normalized to [-1, 1), into dst.
// Frames in [-L, Len()+L) are readable.
func (s *Sample) Frame(i int, dst []float32) {
	if s.data == nil {
		clear(dst)
		return
	}
	for c := range min(len(dst), s.data.NumChannels()) {
		dst[c] = s.data.frameFloat(i, c)
	}
}

// AppendInts appends the interleaved frame data to dst as ints.
func (s *Sample) AppendInts(dst []int) []int {
	if s.data == nil {
		return dst
	}
	return s.data.appendInts(dst)
}

// Precompute sanitizes the loops and rebuilds the derived regions of a
// sample that no playback channel can see yet, such as one being loaded.
// Published samples go through Editor.PrecomputeLoops instead.
func (s *Sample) Precompute(itPingPong bool) error {
	if !s.HasData() {
		return ErrNoData
	}
	s.sanitizeLoops()
	s.data.precompute(s.loopRegion(), s.sustainRegion(), itPingPong)
	return nil
}

// sanitizeLoops clamps loop ends and cue points to the data and disables
// loops whose span is too short to play.
func (s *Sample) sanitizeLoops() {
	n := s.Len()
	s.LoopStart, s.LoopEnd = clampLoop(s.LoopStart, s.LoopEnd, n)
	if s.LoopEnd-s.LoopStart < MinLoopLength {
		s.LoopStart, s.LoopEnd = 0, 0
		s.Flags.Set(FlagLoop|FlagPingPongLoop, false)
	}
	s.SustainStart, s.SustainEnd = clampLoop(s.SustainStart, s.SustainEnd, n)
	if s.SustainEnd-s.SustainStart < MinLoopLength {
		s.SustainStart, s.SustainEnd = 0, 0
		s.Flags.Set(FlagSustainLoop|FlagPingPongSustain, false)
	}
	for i, c := range s.Cues {
		s.Cues[i] = max(0, min(c, n))
	}
}

func clampLoop(start, end, n int) (int, int) {
	end = min(end, n)
	start = max(start, 0)
	return start, end
}

// stage returns a copy that can be modified and given new storage without
// affecting s until it is published.
func (s *Sample) stage() *Sample {
	next := *s
	next.Cues = slices.Clone(s.Cues)
	return &next
}

type loopRegion struct {
	start, end int
	pingPong   bool
	active     bool
}

func (s *Sample) loopRegion() loopRegion {
	return loopRegion{s.LoopStart, s.LoopEnd, s.Flags.Has(FlagPingPongLoop), s.LoopActive()}
}

func (s *Sample) sustainRegion() loopRegion {
	return loopRegion{s.SustainStart, s.SustainEnd, s.Flags.Has(FlagPingPongSustain), s.SustainActive()}
}
