// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Config controls how an Editor edits samples and how edits propagate to
// playing channels.
type Config struct {
	// MaxLength caps the frame count an edit may produce.
	MaxLength int
	// ITPingPongMode makes ping-pong loops turn without repeating the end frame.
	ITPingPongMode bool
	// GlobalVolume lets DC removal fold its gain back into the global volume.
	GlobalVolume bool
	// PeriodsAreFrequencies selects how channel periods scale with C5 speed.
	PeriodsAreFrequencies bool

	Logger *slog.Logger
}

// WithDefaults fills in unset fields.
func (c Config) WithDefaults() Config {
	if c.MaxLength == 0 {
		c.MaxLength = MaxSampleLength
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func (c Config) Validate() error {
	if c.MaxLength < 0 || c.MaxLength > MaxSampleLength {
		return fmt.Errorf("max length %d out of range [0, %d]", c.MaxLength, MaxSampleLength)
	}
	return nil
}

// Editor performs the buffer edits on samples that may be playing.
//
// Edits that keep the storage mutate it while holding the player's lock.
// Edits that need new storage build and precompute it unlocked, then swap it
// in under the lock together with the channel updates, so the mixer never
// sees a buffer whose derived regions disagree with its frames.
//
// An Editor is meant to be driven from one goroutine at a time; the mixer
// may run concurrently.
type Editor struct {
	player Player
	cfg    Config
	log    *slog.Logger

	// held is set while the editor owns the player's lock.
	held atomic.Bool
}

// NewEditor returns an editor synchronizing with player. A nil player gets
// an empty ChannelTable.
func NewEditor(player Player, cfg Config) (*Editor, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if player == nil {
		player = NewChannelTable(0)
	}
	return &Editor{
		player: player,
		cfg:    cfg,
		log:    cfg.Logger.With("component", "sample-editor"),
	}, nil
}

func (e *Editor) Config() Config { return e.cfg }

func (e *Editor) lock() {
	e.player.Lock()
	e.held.Store(true)
}

func (e *Editor) unlock() {
	e.held.Store(false)
	e.player.Unlock()
}

func (e *Editor) mustHold(op string) {
	if !e.held.Load() {
		panic("sample: " + op + " called without the player lock")
	}
}

// fail logs a rejected edit and returns err annotated with the operation.
func (e *Editor) fail(op string, err error) error {
	e.log.Debug("sample edit rejected", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

// edit runs fn on s's storage with the player locked and then rebuilds the
// derived regions before unlocking.
func (e *Editor) edit(s *Sample, updateChannels bool, fn func()) {
	e.lock()
	defer e.unlock()

	fn()
	e.precomputeLocked(s, updateChannels)
}

// publish swaps next's storage and metadata into s. next must come from
// s.stage(); it is precomputed here before anything becomes visible.
func (e *Editor) publish(op string, s, next *Sample, updateChannels bool) {
	next.sanitizeLoops()
	if next.HasData() {
		next.data.precompute(next.loopRegion(), next.sustainRegion(), e.cfg.ITPingPongMode)
	}

	e.lock()
	old := s.data
	e.replaceLocked(s, next)
	if updateChannels {
		e.updateLoopPointsLocked(s)
	}
	if old != nil && old != s.data {
		old.release()
	}
	e.unlock()

	e.log.Debug("sample storage replaced", "op", op, "frames", s.Len(), "channels", s.NumChannels(), "bits", s.BitsPerSample())
}

// PrecomputeLoops sanitizes s's loops and rebuilds its derived regions,
// optionally pushing the loop bounds to the channels playing it.
func (e *Editor) PrecomputeLoops(s *Sample, updateChannels bool) error {
	if !s.HasData() {
		return e.fail("precompute loops", ErrNoData)
	}
	e.lock()
	defer e.unlock()

	e.precomputeLocked(s, updateChannels)
	return nil
}

func (e *Editor) precomputeLocked(s *Sample, updateChannels bool) {
	e.mustHold("precompute")

	s.sanitizeLoops()
	if updateChannels {
		e.updateLoopPointsLocked(s)
	}
	if s.HasData() {
		s.data.precompute(s.loopRegion(), s.sustainRegion(), e.cfg.ITPingPongMode)
	}
}

// UpdateLoopPoints pushes s's current loop bounds to the channels playing it.
func (e *Editor) UpdateLoopPoints(s *Sample) {
	e.lock()
	defer e.unlock()

	e.updateLoopPointsLocked(s)
}

// ResetSample applies s.Reset(mode) while holding the player lock and
// refreshes the instrument volume of every channel playing s.
func (e *Editor) ResetSample(s *Sample, mode ResetMode) {
	e.lock()
	defer e.unlock()

	s.Reset(mode)
	for _, c := range e.player.Channels() {
		if c != nil && c.Sample == s {
			c.updateInstrumentVolume(s)
		}
	}
}

func (e *Editor) updateLoopPointsLocked(s *Sample) {
	e.mustHold("update loop points")

	for _, c := range e.player.Channels() {
		if c == nil || c.Sample != s || c.Length == 0 {
			continue
		}
		looped, bidi := false, false
		switch {
		case s.SustainActive() && !c.Flags.Has(ChnKeyOff):
			c.LoopStart, c.LoopEnd = s.SustainStart, s.SustainEnd
			c.Length = s.SustainEnd
			looped, bidi = true, s.Flags.Has(FlagPingPongSustain)
		case s.LoopActive():
			c.LoopStart, c.LoopEnd = s.LoopStart, s.LoopEnd
			c.Length = s.LoopEnd
			looped, bidi = true, s.Flags.Has(FlagPingPongLoop)
		}
		c.Flags.Set(ChnLoop, looped)
		c.Flags.Set(ChnPingPongLoop, bidi)

		if c.Position > c.Length {
			c.Position = c.LoopStart
			c.Flags.Set(ChnPingPongFlag, false)
		}
		if !bidi {
			c.Flags.Set(ChnPingPongFlag, false)
		}
		if !looped {
			c.Length = s.Len()
		}
	}
}

// replaceLocked publishes next into s and retargets every channel that was
// playing s at the new storage.
func (e *Editor) replaceLocked(s, next *Sample) {
	e.mustHold("replace sample")

	n := next.Len()
	for _, c := range e.player.Channels() {
		if c == nil || c.Sample != s {
			continue
		}
		if c.Data != nil {
			c.Data = next.PCM()
		}
		if c.Position > n {
			c.Position = 0
		}
		if c.Length > 0 {
			c.Length = min(c.Length, n)
		}
		if c.inSustainLoop(next) {
			c.LoopStart, c.LoopEnd = next.SustainStart, next.SustainEnd
		} else {
			c.LoopStart, c.LoopEnd = next.LoopStart, next.LoopEnd
		}
		c.Flags.Set(Chn16Bit, next.Flags.Has(Flag16Bit))
		c.Flags.Set(ChnStereo, next.Flags.Has(FlagStereo))

		if c.Period != 0 && c.C5Speed != 0 && next.C5Speed != 0 {
			if e.cfg.PeriodsAreFrequencies {
				c.Period = mulDivRound(c.Period, next.C5Speed, c.C5Speed)
			} else {
				c.Period = mulDivRound(c.Period, c.C5Speed, next.C5Speed)
			}
		}
		c.C5Speed = next.C5Speed
	}
	*s = *next
}

func mulDivRound(a, b, c int) int {
	return int((int64(a)*int64(b) + int64(c)/2) / int64(c))
}

// IsRejected reports whether err is one of the sentinel failures an edit
// returns when it leaves the sample unchanged.
func IsRejected(err error) bool {
	return errors.Is(err, ErrNoData) || errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrSampleTooLong) || errors.Is(err, ErrUnsupported)
}
