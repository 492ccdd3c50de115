// SPDX-License-Identifier: EPL-2.0

package sample

import "sync"

// Instrument carries the instrument-level properties a channel's volume
// depends on.
type Instrument struct {
	GlobalVol int
}

// Channel is the playback state of one mixer voice.
type Channel struct {
	Sample     *Sample
	Instrument *Instrument
	// Data is the storage the voice reads from; it is nil for a silent voice.
	Data PCM

	// Position is the current frame. Length is the frame past which the
	// voice stops or loops.
	Position  int
	Length    int
	LoopStart int
	LoopEnd   int
	Flags     ChannelFlags

	C5Speed          int
	Period           int
	InstrumentVolume int
}

// inSustainLoop reports whether the voice is held in s's sustain loop.
func (c *Channel) inSustainLoop(s *Sample) bool {
	return c.Flags&(ChnLoop|ChnKeyOff) == ChnLoop && s.Flags.Has(FlagSustainLoop)
}

func (c *Channel) updateInstrumentVolume(s *Sample) {
	v := s.GlobalVol
	if c.Instrument != nil {
		v = v * c.Instrument.GlobalVol >> 6
	}
	c.InstrumentVolume = v
}

// Player is the playback side an Editor synchronizes with. Holding its lock
// excludes the mixer; Channels may only be inspected while holding it.
type Player interface {
	sync.Locker
	Channels() []*Channel
}

// ChannelTable is a fixed set of voices guarded by one mutex. It is the
// Player used when an Editor is not attached to a real mixer.
type ChannelTable struct {
	mu  sync.Mutex
	chn []*Channel
}

func NewChannelTable(n int) *ChannelTable {
	t := &ChannelTable{chn: make([]*Channel, n)}
	for i := range t.chn {
		t.chn[i] = &Channel{}
	}
	return t
}

func (t *ChannelTable) Lock()   { t.mu.Lock() }
func (t *ChannelTable) Unlock() { t.mu.Unlock() }

func (t *ChannelTable) Channels() []*Channel { return t.chn }

// Trigger starts s on voice i from its first frame, entering the sustain
// loop when one is active.
func (t *ChannelTable) Trigger(i int, s *Sample) *Channel {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.chn[i]
	*c = Channel{
		Sample:  s,
		Data:    s.PCM(),
		C5Speed: s.C5Speed,
		Period:  s.C5Speed,
	}
	c.Flags.Set(Chn16Bit, s.Flags.Has(Flag16Bit))
	c.Flags.Set(ChnStereo, s.Flags.Has(FlagStereo))
	c.updateInstrumentVolume(s)
	c.setLoop(s)
	return c
}

// KeyOff releases voice i, leaving any sustain loop for the primary loop.
func (t *ChannelTable) KeyOff(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.chn[i]
	c.Flags.Set(ChnKeyOff, true)
	if c.Sample != nil {
		c.setLoop(c.Sample)
	}
}

// setLoop loads the loop the voice should be playing from s.
func (c *Channel) setLoop(s *Sample) {
	c.Flags.Set(ChnLoop|ChnPingPongLoop, false)
	switch {
	case s.SustainActive() && !c.Flags.Has(ChnKeyOff):
		c.LoopStart, c.LoopEnd = s.SustainStart, s.SustainEnd
		c.Length = s.SustainEnd
		c.Flags.Set(ChnLoop, true)
		c.Flags.Set(ChnPingPongLoop, s.Flags.Has(FlagPingPongSustain))
	case s.LoopActive():
		c.LoopStart, c.LoopEnd = s.LoopStart, s.LoopEnd
		c.Length = s.LoopEnd
		c.Flags.Set(ChnLoop, true)
		c.Flags.Set(ChnPingPongLoop, s.Flags.Has(FlagPingPongLoop))
	default:
		c.LoopStart, c.LoopEnd = 0, 0
		c.Length = s.Len()
	}
	if !c.Flags.Has(ChnPingPongLoop) {
		c.Flags.Set(ChnPingPongFlag, false)
	}
}
