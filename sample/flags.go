// SPDX-License-Identifier: EPL-2.0

package sample

// Flags are the per-sample boolean properties.
type Flags uint16

const (
	FlagLoop Flags = 1 << iota
	FlagPingPongLoop
	FlagSustainLoop
	FlagPingPongSustain
	Flag16Bit
	FlagStereo
	FlagPanning
	FlagNoDefaultVolume
)

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// Set sets or clears x.
func (f *Flags) Set(x Flags, on bool) {
	if on {
		*f |= x
	} else {
		*f &^= x
	}
}

// ChannelFlags mirror the loop and format state of a playing channel.
type ChannelFlags uint16

const (
	ChnLoop ChannelFlags = 1 << iota
	ChnPingPongLoop
	// ChnPingPongFlag is set while a ping-pong loop is being played backwards.
	ChnPingPongFlag
	ChnKeyOff
	Chn16Bit
	ChnStereo
)

func (f ChannelFlags) Has(x ChannelFlags) bool { return f&x == x }

func (f *ChannelFlags) Set(x ChannelFlags, on bool) {
	if on {
		*f |= x
	} else {
		*f &^= x
	}
}
