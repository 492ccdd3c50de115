// SPDX-License-Identifier: EPL-2.0

// Command smpctl edits instrument samples from the command line.
//
// Input can be any format the openmpt registry knows (WAV, AIFF, MP3, Ogg
// Vorbis); output is always WAV.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jmcabandara/openmpt/internal/config"
	"github.com/jmcabandara/openmpt/internal/logger"
)

// CLI defines the smpctl command structure.
type CLI struct {
	Info InfoCmd `cmd:"" help:"Print format, loops and cue points of samples"`

	// Length edits
	Resize        ResizeCmd        `cmd:"" help:"Grow or shrink a sample to a frame count"`
	InsertSilence InsertSilenceCmd `cmd:"" name:"insert-silence" help:"Insert silent frames"`
	Remove        RemoveCmd        `cmd:"" help:"Cut a frame range out of a sample"`

	// In-place edits
	Reverse   ReverseCmd   `cmd:"" help:"Reverse a frame range"`
	Invert    InvertCmd    `cmd:"" help:"Invert the polarity of a frame range"`
	Unsign    UnsignCmd    `cmd:"" help:"Convert a frame range from unsigned to signed"`
	Silence   SilenceCmd   `cmd:"" help:"Replace a frame range with a click-free ramp"`
	StereoSep StereoSepCmd `cmd:"" name:"stereo-sep" help:"Change the stereo separation of a frame range"`
	XFade     XFadeCmd     `cmd:"" name:"xfade" help:"Crossfade the loop end into the loop start"`
	DC        DCCmd        `cmd:"" name:"dc" help:"Remove DC offset from many samples at once"`

	// Format conversions
	Mono   MonoCmd   `cmd:"" help:"Fold a stereo sample to mono"`
	Stereo StereoCmd `cmd:"" help:"Duplicate a mono sample to stereo"`
	Bits   BitsCmd   `cmd:"" help:"Change the bit depth"`

	Render RenderCmd `cmd:"" help:"Render a sample in playback order, following its loop"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smpctl: %v\n", err)
		os.Exit(1)
	}

	log := logger.SetupLogger(cfg, os.Stderr)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("smpctl"),
		kong.Description("Sample editing and loop precompute tool."),
		kong.UsageOnError(),
		kong.Bind(newApp(cfg, log, os.Stdout)),
	)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
