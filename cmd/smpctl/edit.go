// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/jmcabandara/openmpt/sample"
)

// ResizeCmd sets the frame count of a sample.
type ResizeCmd struct {
	Files  ioArgs `embed:""`
	Length int    `required:"" help:"New frame count"`
}

func (c *ResizeCmd) Run(a *app) error {
	return a.edit(c.Files, "resize", func(ed *sample.Editor, s *sample.Sample) error {
		_, err := ed.Resize(s, c.Length)
		return err
	})
}

// InsertSilenceCmd inserts silent frames.
type InsertSilenceCmd struct {
	Files  ioArgs `embed:""`
	Length int    `required:"" help:"Number of frames to insert"`
	At     int    `default:"-1" help:"Frame to insert before (-1 appends)"`
}

func (c *InsertSilenceCmd) Run(a *app) error {
	return a.edit(c.Files, "insert silence", func(ed *sample.Editor, s *sample.Sample) error {
		at := c.At
		if at < 0 {
			at = s.Len()
		}
		_, err := ed.InsertSilence(s, c.Length, at)
		return err
	})
}

// RemoveCmd cuts a frame range.
type RemoveCmd struct {
	Files ioArgs `embed:""`
	Start int    `required:"" help:"First frame to remove"`
	End   int    `required:"" help:"Frame past the removed range"`
}

func (c *RemoveCmd) Run(a *app) error {
	return a.edit(c.Files, "remove", func(ed *sample.Editor, s *sample.Sample) error {
		_, err := ed.RemoveRange(s, c.Start, c.End)
		return err
	})
}

// ReverseCmd reverses a frame range.
type ReverseCmd struct {
	Files ioArgs `embed:""`
	Range span   `embed:""`
}

func (c *ReverseCmd) Run(a *app) error {
	return a.edit(c.Files, "reverse", func(ed *sample.Editor, s *sample.Sample) error {
		start, end := c.Range.resolve(s)
		return ed.Reverse(s, start, end)
	})
}

// InvertCmd inverts a frame range.
type InvertCmd struct {
	Files ioArgs `embed:""`
	Range span   `embed:""`
}

func (c *InvertCmd) Run(a *app) error {
	return a.edit(c.Files, "invert", func(ed *sample.Editor, s *sample.Sample) error {
		start, end := c.Range.resolve(s)
		return ed.Invert(s, start, end)
	})
}

// UnsignCmd converts a frame range from unsigned to signed.
type UnsignCmd struct {
	Files ioArgs `embed:""`
	Range span   `embed:""`
}

func (c *UnsignCmd) Run(a *app) error {
	return a.edit(c.Files, "unsign", func(ed *sample.Editor, s *sample.Sample) error {
		start, end := c.Range.resolve(s)
		return ed.Unsign(s, start, end)
	})
}

// SilenceCmd ramps a frame range between its neighbours.
type SilenceCmd struct {
	Files ioArgs `embed:""`
	Range span   `embed:""`
}

func (c *SilenceCmd) Run(a *app) error {
	return a.edit(c.Files, "silence", func(ed *sample.Editor, s *sample.Sample) error {
		start, end := c.Range.resolve(s)
		return ed.Silence(s, start, end)
	})
}

// StereoSepCmd changes stereo separation.
type StereoSepCmd struct {
	Files   ioArgs  `embed:""`
	Range   span    `embed:""`
	Percent float64 `required:"" help:"Separation change: 0 keeps, -100 is mono, -200 swaps, 100 doubles"`
}

func (c *StereoSepCmd) Run(a *app) error {
	return a.edit(c.Files, "stereo separation", func(ed *sample.Editor, s *sample.Sample) error {
		start, end := c.Range.resolve(s)
		return ed.StereoSeparation(s, start, end, c.Percent)
	})
}

// XFadeCmd crossfades a loop.
type XFadeCmd struct {
	Files     ioArgs `embed:""`
	Length    int    `required:"" help:"Fade length in frames"`
	Curve     int    `default:"50000" help:"Fade law, 0 (linear) to 100000 (constant power)"`
	AfterLoop bool   `help:"Also fade the frames after the loop end"`
	Sustain   bool   `help:"Fade the sustain loop instead of the sample loop"`
}

func (c *XFadeCmd) Run(a *app) error {
	return a.edit(c.Files, "crossfade", func(ed *sample.Editor, s *sample.Sample) error {
		return ed.XFade(s, c.Length, c.Curve, c.AfterLoop, c.Sustain)
	})
}

// MonoCmd folds stereo to mono.
type MonoCmd struct {
	Files ioArgs `embed:""`
	Mode  string `enum:"mix,left,right,split" default:"mix" help:"How to fold the channels (${enum})"`
}

func (c *MonoCmd) Run(a *app) error {
	mode, err := parseMonoMode(c.Mode)
	if err != nil {
		return err
	}
	return a.edit(c.Files, "convert to mono", func(ed *sample.Editor, s *sample.Sample) error {
		return ed.ConvertToMono(s, mode)
	})
}

func parseMonoMode(name string) (sample.MonoMode, error) {
	for _, m := range []sample.MonoMode{sample.MonoMix, sample.MonoLeft, sample.MonoRight, sample.MonoSplit} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mono mode %q", name)
}

// StereoCmd duplicates mono to stereo.
type StereoCmd struct {
	Files ioArgs `embed:""`
}

func (c *StereoCmd) Run(a *app) error {
	return a.edit(c.Files, "convert to stereo", func(ed *sample.Editor, s *sample.Sample) error {
		return ed.ConvertToStereo(s)
	})
}

// BitsCmd changes the storage bit depth.
type BitsCmd struct {
	Files ioArgs `embed:""`
	Depth string `enum:"8,16" required:"" help:"Target bit depth (${enum})"`
}

func (c *BitsCmd) Run(a *app) error {
	bits, err := strconv.Atoi(c.Depth)
	if err != nil {
		return err
	}
	return a.edit(c.Files, "convert bit depth", func(ed *sample.Editor, s *sample.Sample) error {
		return ed.ConvertBitDepth(s, bits)
	})
}
