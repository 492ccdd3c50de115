// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmcabandara/openmpt/audio"
	"github.com/jmcabandara/openmpt/sample"
	"github.com/jmcabandara/openmpt/utils"
)

// RenderCmd plays a sample through its loop and writes what a voice would
// hear.
type RenderCmd struct {
	Files   ioArgs  `embed:""`
	Rate    int     `help:"Output sample rate (default SMPCTL_RENDER_RATE)"`
	Repeats int     `default:"1" help:"Loop passes before playing out (negative loops until --seconds)"`
	Sustain bool    `help:"Play the sustain loop"`
	Seconds float64 `default:"30" help:"Maximum output length in seconds"`
}

func (c *RenderCmd) Run(a *app) error {
	s, err := a.load(c.Files.In)
	if err != nil {
		return err
	}

	rate := c.Rate
	if rate <= 0 {
		rate = a.cfg.RenderRate
	}
	maxFrames := int(c.Seconds * float64(rate))
	if maxFrames <= 0 {
		return fmt.Errorf("render length %.2fs is empty", c.Seconds)
	}

	src := audio.NewSampleSource(s, rate, sample.CursorOptions{
		Sustain:        c.Sustain,
		Repeats:        c.Repeats,
		ITPingPongMode: a.cfg.ITPingPong,
	})
	defer src.Close()

	out, err := render(src, maxFrames)
	if err != nil {
		return fmt.Errorf("render %s: %w", c.Files.In, err)
	}
	out.Name = s.Name
	out.C5Speed = rate

	if err := a.save(c.Files.Out, out); err != nil {
		return err
	}
	a.log.Info("rendered sample", "in", c.Files.In, "out", c.Files.Out,
		"frames", out.Len(), "rate", rate)
	return nil
}

// render reads src until it ends or maxFrames frames are collected, and
// stores the result as 16-bit.
func render(src audio.Source, maxFrames int) (*sample.Sample, error) {
	ch := src.Channels()
	frames := make([]int16, 0, min(maxFrames, 1<<16)*ch)
	buf := make([]float32, 1024*ch)

	for len(frames) < maxFrames*ch {
		want := min(len(buf), maxFrames*ch-len(frames))
		n, err := src.ReadSamples(buf[:want])
		for _, x := range buf[:n] {
			frames = append(frames, utils.FloatToPCM[int16](x))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return sample.FromFrames(frames, ch)
}
