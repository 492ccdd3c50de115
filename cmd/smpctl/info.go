// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/jmcabandara/openmpt/sample"
)

// InfoCmd prints what smpctl sees in each file.
type InfoCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Samples to inspect"`
}

func (c *InfoCmd) Run(a *app) error {
	for _, p := range c.Paths {
		s, err := a.load(p)
		if err != nil {
			return err
		}
		printInfo(a, p, s)
	}
	return nil
}

func printInfo(a *app, path string, s *sample.Sample) {
	fmt.Fprintf(a.out, "%s: %d frames, %d ch, %d bit, %d Hz\n",
		path, s.Len(), s.NumChannels(), s.BitsPerSample(), s.C5Speed)
	if s.LoopActive() {
		fmt.Fprintf(a.out, "  loop:    [%d, %d)%s\n", s.LoopStart, s.LoopEnd,
			pingPong(s.Flags.Has(sample.FlagPingPongLoop)))
	}
	if s.SustainActive() {
		fmt.Fprintf(a.out, "  sustain: [%d, %d)%s\n", s.SustainStart, s.SustainEnd,
			pingPong(s.Flags.Has(sample.FlagPingPongSustain)))
	}
	if len(s.Cues) > 0 {
		fmt.Fprintf(a.out, "  cues:    %v\n", s.Cues)
	}
}

func pingPong(on bool) string {
	if on {
		return " ping-pong"
	}
	return ""
}
