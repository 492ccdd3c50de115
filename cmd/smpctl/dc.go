// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DCCmd removes DC offset from many files concurrently.
type DCCmd struct {
	Paths  []string `arg:"" type:"existingfile" help:"Samples to process"`
	OutDir string   `required:"" type:"existingdir" help:"Directory for the processed WAV files"`
}

func (c *DCCmd) Run(a *app) error {
	return c.run(context.Background(), a)
}

func (c *DCCmd) run(ctx context.Context, a *app) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)

	for _, p := range c.Paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := a.load(p)
			if err != nil {
				return err
			}
			ed, err := a.editor()
			if err != nil {
				return err
			}
			offset, err := ed.RemoveDCOffset(s, 0, 0)
			if err != nil {
				return fmt.Errorf("remove dc offset %s: %w", p, err)
			}

			out := filepath.Join(c.OutDir, strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))+".wav")
			if err := a.save(out, s); err != nil {
				return err
			}
			a.log.Info("removed dc offset", "in", p, "out", out, "offset", offset)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "processed %d files\n", len(c.Paths))
	return err
}
