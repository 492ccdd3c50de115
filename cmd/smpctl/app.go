// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmcabandara/openmpt"
	"github.com/jmcabandara/openmpt/formats/wav"
	"github.com/jmcabandara/openmpt/internal/config"
	"github.com/jmcabandara/openmpt/sample"
)

// app is the state shared by every command.
type app struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func newApp(cfg *config.Config, log *slog.Logger, out io.Writer) *app {
	return &app{cfg: cfg, log: log, out: out}
}

func (a *app) loadOptions() openmpt.Options {
	return openmpt.Options{
		MaxLength:      a.cfg.MaxLength,
		ITPingPongMode: a.cfg.ITPingPong,
	}
}

// load decodes the file at path, picking the decoder by its extension.
func (a *app) load(path string) (*sample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := openmpt.Load(f, filepath.Ext(path), a.loadOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Filename = filepath.Base(path)
	a.log.Debug("loaded sample", "path", path, "frames", s.Len(),
		"channels", s.NumChannels(), "bits", s.BitsPerSample())
	return s, nil
}

// save writes s to path as WAV.
func (a *app) save(path string, s *sample.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, s); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Debug("saved sample", "path", path, "frames", s.Len())
	return nil
}

func (a *app) editor() (*sample.Editor, error) {
	cfg := a.cfg.EditorConfig()
	cfg.Logger = a.log
	return sample.NewEditor(nil, cfg)
}

// edit loads in, applies fn and saves the result to out.
func (a *app) edit(files ioArgs, op string, fn func(ed *sample.Editor, s *sample.Sample) error) error {
	start := time.Now()

	s, err := a.load(files.In)
	if err != nil {
		return err
	}
	ed, err := a.editor()
	if err != nil {
		return err
	}
	if err := fn(ed, s); err != nil {
		return fmt.Errorf("%s %s: %w", op, files.In, err)
	}
	if err := a.save(files.Out, s); err != nil {
		return err
	}

	a.log.Info("edited sample", "op", op, "in", files.In, "out", files.Out,
		"frames", s.Len(), "duration", time.Since(start))
	return nil
}

// ioArgs are the positional arguments of every single-file edit.
type ioArgs struct {
	In  string `arg:"" type:"existingfile" help:"Input sample"`
	Out string `arg:"" help:"Output WAV file"`
}

// span is an optional frame range; an end of zero means the end of the
// sample.
type span struct {
	Start int `default:"0" help:"First frame of the range"`
	End   int `default:"0" help:"Frame past the range (0 for the end of the sample)"`
}

func (r span) resolve(s *sample.Sample) (int, int) {
	if r.End <= 0 {
		return r.Start, s.Len()
	}
	return r.Start, r.End
}
