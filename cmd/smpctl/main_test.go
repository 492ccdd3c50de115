// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/jmcabandara/openmpt/formats/wav"
	"github.com/jmcabandara/openmpt/internal/config"
	"github.com/jmcabandara/openmpt/sample"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	cfg := &config.Config{Env: "production", LogLevel: "info", Workers: 2, RenderRate: 8000}
	return newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &out), &out
}

// writeWAV stores frames as a 16-bit WAV file at 8000 Hz.
func writeWAV(t *testing.T, dir, name string, frames []int16, channels int) string {
	t.Helper()

	s, err := sample.FromFrames(frames, channels)
	require.NoError(t, err)
	s.C5Speed = 8000

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, wav.Encode(f, s))
	return path
}

func ramp(n int) []int16 {
	frames := make([]int16, n)
	for i := range frames {
		frames[i] = int16(i * 100)
	}
	return frames
}

func readBack(t *testing.T, a *app, path string) *sample.Sample {
	t.Helper()

	s, err := a.load(path)
	require.NoError(t, err)
	return s
}

func TestCLI_Parse(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(10), 1)
	out := filepath.Join(dir, "out.wav")

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("smpctl"), kong.Bind(a), kong.Exit(func(int) { t.Fatal("exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"reverse", in, out, "--start", "2", "--end", "6"})
	require.NoError(t, err)
	require.NoError(t, ctx.Run())

	got := readBack(t, a, out).PCM().(*sample.Buffer[int16]).Frames()
	require.Equal(t, []int16{0, 100, 500, 400, 300, 200, 600, 700, 800, 900}, got)
}

func TestCLI_ParseRejectsUnknownBits(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	in := writeWAV(t, t.TempDir(), "in.wav", ramp(4), 1)

	var cli CLI
	parser, err := kong.New(&cli, kong.Bind(a), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"bits", in, "out.wav", "--depth", "24"})
	require.Error(t, err)
}

func TestResizeCmd(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(10), 2)
	out := filepath.Join(dir, "out.wav")

	require.NoError(t, (&ResizeCmd{Files: ioArgs{in, out}, Length: 20}).Run(a))

	s := readBack(t, a, out)
	require.Equal(t, 20, s.Len())
	require.Equal(t, 2, s.NumChannels())
}

func TestInsertSilenceCmd_Appends(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(4), 1)
	out := filepath.Join(dir, "out.wav")

	require.NoError(t, (&InsertSilenceCmd{Files: ioArgs{in, out}, Length: 3, At: -1}).Run(a))

	got := readBack(t, a, out).PCM().(*sample.Buffer[int16]).Frames()
	require.Equal(t, []int16{0, 100, 200, 300, 0, 0, 0}, got)
}

func TestRemoveCmd(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(10), 1)
	out := filepath.Join(dir, "out.wav")

	require.NoError(t, (&RemoveCmd{Files: ioArgs{in, out}, Start: 2, End: 8}).Run(a))
	require.Equal(t, []int16{0, 100, 800, 900},
		readBack(t, a, out).PCM().(*sample.Buffer[int16]).Frames())

	err := (&RemoveCmd{Files: ioArgs{in, out}, Start: 8, End: 2}).Run(a)
	require.ErrorIs(t, err, sample.ErrInvalidRange)
}

func TestInvertCmd_WholeSample(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", []int16{0, 1, -1, 32767}, 1)
	out := filepath.Join(dir, "out.wav")

	require.NoError(t, (&InvertCmd{Files: ioArgs{in, out}}).Run(a))
	require.Equal(t, []int16{-1, -2, 0, -32768},
		readBack(t, a, out).PCM().(*sample.Buffer[int16]).Frames())
}

func TestFormatCommands(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	mono := writeWAV(t, dir, "mono.wav", ramp(8), 1)

	stereo := filepath.Join(dir, "stereo.wav")
	require.NoError(t, (&StereoCmd{Files: ioArgs{mono, stereo}}).Run(a))
	require.Equal(t, 2, readBack(t, a, stereo).NumChannels())

	back := filepath.Join(dir, "back.wav")
	require.NoError(t, (&MonoCmd{Files: ioArgs{stereo, back}, Mode: "left"}).Run(a))
	s := readBack(t, a, back)
	require.Equal(t, 1, s.NumChannels())
	require.Equal(t, ramp(8), s.PCM().(*sample.Buffer[int16]).Frames())

	eight := filepath.Join(dir, "eight.wav")
	require.NoError(t, (&BitsCmd{Files: ioArgs{mono, eight}, Depth: "8"}).Run(a))
	require.Equal(t, 8, readBack(t, a, eight).BitsPerSample())

	err := (&StereoSepCmd{Files: ioArgs{mono, back}, Percent: 50}).Run(a)
	require.ErrorIs(t, err, sample.ErrUnsupported)
}

func TestXFadeCmd_NoLoop(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(100), 1)

	err := (&XFadeCmd{Files: ioArgs{in, filepath.Join(dir, "out.wav")}, Length: 4}).Run(a)
	require.ErrorIs(t, err, sample.ErrUnsupported)
}

func TestParseMonoMode(t *testing.T) {
	t.Parallel()

	m, err := parseMonoMode("split")
	require.NoError(t, err)
	require.Equal(t, sample.MonoSplit, m)

	_, err = parseMonoMode("centre")
	require.Error(t, err)
}

func TestInfoCmd(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	in := writeWAV(t, t.TempDir(), "in.wav", ramp(10), 2)

	require.NoError(t, (&InfoCmd{Paths: []string{in}}).Run(a))
	require.Equal(t, in+": 5 frames, 2 ch, 16 bit, 8000 Hz\n", out.String())
}

func TestDCCmd(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t)
	dir := t.TempDir()
	outDir := t.TempDir()

	var paths []string
	for _, name := range []string{"a.wav", "b.wav", "c.wav"} {
		frames := []int16{1000, 3000, 1000, 3000, 1000, 3000}
		paths = append(paths, writeWAV(t, dir, name, frames, 1))
	}

	require.NoError(t, (&DCCmd{Paths: paths, OutDir: outDir}).Run(a))
	require.Equal(t, "processed 3 files\n", out.String())

	for _, name := range []string{"a.wav", "b.wav", "c.wav"} {
		s := readBack(t, a, filepath.Join(outDir, name))
		require.Equal(t, 6, s.Len())
		frames := s.PCM().(*sample.Buffer[int16]).Frames()
		require.Negative(t, frames[0])
		require.InDelta(t, 0, int(frames[0])+int(frames[1]), 1, "offset should be gone")
	}
}

func TestDCCmd_MissingFile(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	err := (&DCCmd{Paths: []string{filepath.Join(t.TempDir(), "nope.wav")}, OutDir: t.TempDir()}).Run(a)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderCmd(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(100), 1)

	out := filepath.Join(dir, "once.wav")
	require.NoError(t, (&RenderCmd{Files: ioArgs{in, out}, Repeats: 1, Seconds: 1}).Run(a))

	s := readBack(t, a, out)
	require.Equal(t, 100, s.Len())
	require.Equal(t, 8000, s.C5Speed)
	require.Equal(t, ramp(100), s.PCM().(*sample.Buffer[int16]).Frames())
}

func TestRenderCmd_LengthCap(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t)
	dir := t.TempDir()
	in := writeWAV(t, dir, "in.wav", ramp(100), 1)

	out := filepath.Join(dir, "capped.wav")
	require.NoError(t, (&RenderCmd{Files: ioArgs{in, out}, Rate: 4000, Repeats: 1, Seconds: 0.01}).Run(a))
	require.Equal(t, 40, readBack(t, a, out).Len())
}
