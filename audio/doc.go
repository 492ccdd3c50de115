// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of sample handling: the Source
// interface decoders produce, a format registry, and adapters that turn a
// sample buffer back into a stream.
//
// # Source Interface
//
// Every decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Containers that carry loop points or cue markers (WAV smpl/cue chunks,
// AIFF markers) additionally implement LoopSource, so the loader can carry
// them into the sample's loop fields.
//
// # Rendering Samples
//
// SampleSource walks a sample in playback order, following its loop or
// sustain loop, and resamples it from the sample's C5 speed with cubic
// interpolation:
//
//	src := audio.NewSampleSource(s, 44100, sample.CursorOptions{Repeats: 4})
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Channel Folding
//
// Samples hold at most two channels. Downmixer folds wider streams by
// averaging even channels into the left and odd channels into the right:
//
//	stereo := audio.NewDownmixer(source, 2)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV")
//
// Keys are case-insensitive and a leading dot is ignored, so file
// extensions can be used directly.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. ReadSamples returns io.EOF once the
// stream is finished, possibly together with the final samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
