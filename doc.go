// SPDX-License-Identifier: EPL-2.0

// Package openmpt loads audio files into instrument samples that can be
// edited while they are being played.
//
// The editing engine lives in the sample package: a Sample keeps its PCM
// frames in a buffer padded with pre-roll, post-roll and two loop lookahead
// regions, so an interpolating mixer can read past any loop boundary
// without checking for it. An Editor applies edits (resize, insert or
// remove frames, reverse, crossfade, DC removal, channel and bit depth
// conversion) and keeps the padding and every playing channel consistent.
//
// This package sits at the decoder boundary and turns any audio.Source
// into such a sample.
//
// # Supported Formats
//
//   - WAV (8/16-bit PCM, smpl loops and cue points) via formats/wav
//   - AIFF (8/16-bit PCM) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
//	f, _ := os.Open("piano.wav")
//	s, err := openmpt.Load(f, "wav", openmpt.Options{})
//	if err != nil {
//	    // Handle error
//	}
//
//	ed, _ := sample.NewEditor(mixer, sample.Config{})
//	ed.Reverse(s, 0, s.Len())
//
// Load picks the decoder by format key; file extensions with or without
// the leading dot work. Decode does the same for a source that is already
// open.
//
// # Loops
//
// Loop points of WAV files come across as they are stored: one loop
// becomes the sample loop, and with two the first is the sustain loop.
// Loops shorter than two frames are dropped.
//
// # Writing
//
// Edited samples are written back with wav.Encode.
package openmpt
