// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding on top of
// github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Reads are trimmed to whole frames, so a frame is never split across two
// ReadSamples calls. The bit depth is reported as 16, the resolution a
// decoded stream is stored at when loaded as a sample.
//
// When the input can seek, the source's Frames method reports the stream
// length so the loader can size the sample buffer up front.
//
// # Limitations
//
// Vorbis writing is not supported, and LOOPSTART/LOOPLENGTH comments are
// not read.
package vorbis
