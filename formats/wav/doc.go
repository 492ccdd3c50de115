// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts 8-bit (unsigned) and 16-bit integer PCM in any channel
// count and sample rate:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// The returned source also implements audio.LoopSource. Loops come from
// the smpl chunk, with their inclusive end turned into an exclusive one,
// and alternating loops are reported as ping-pong. Cue chunk positions are
// reported as cues. Readers that cannot seek are buffered in memory first.
//
// # Encoding
//
// Encode writes a sample's frames at its C5 speed, keeping the bit depth
// and channel count:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, s)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the data is not integer PCM
//   - ErrUnsupportedBitDepth: the PCM is neither 8-bit nor 16-bit
//   - ErrUnsupportedWavLayout: the format chunk is unusable
//   - ErrNoSampleData: Encode was given an empty sample
package wav
