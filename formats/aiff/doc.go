// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source, so they can be loaded as instrument samples.
//
// # Supported Formats
//
//   - PCM 8-bit and 16-bit (signed, big-endian on disk)
//   - Any channel count; the loader folds more than two channels
//   - Any sample rate, which becomes the sample's C5 speed
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Readers that cannot seek are buffered in memory first.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The PCM is neither 8-bit nor 16-bit
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// # Limitations
//
// AIFF writing is not supported, and MARK/INST loop chunks are not read.
// AIFF-C compressed files are rejected.
package aiff
