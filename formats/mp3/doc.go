// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Bit depth: reported as 16, the decoder's output resolution
//   - Sample rate: that of the MP3 stream
//
// The source also has a Frames method giving the decoded length, which the
// loader uses to size the sample buffer up front.
//
// # Limitations
//
// MP3 writing is not supported. Encoder delay and padding are not trimmed,
// so loops taken from MP3 sources rarely line up exactly.
package mp3
