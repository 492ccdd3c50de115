// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jmcabandara/openmpt/sample"
)

// Encode writes the frames of s as a PCM WAV file at the sample's C5
// speed, keeping its bit depth and channel count.
//
// Loop points are not written; the encoder only knows the INFO chunk.
func Encode(w io.WriteSeeker, s *sample.Sample) error {
	if !s.HasData() {
		return ErrNoSampleData
	}

	rate := s.C5Speed
	if rate <= 0 {
		rate = sample.DefaultC5Speed
	}
	bits := s.BitsPerSample()
	channels := s.NumChannels()

	data := s.AppendInts(make([]int, 0, s.Len()*channels))
	if bits == 8 {
		for i := range data {
			data[i] += 128
		}
	}

	enc := wav.NewEncoder(w, rate, bits, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}
