// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only integer PCM supported")
	ErrUnsupportedBitDepth  = errors.New("only 8-bit and 16-bit PCM supported")
	ErrNoSampleData         = errors.New("no sample data to encode")
)
