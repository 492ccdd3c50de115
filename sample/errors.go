// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	// ErrNoData indicates the sample holds no frames.
	ErrNoData = errors.New("sample has no data")

	// ErrInvalidRange indicates a frame range outside the sample or of zero width.
	ErrInvalidRange = errors.New("invalid sample range")

	// ErrSampleTooLong indicates storage for the requested length could not be allocated.
	ErrSampleTooLong = errors.New("sample length exceeds maximum")

	// ErrUnsupported indicates the operation does not apply to the sample's
	// format or loop configuration.
	ErrUnsupported = errors.New("operation not supported for this sample")
)
