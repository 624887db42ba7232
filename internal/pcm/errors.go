// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnsupportedBitDepth is returned for sample sizes other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrNoFormat is returned when a decoder cannot report its format.
	ErrNoFormat = errors.New("decoder has no format")
)
