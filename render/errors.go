// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrMissingSource      = errors.New("no audio for source")
	ErrSampleRateMismatch = errors.New("source sample rate differs from the trajectory set")
	ErrInvalidBlockSize   = errors.New("block size must be positive")
	ErrPannerChannels     = errors.New("panner channel count differs from the layout")
)
