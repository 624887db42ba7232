// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrMissingPath     = errors.New("required path is empty")
	ErrInvalidBlock    = errors.New("block_size must be positive")
	ErrInvalidBitDepth = errors.New("bit_depth must be 16, 24 or 32")
	ErrInvalidWorkers  = errors.New("workers must not be negative")
	ErrInvalidWindow   = errors.New("meter_window_s must be positive")
	ErrUnknownPanner   = errors.New("unknown panner")
)
