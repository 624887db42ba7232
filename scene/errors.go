// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	// ErrInvalidScene wraps every decoding and validation failure.
	ErrInvalidScene = errors.New("invalid scene file")

	// ErrUnsupportedFormat is returned for extensions other than .json, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported scene file format")
)
