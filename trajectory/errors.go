// SPDX-License-Identifier: EPL-2.0

package trajectory

import "errors"

var (
	ErrNoKeyframes        = errors.New("trajectory has no keyframes")
	ErrUnorderedKeyframes = errors.New("keyframe times are not non-decreasing")
	ErrDegenerateInterval = errors.New("zero-length keyframe interval")
	ErrZeroDirection      = errors.New("direction has zero or non-finite length")
	ErrInvalidTime        = errors.New("time is not a finite number")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrNoSources          = errors.New("trajectory set has no sources")
)
