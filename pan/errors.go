// SPDX-License-Identifier: EPL-2.0

package pan

import "errors"

var (
	ErrAngleRange       = errors.New("speaker angle out of range for the declared unit")
	ErrDegenerateLayout = errors.New("speaker layout has no usable speaker pairs or triplets")
	ErrNoSpeakerSet     = errors.New("no speaker set encloses the direction")
	ErrChannelMismatch  = errors.New("output channel count does not match the layout")
	ErrBlockTooLong     = errors.New("output buffer shorter than sample block")
	ErrUnknownLaw       = errors.New("unknown panning law")
)
