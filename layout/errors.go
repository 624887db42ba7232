// SPDX-License-Identifier: EPL-2.0

package layout

import "errors"

var (
	ErrEmptyLayout      = errors.New("speaker layout is empty")
	ErrChannelGap       = errors.New("speaker channel indices are not contiguous from 0")
	ErrDuplicateChannel = errors.New("speaker channel index used twice")
	ErrInvalidSpeaker   = errors.New("speaker has non-finite position")
)
