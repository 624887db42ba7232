// SPDX-License-Identifier: EPL-2.0

package geom

import "errors"

var (
	ErrUnknownAngleUnit = errors.New("unknown angle unit")
)
