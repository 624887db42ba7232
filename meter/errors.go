// SPDX-License-Identifier: EPL-2.0

package meter

import "errors"

var ErrInvalidWindow = errors.New("meter window must be positive")
