// SPDX-License-Identifier: EPL-2.0

package sources

import "errors"

// ErrNoDecoder is returned when a file's extension has no registered decoder.
// Missing files and rate mismatches use render.ErrMissingSource and
// render.ErrSampleRateMismatch.
var ErrNoDecoder = errors.New("no decoder registered for extension")
