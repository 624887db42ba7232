// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/internal/pcm"
)

// WriteMultichannel writes m to w as a big-endian PCM AIFF file of
// bitDepth bits (16, 24 or 32), one AIFF channel per channel of m.
func WriteMultichannel(w io.WriteSeeker, m *audio.Multichannel, bitDepth int) error {
	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := aiff.NewEncoder(w, m.SampleRate, bitDepth, m.NumChannels())
	if err := pcm.Encode(enc, m, bitDepth); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}
	return nil
}
