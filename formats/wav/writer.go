// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/internal/pcm"
)

// WriteMultichannel writes m to w as an integer PCM WAV file of bitDepth
// bits (16, 24 or 32). Channel c of m becomes channel c of the file.
// Samples outside [-1, 1] are clamped.
func WriteMultichannel(w io.WriteSeeker, m *audio.Multichannel, bitDepth int) error {
	if bitDepth == 8 || !pcm.ValidBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := wav.NewEncoder(w, m.SampleRate, bitDepth, m.NumChannels(), formatPCM)
	if err := pcm.Encode(enc, m, bitDepth); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%w", err)
	}

	// Close patches the RIFF and data sizes into the header
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
