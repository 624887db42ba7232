// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	// go-audio reports 8-bit samples unsigned
	bitDepth := int(dec.BitDepth)
	if bitDepth == 8 || !pcm.ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	src, err := pcm.NewSource(dec, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

// Register adds the WAV decoder to reg under "wav" and "wave".
func Register(reg *audio.Registry) {
	reg.Register("wav", Decoder{})
	reg.Register("wave", Decoder{})
}
