// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if !supportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	src, err := pcm.NewSource(dec, bitDepth)
	if errors.Is(err, pcm.ErrNoFormat) {
		return nil, ErrUnsupportedAiffLayout
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

func supportedBitDepth(bitDepth int) bool {
	return bitDepth != 8 && pcm.ValidBitDepth(bitDepth)
}

// Register adds the AIFF decoder to reg under "aiff", "aif" and "aifc".
func Register(reg *audio.Registry) {
	for _, ext := range []string{"aiff", "aif", "aifc"} {
		reg.Register(ext, Decoder{})
	}
}
