// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"

	"github.com/ik5/vbaprender/audio"
)

// assembler owns the output buffers. commit calls for disjoint regions may
// run concurrently.
type assembler struct {
	out    *audio.Multichannel
	frames int
}

func newAssembler(sampleRate, channels, frames int) *assembler {
	return &assembler{
		out:    audio.NewMultichannel(sampleRate, channels, frames),
		frames: frames,
	}
}

// commit adds a block into the output starting at frame start.
func (a *assembler) commit(start int, block [][]float32) {
	for c, src := range block {
		dst := a.out.Channels[c][start : start+len(src)]
		for i, s := range src {
			dst[i] += s
		}
	}
}

// finish checks the shape of the output and hands it over.
func (a *assembler) finish(channels int) (*audio.Multichannel, error) {
	if got := a.out.NumChannels(); got != channels {
		return nil, fmt.Errorf("assembled %d channels, want %d: %w", got, channels, ErrPannerChannels)
	}
	if err := a.out.Validate(); err != nil {
		return nil, fmt.Errorf("assembling output: %w", err)
	}
	if got := a.out.Frames(); got != a.frames {
		return nil, fmt.Errorf("assembled %d frames, want %d: %w", got, a.frames, audio.ErrRaggedChannels)
	}
	return a.out, nil
}
