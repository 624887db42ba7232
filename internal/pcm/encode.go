// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/utils"
)

// chunkFrames is how many frames Encode hands to the encoder per Write.
const chunkFrames = 4096

// Writer is the subset of go-audio encoders (wav, aiff) Encode needs.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
}

// Encode converts m to bitDepth-bit integers and writes it interleaved,
// channel 0 first within each frame. Write is called at least once. The
// caller closes the encoder.
func Encode(w Writer, m *audio.Multichannel, bitDepth int) error {
	if !ValidBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	channels := m.NumChannels()
	frames := m.Frames()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  m.SampleRate,
		},
		Data:           make([]int, min(frames, chunkFrames)*channels),
		SourceBitDepth: bitDepth,
	}
	interleaved := make([]float32, len(buf.Data))

	// encoders emit their header on the first Write
	if frames == 0 {
		if err := w.Write(buf); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		return nil
	}

	for start := 0; start < frames; start += chunkFrames {
		n := m.Interleave(interleaved, start, chunkFrames)

		buf.Data = buf.Data[:n]
		for i, s := range interleaved[:n] {
			buf.Data[i] = utils.FloatToPCM(s, bitDepth)
		}

		if err := w.Write(buf); err != nil {
			return fmt.Errorf("writing frames at %d: %w", start, err)
		}
	}

	return nil
}
