// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Mono is a fully decoded single-channel signal.
type Mono struct {
	SampleRate int
	Samples    []float32
}

// Len returns the number of samples.
func (m Mono) Len() int { return len(m.Samples) }

// Duration of the signal.
func (m Mono) Duration() time.Duration {
	if m.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(m.Samples)) / float64(m.SampleRate) * float64(time.Second))
}

// Multichannel is a planar (one slice per channel) signal. Channel order is
// significant: index c is output channel c.
type Multichannel struct {
	SampleRate int
	Channels   [][]float32
}

// NewMultichannel allocates channels x frames of silence.
func NewMultichannel(sampleRate, channels, frames int) *Multichannel {
	m := &Multichannel{
		SampleRate: sampleRate,
		Channels:   make([][]float32, channels),
	}
	for c := range m.Channels {
		m.Channels[c] = make([]float32, frames)
	}
	return m
}

func (m *Multichannel) NumChannels() int { return len(m.Channels) }

// Frames returns the per-channel length.
func (m *Multichannel) Frames() int {
	if len(m.Channels) == 0 {
		return 0
	}
	return len(m.Channels[0])
}

func (m *Multichannel) Duration() time.Duration {
	if m.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(m.Frames()) / float64(m.SampleRate) * float64(time.Second))
}

// Validate checks the sample rate and that every channel has the same length.
func (m *Multichannel) Validate() error {
	if m.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, m.SampleRate)
	}
	if len(m.Channels) == 0 {
		return ErrNoChannels
	}
	frames := m.Frames()
	for c, ch := range m.Channels {
		if len(ch) != frames {
			return fmt.Errorf("channel %d has %d frames, channel 0 has %d: %w",
				c, len(ch), frames, ErrRaggedChannels)
		}
	}
	return nil
}

// Interleave writes frames [start, start+n) into dst as interleaved samples
// and returns the number of values written. dst must hold n*NumChannels().
func (m *Multichannel) Interleave(dst []float32, start, n int) int {
	channels := len(m.Channels)
	n = min(n, m.Frames()-start)
	if n <= 0 {
		return 0
	}
	for c, ch := range m.Channels {
		src := ch[start : start+n]
		for f, s := range src {
			dst[f*channels+c] = s
		}
	}
	return n * channels
}
