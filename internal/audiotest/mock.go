// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio.Source implementations and
// signal builders for tests.
package audiotest

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// MockSource generates frames from a Waveform.
// It implements audio.Source without importing it to avoid cycles.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       Waveform
	closed     bool
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource generates a sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate)))
	})
}

// NewSliceSource plays back mono samples verbatim.
func NewSliceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(i, _ int) float32 { return samples[i] })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds to the first frame.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// Ramp returns n samples rising linearly from 0 towards 1.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// SeekBuffer is an in-memory io.WriteSeeker for encoders that patch their
// headers on Close.
type SeekBuffer struct {
	buf []byte
	pos int
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.buf) {
		b.buf = append(b.buf, make([]byte, end-len(b.buf))...)
	}
	n := copy(b.buf[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	b.pos = int(pos)
	return pos, nil
}

// Bytes returns everything written so far.
func (b *SeekBuffer) Bytes() []byte { return b.buf }
