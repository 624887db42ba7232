// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/vbaprender/audio"
)

// mockOggVorbisReader returns values like oggvorbis.Reader: whole frames,
// counted as values.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	n := copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += n
	return n, nil
}

func newSource(m *mockOggVorbisReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		bufSize  int
	}{
		{name: "mono", channels: 1, samples: []float32{0.1, 0.2, 0.3, 0.4, 0.5}, bufSize: 2},
		{name: "stereo", channels: 2, samples: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, bufSize: 4},
		{name: "5.1", channels: 6, samples: make([]float32, 6*7), bufSize: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: tt.channels, samples: tt.samples})

			var got []float32
			buf := make([]float32, tt.bufSize)
			for {
				n, err := src.ReadSamples(buf)
				got = append(got, buf[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
			}

			if len(got) != len(tt.samples) {
				t.Fatalf("read %d values, want %d", len(got), len(tt.samples))
			}
			for i := range got {
				if got[i] != tt.samples[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.samples[i])
				}
			}
		})
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, err: io.ErrUnexpectedEOF})
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3 values, stereo) error = %v, want audio.ErrInvalidDstSize", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg)
	if _, ok := reg.Get("ogg"); !ok {
		t.Error("ogg decoder not registered")
	}
}
