// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/vbaprender/audio"
)

// mockMP3Reader serves little-endian int16 samples at most chunk bytes at
// a time, so frames can be split across reads.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	chunk      int
	err        error
}

func newMockMP3Reader(rate, chunk int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, data: data, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := copy(buf[:min(len(buf), m.chunk)], m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not MP3 data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        newMockMP3Reader(44100, 1024, 16384, -16384, 0, -32768),
		sampleRate: 44100,
	}

	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Fatalf("got %d ch @ %d Hz, want 2 ch @ 44100 Hz", src.Channels(), src.SampleRate())
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	want := []float32{0.5, -0.5, 0, -1}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

// TestSource_SplitFrames delivers 3 bytes per read; every result must still
// be whole stereo frames and no sample may be lost.
func TestSource_SplitFrames(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20)
	for i := range samples {
		samples[i] = int16(i * 1000)
	}
	src := &source{dec: newMockMP3Reader(48000, 3, samples...), sampleRate: 48000}

	var got []float32
	buf := make([]float32, 6)
	for {
		n, err := src.ReadSamples(buf)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() returned %d values, not whole frames", n)
		}
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{err: io.ErrUnexpectedEOF}, sampleRate: 44100}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(odd) error = %v, want audio.ErrInvalidDstSize", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg)
	if _, ok := reg.Get(".MP3"); !ok {
		t.Error("mp3 decoder not registered")
	}
}
