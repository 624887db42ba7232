// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/vbaprender/internal/audiotest"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	buf := make([]float32, bufSize)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(257)
	out := drain(t, NewResampler(audiotest.NewSliceSource(48000, in), 48000), 64)

	if len(out) != len(in) {
		t.Fatalf("got %d samples, want %d", len(out), len(in))
	}
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > 1e-6 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestResampler_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from, to  int
		tolerance int
	}{
		{name: "44.1k to 48k", from: 44100, to: 48000, tolerance: 4},
		{name: "48k to 44.1k", from: 48000, to: 44100, tolerance: 4},
		{name: "8k to 48k", from: 8000, to: 48000, tolerance: 8},
		{name: "96k to 16k", from: 96000, to: 16000, tolerance: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// one second of a 440 Hz tone
			out := drain(t, NewResampler(audiotest.NewSineSource(tt.from, 1, tt.from, 440), tt.to), 1000)

			if len(out) < tt.to-tt.tolerance || len(out) > tt.to+tt.tolerance {
				t.Errorf("got %d samples, want %d±%d", len(out), tt.to, tt.tolerance)
			}
			for i, s := range out {
				if s < -1.5 || s > 1.5 {
					t.Fatalf("out[%d] = %v, outside [-1.5, 1.5]", i, s)
				}
			}
		})
	}
}

func TestResampler_ConstantStaysConstant(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(audiotest.NewConstantSource(22050, 2, 2205, 0.5), 48000), 512)

	if len(out)%2 != 0 {
		t.Fatalf("got %d values, want whole stereo frames", len(out))
	}
	for i, s := range out {
		if math.Abs(float64(s-0.5)) > 1e-5 {
			t.Fatalf("out[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestResampler_ShortSources(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(audiotest.NewConstantSource(8000, 1, 1, 0.75), 16000), 16)
	if len(out) == 0 {
		t.Fatal("single-frame source produced no output")
	}
	if out[0] != 0.75 {
		t.Errorf("out[0] = %v, want 0.75", out[0])
	}

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	n, err := r.ReadSamples(make([]float32, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("empty source ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 100), 16000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3 values, stereo) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	if err := NewResampler(src, 16000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkResampler_44kTo48k(b *testing.B) {
	src := audiotest.NewSineSource(44100, 1, math.MaxInt32, 440)
	r := NewResampler(src, 48000)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = r.ReadSamples(buf)
	}
}
