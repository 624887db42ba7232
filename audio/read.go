// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBufferSize is the read size used when callers pass 0.
const DefaultBufferSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// ReadMono drains a single-channel source into memory.
//
// A source with more than one channel is rejected with ErrNotMono; use
// Conform to downmix instead.
func ReadMono(src Source, bufferSize int) (Mono, error) {
	if src.Channels() != 1 {
		return Mono{}, fmt.Errorf("%d channels: %w", src.Channels(), ErrNotMono)
	}
	return collect(src, bufferSize)
}

// Conform converts src to mono at targetRate and reads it into memory.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to targetRate using cubic interpolation
//     (skipped when the rates already match)
//  2. Converts the result to mono by averaging channels
//  3. Reads all samples from the pipeline
func Conform(src Source, targetRate, bufferSize int) (Mono, error) {
	if targetRate <= 0 {
		return Mono{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, targetRate)
	}

	pipeline := src
	if src.SampleRate() != targetRate {
		pipeline = NewResampler(pipeline, targetRate)
	}
	if pipeline.Channels() != 1 {
		pipeline = NewMonoMixer(pipeline)
	}
	return collect(pipeline, bufferSize)
}

func collect(src Source, bufferSize int) (Mono, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if src.SampleRate() <= 0 {
		return Mono{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}

	out := Mono{
		SampleRate: src.SampleRate(),
		Samples:    make([]float32, 0, src.SampleRate()), // ~1 second to start with
	}
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Mono{}, fmt.Errorf("reading samples: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return Mono{}, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
		}
	}

	return out, nil
}
