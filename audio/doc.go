// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level plumbing shared by the decoders,
// the source loader and the renderer.
//
// It contains:
//   - the Source interface every decoder returns
//   - the Registry mapping file extensions to decoders
//   - Resampler and MonoMixer, used to conform sources on request
//   - Mono and Multichannel, the fully decoded input and output buffers
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. A read returning
// io.EOF ends the stream.
//
// # Loading Sources for Rendering
//
// The renderer needs each source fully decoded, mono, at the scene's sample
// rate. ReadMono enforces that strictly:
//
//	mono, err := audio.ReadMono(src, 0)
//	if errors.Is(err, audio.ErrNotMono) {
//	    // configuration error
//	}
//
// Conform builds a resample -> downmix pipeline instead, for callers that
// accept converted material:
//
//	mono, err := audio.Conform(src, 48000, 0)
//
// # Output Buffers
//
// Multichannel keeps one slice per channel. Interleave converts a frame range
// into the interleaved layout encoders expect:
//
//	buf := make([]float32, 1024*out.NumChannels())
//	n := out.Interleave(buf, 0, 1024)
package audio
