// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// # Decoding AIFF Files
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth ...
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// 16, 24 and 32-bit PCM is supported at any sample rate and channel count.
// Samples are returned interleaved as float32 in [-1, 1).
//
// # Writing AIFF Files
//
// WriteMultichannel stores a rendered audio.Multichannel, one channel per
// speaker. The encoder patches its chunk sizes on close and so needs an
// io.WriteSeeker.
package aiff
