// SPDX-License-Identifier: EPL-2.0

// Package wav reads source signals from WAV files and writes rendered
// multichannel output as WAV.
//
// Both directions go through github.com/go-audio/wav.
//
// # Decoding
//
// The Decoder accepts integer PCM (format tag 1 or WAVE_FORMAT_EXTENSIBLE)
// at 16, 24 or 32 bits, any channel count and any sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedEncoding, ErrUnsupportedBitDepth ...
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are returned interleaved as float32 in [-1, 1). Inputs that are
// not an io.ReadSeeker are buffered in memory first, as the go-audio
// decoder needs to seek between chunks.
//
// # Encoding
//
// WriteMultichannel writes an audio.Multichannel with one WAV channel per
// speaker, in speaker order:
//
//	out, _ := os.Create("render.wav")
//	defer out.Close()
//	err := wav.WriteMultichannel(out, rendered, 24)
//
// The writer seeks back to patch the header once all frames are written, so
// it needs an io.WriteSeeker such as *os.File.
package wav
