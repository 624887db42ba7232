// SPDX-License-Identifier: EPL-2.0

// Package pcm bridges the integer PCM buffers used by the go-audio codecs
// and the float32 samples used everywhere else.
//
// Source wraps any go-audio style decoder as an audio.Source. Encode feeds a
// rendered audio.Multichannel to any go-audio style encoder in fixed size
// interleaved chunks.
package pcm
