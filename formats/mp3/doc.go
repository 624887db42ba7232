// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every source from this package
// reports two channels even for mono files. Use audio.Conform (or the
// sources package in conform mode) to fold it back to mono:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	mono, err := audio.Conform(src, 48000, 0)
//
// ReadSamples only ever returns whole stereo frames.
package mp3
