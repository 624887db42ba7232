// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples pass through without
// conversion. dst passed to ReadSamples must hold whole frames.
package vorbis
