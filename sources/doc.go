// SPDX-License-Identifier: EPL-2.0

// Package sources reads the mono signal of every source in a trajectory
// set from a directory.
//
// The signal of source id lives in <dir>/<id>.<ext>, with extensions tried
// in the order wav, aif, aiff, ogg, mp3. By default a source must already be
// mono and at the set's sample rate; WithConform downmixes and resamples
// instead.
package sources
