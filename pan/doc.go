// SPDX-License-Identifier: EPL-2.0

// Package pan contains panning laws: algorithms that, given a speaker layout
// and a target direction, decide which speakers receive a mono signal and in
// what proportion.
//
// # The Panner Port
//
// The render engine only depends on the Panner interface:
//
//	type Panner interface {
//	    Channels() int
//	    Apply(dir geom.Vec3, block []float32, out [][]float32) error
//	}
//
// Apply adds gain-weighted copies of block into out; it never clears out.
// That lets several sources accumulate into the same per-channel buffers
// within one processing block. Every law here is linear in amplitude, so
// rendering two sources separately and summing equals rendering their sum.
//
// # Angle Units
//
// Layouts carry azimuth and elevation in either radians or degrees. The
// constructors convert them exactly once, check that the converted values
// lie in a valid range and store unit vectors. A layout whose angles were
// written in degrees but declared as radians (or the other way round) fails
// construction with ErrAngleRange instead of rendering silence.
//
// # Laws
//
//   - VBAP: vector base amplitude panning. Speaker triplets in 3D, adjacent
//     pairs for horizontal-only layouts, a single speaker trivially.
//   - Nearest: all energy to the speaker closest to the direction.
//
// Use New to pick a law by name.
package pan
