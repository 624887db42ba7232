// SPDX-License-Identifier: EPL-2.0

// Package trajectory describes how sources move over time and resolves a
// source's direction at an arbitrary instant.
//
// A Trajectory is an ordered list of Keyframes. Directions between two
// keyframes are linearly interpolated component-wise and then normalized:
//
//	tr := trajectory.Trajectory{
//	    {Time: 0, Dir: geom.Vec3{X: 1}},
//	    {Time: 1, Dir: geom.Vec3{Y: 1}},
//	}
//	dir, err := tr.DirectionAt(0.5) // (√½, √½, 0)
//
// # Out-of-range Queries
//
// Times before the first keyframe or after the last one are clamped: the
// direction of the nearest boundary keyframe is returned. A query never reads
// an uninitialised pair and never returns a zero vector.
//
// # Errors
//
// Two consecutive keyframes sharing a timestamp define a zero-length interval;
// interpolating inside one returns ErrDegenerateInterval instead of dividing
// by zero. Validate reports such problems up front so that a render fails
// before any audio is produced.
package trajectory
