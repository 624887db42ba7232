// SPDX-License-Identifier: EPL-2.0

// Package geom holds the small amount of 3D vector math shared by the
// trajectory interpolator, the speaker layout and the panning laws.
//
// # Coordinate Convention
//
// Directions are right-handed Cartesian vectors relative to the centre of the
// listening volume:
//
//	x = cos(el) * cos(az)
//	y = cos(el) * sin(az)
//	z = sin(el)
//
// so azimuth 0 points along +x, azimuth π/2 (90°) along +y, and positive
// elevation points up (+z).
//
// # Angle Units
//
// Layout files in the wild use either radians or degrees. AngleUnit records
// which one a value is expressed in; ToRadians is the only conversion point.
package geom
