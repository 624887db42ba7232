// SPDX-License-Identifier: EPL-2.0

package geom

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Normalize returns v scaled to unit length. ok is false when v has zero
// (or non-finite) length, in which case the zero vector is returned.
func (v Vec3) Normalize() (Vec3, bool) {
	if !v.IsFinite() {
		return Vec3{}, false
	}
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// Lerp linearly interpolates between a and b, u in [0, 1].
func Lerp(a, b Vec3, u float64) Vec3 {
	return Vec3{
		X: (1-u)*a.X + u*b.X,
		Y: (1-u)*a.Y + u*b.Y,
		Z: (1-u)*a.Z + u*b.Z,
	}
}

// Det3 returns the determinant of the matrix whose rows are a, b and c.
func Det3(a, b, c Vec3) float64 {
	return a.Dot(b.Cross(c))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
