// SPDX-License-Identifier: EPL-2.0

package utils

// CatmullRom evaluates the Catmull-Rom spline through the four samples of w
// at x in [0, 1], where x = 0 is w[1] and x = 1 is w[2]. w[0] and w[3] only
// shape the curve.
func CatmullRom(w [4]float32, x float32) float32 {
	a := (3*(w[1]-w[2]) + w[3] - w[0]) / 2
	b := w[0] - 2.5*w[1] + 2*w[2] - w[3]/2
	c := (w[2] - w[0]) / 2
	return ((a*x+b)*x+c)*x + w[1]
}
