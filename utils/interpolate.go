// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate returns the point at fraction x (0 <= x <= 1) on the
// straight line between y0 and y1.
func LinearInterpolate(y0, y1, x float32) float32 {
	return y0 + (y1-y0)*x
}

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// values at fraction x (0 <= x <= 1) between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c3 := 0.5*(y3-y0) + 1.5*(y1-y2)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c1 := 0.5 * (y2 - y0)

	return ((c3*x+c2)*x+c1)*x + y1
}
