// SPDX-License-Identifier: EPL-2.0

// Package utils holds PCM sample conversions and interpolation helpers.
package utils

// CatmullRom interpolates between w[1] and w[2] at fraction x in [0,1],
// using w[0] and w[3] as outer control points.
func CatmullRom(w [4]float32, x float32) float32 {
	a := 0.5 * (3*(w[1]-w[2]) + w[3] - w[0])
	b := w[0] - 2.5*w[1] + 2*w[2] - 0.5*w[3]
	c := 0.5 * (w[2] - w[0])
	return ((a*x+b)*x+c)*x + w[1]
}
