// Package cordic derives the constant tables used by a CORDIC rotation
// pipeline: the per-stage arctan step angles and the cumulative gain.
package cordic

import "math"

// Generate computes the arctan step-angle table and the gain constant for a
// CORDIC rotator with the given number of pipeline stages.
//
// angles[i] = atan(2^-i), strictly decreasing from pi/4, all in (0, pi/4].
// The gain K is the running product of 1/sqrt(1+2^(-2i)), accumulated left to
// right from 1.0; it settles near 0.6073 within about ten stages. Iteration
// counts <= 0 yield an empty table and K = 1.
func Generate(iterations int) (angles []float64, gain float64) {
	if iterations < 0 {
		iterations = 0
	}
	angles = make([]float64, iterations)
	gain = 1.0
	for i := range angles {
		step := math.Ldexp(1, -i)
		angles[i] = math.Atan(step)
		gain *= 1.0 / math.Sqrt(1.0+step*step)
	}
	return angles, gain
}
