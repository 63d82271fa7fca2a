// Package fractal holds the escape-time kernel and its palette, both
// as the GLSL program run per fragment and as a Go mirror of the same
// math. The two must agree; the Go side is what tests and snapshot
// export run against.
package fractal

// MaxIterations is the iteration budget. A point that has not escaped
// after this many steps is treated as a member of the set. The GLSL
// kernel carries the same constant; it is never passed as a uniform.
const MaxIterations = 256

// EscapeTime iterates z ← z² + c from z = 0 and returns the index of
// the first check where |z|² exceeds 4, or MaxIterations if none does.
// The bailout test is strictly greater-than and runs before each
// update, so |z|² of exactly 4 survives that check.
func EscapeTime(cr, ci float64) int {
	var zr, zi float64
	for i := 0; i < MaxIterations; i++ {
		if zr*zr+zi*zi > 4.0 {
			return i
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return MaxIterations
}
