package fractal

import "github.com/go-gl/mathgl/mgl32"

var (
	paletteLow  = mgl32.Vec3{0, 0, 0.3}
	paletteMid  = mgl32.Vec3{0, 0.5, 1.0}
	paletteHigh = mgl32.Vec3{0.9, 0.9, 0.1}
)

// Shade maps an iteration count to a display color. Interior points
// are black; everything else lands on a two-segment gradient from dark
// blue through medium blue to bright yellow. Both segments evaluate to
// paletteMid at t = 0.5, so the gradient is continuous there.
func Shade(iter int) mgl32.Vec3 {
	if iter == MaxIterations {
		return mgl32.Vec3{}
	}

	t := float32(iter) / float32(MaxIterations)
	if t < 0.5 {
		return lerp(paletteLow, paletteMid, t*2)
	}
	return lerp(paletteMid, paletteHigh, (t-0.5)*2)
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
