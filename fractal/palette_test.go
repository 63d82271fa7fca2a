package fractal

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShadeInterior(t *testing.T) {
	if got := Shade(MaxIterations); got != (mgl32.Vec3{}) {
		t.Errorf("interior color = %v, want black", got)
	}
}

func TestShadeEndpoints(t *testing.T) {
	if got := Shade(0); got != (mgl32.Vec3{0, 0, 0.3}) {
		t.Errorf("Shade(0) = %v, want (0, 0, 0.3)", got)
	}

	got := Shade(MaxIterations - 1)
	want := mgl32.Vec3{0.9, 0.9, 0.1}
	for i := 0; i < 3; i++ {
		// t stops just short of 1; each segment spans half the iteration
		// range, so the last count sits one double-width step from the end.
		if math.Abs(float64(got[i]-want[i])) > 2.0/MaxIterations {
			t.Errorf("Shade(max-1) = %v, want ≈ %v", got, want)
		}
	}
}

func TestShadeContinuousAtMidpoint(t *testing.T) {
	// Both segment formulas evaluated at t = 0.5 must agree.
	low := lerp(paletteLow, paletteMid, 0.5*2)
	high := lerp(paletteMid, paletteHigh, (0.5-0.5)*2)

	if low != high {
		t.Errorf("segments disagree at t=0.5: %v vs %v", low, high)
	}
	if high != (mgl32.Vec3{0, 0.5, 1.0}) {
		t.Errorf("midpoint color = %v, want (0, 0.5, 1.0)", high)
	}

	// The iteration count that lands on the boundary takes the second
	// segment and must still produce the shared midpoint color.
	if got := Shade(MaxIterations / 2); got != (mgl32.Vec3{0, 0.5, 1.0}) {
		t.Errorf("Shade(max/2) = %v, want (0, 0.5, 1.0)", got)
	}
}

func TestShadeMonotoneSegments(t *testing.T) {
	// Green and red never decrease as iteration count rises below the
	// interior cutoff; blue rises then falls.
	prev := Shade(0)
	for iter := 1; iter < MaxIterations; iter++ {
		c := Shade(iter)
		if c[0] < prev[0] || c[1] < prev[1] {
			t.Fatalf("red/green dipped at iter %v: %v -> %v", iter, prev, c)
		}
		prev = c
	}
}
