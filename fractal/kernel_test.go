package fractal

import "testing"

func TestEscapeTimeBounded(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-0.5, 0},
		{2, 0},
		{-2, 0},
		{0.3, 0.5},
		{1e6, -1e6},
		{-1.401155, 0},
	}

	for _, p := range points {
		iter := EscapeTime(p[0], p[1])
		if iter < 0 || iter > MaxIterations {
			t.Errorf("EscapeTime(%v, %v) = %v out of range", p[0], p[1], iter)
		}
	}
}

func TestEscapeTimeFixedPoints(t *testing.T) {
	if got := EscapeTime(0, 0); got != MaxIterations {
		t.Errorf("origin: got %v, want %v", got, MaxIterations)
	}

	// c = (2,0): the first check sees z = 0, the second sees z = (2,0)
	// with |z|² exactly 4, which the strict > lets through, so the
	// orbit only bails at the third check with z = (6,0).
	if got := EscapeTime(2, 0); got != 2 {
		t.Errorf("c=(2,0): got %v, want 2", got)
	}

	// c = (3,0) diverges immediately; z = (3,0) fails the second check.
	if got := EscapeTime(3, 0); got != 1 {
		t.Errorf("c=(3,0): got %v, want 1", got)
	}

	// -1 cycles between -1 and 0 forever.
	if got := EscapeTime(-1, 0); got != MaxIterations {
		t.Errorf("c=(-1,0): got %v, want %v", got, MaxIterations)
	}
}

func TestEscapeTimeStrictBailout(t *testing.T) {
	// |z|² equal to exactly 4.0 must not bail on that check.
	// c = (-2,0): z walks 0 → -2 → 2 → 2 → ... with |z|² pinned at 4,
	// so the orbit never escapes.
	if got := EscapeTime(-2, 0); got != MaxIterations {
		t.Errorf("c=(-2,0): got %v, want %v", got, MaxIterations)
	}
}
