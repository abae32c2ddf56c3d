package gradient

import (
	"math"
	"testing"
)

func TestAngled_Vertical(t *testing.T) {
	// Angle 0: the gradient varies top to bottom only.
	g := &Angled{
		AngleRad: 0,
		Gradient: *NewLinear(Red, Blue),
	}
	size := V(10, 4)

	for x := 0; x < 10; x++ {
		if got := g.Interpolate(V(x, 0), size); got != Red {
			t.Errorf("top row at x=%d = %+v, want Red", x, got)
		}
	}

	mid := g.Interpolate(V(3, 2), size)
	want := RGB{0.5, 0, 0.5}
	if !colorsEqual(mid, want, gradientEpsilon) {
		t.Errorf("middle row = %+v, want %+v", mid, want)
	}
}

func TestAngled_QuarterTurn(t *testing.T) {
	// Angle π/2: the gradient varies left to right.
	g := &Angled{
		AngleRad: math.Pi / 2,
		Gradient: *NewLinear(Red, Blue),
	}
	size := V(10, 5)

	for y := 0; y < 5; y++ {
		if got := g.Interpolate(V(0, y), size); got != Red {
			t.Errorf("left column at y=%d = %+v, want Red", y, got)
		}
	}

	mid := g.Interpolate(V(5, 2), size)
	want := RGB{0.5, 0, 0.5}
	if !colorsEqual(mid, want, gradientEpsilon) {
		t.Errorf("middle column = %+v, want %+v", mid, want)
	}
}

func TestAngled_HalfTurn(t *testing.T) {
	// Angle π: the gradient varies bottom to top.
	g := &Angled{
		AngleRad: math.Pi,
		Gradient: *NewLinear(Red, Blue),
	}
	size := V(10, 4)

	for x := 0; x < 10; x++ {
		if got := g.Interpolate(V(x, 0), size); got != Blue {
			t.Errorf("top row at x=%d = %+v, want Blue", x, got)
		}
	}
}

func TestAngled_ThreeQuarterTurn(t *testing.T) {
	// Angle 3π/2: the gradient varies right to left.
	g := &Angled{
		AngleRad: 3 * math.Pi / 2,
		Gradient: *NewLinear(Red, Blue),
	}
	size := V(10, 5)

	for y := 0; y < 5; y++ {
		if got := g.Interpolate(V(0, y), size); got != Blue {
			t.Errorf("left column at y=%d = %+v, want Blue", y, got)
		}
	}
}

func TestAngled_FullTurnPeriodicity(t *testing.T) {
	// The quadrant boundaries and a representative angle inside each
	// quadrant; shifting any of them by a full turn must not change the
	// result.
	angles := []float64{
		0, math.Pi / 2, math.Pi, 3 * math.Pi / 2,
		math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4,
	}
	size := V(8, 6)

	for _, angle := range angles {
		for _, shift := range []float64{2 * math.Pi, -2 * math.Pi, 4 * math.Pi} {
			g1 := &Angled{AngleRad: angle, Gradient: *NewLinear(Red, Blue)}
			g2 := &Angled{AngleRad: angle + shift, Gradient: *NewLinear(Red, Blue)}

			for y := 0; y < 6; y++ {
				for x := 0; x < 8; x++ {
					pos := V(x, y)
					c1 := g1.Interpolate(pos, size)
					c2 := g2.Interpolate(pos, size)
					if !colorsEqual(c1, c2, 0.001) {
						t.Fatalf("angle %v + %v differs at %+v: %+v vs %+v",
							angle, shift, pos, c1, c2)
					}
				}
			}
		}
	}
}

func TestAngled_Diagonal(t *testing.T) {
	// Angle π/4 on a square: the top-right to bottom-left diagonal is the
	// midline of the gradient.
	g := &Angled{
		AngleRad: math.Pi / 4,
		Gradient: *NewLinear(Black, White),
	}
	size := V(10, 10)

	got := g.Interpolate(V(5, 5), size)
	want := RGB{0.5, 0.5, 0.5}
	if !colorsEqual(got, want, 0.001) {
		t.Errorf("Interpolate(center) = %+v, want %+v", got, want)
	}
}

func BenchmarkAngled_Interpolate(b *testing.B) {
	g := &Angled{
		AngleRad: 5 * math.Pi / 4,
		Gradient: *NewLinear(Red, Blue).AddStop(0.5, Green),
	}
	size := V(80, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Interpolate(V(60, 10), size)
	}
}
