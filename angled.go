package gradient

import "math"

// Angled is a linear gradient applied to a surface at an angle.
//
// Example:
//
//	diag := &gradient.Angled{
//	    AngleRad: math.Pi / 4,
//	    Gradient: *gradient.NewLinear(gradient.Red, gradient.Blue),
//	}
type Angled struct {
	// Angle of the gradient in radians.
	//
	// 0 = vertical; increasing angles rotate the direction clockwise.
	// Any value is accepted, the angle is normalized into [0, 2π).
	AngleRad float64

	// Gradient to apply following the gradient angle.
	Gradient Linear
}

// gradientMarker implements the sealed Interpolator interface.
func (Angled) gradientMarker() {}

// Interpolate returns the color at pos on a surface of the given size.
// Implements the Interpolator interface.
func (g *Angled) Interpolate(pos, size Vec) RGB {
	angle := g.AngleRad

	// Normalize the angle into [0, 2π).
	for angle < 0 {
		angle += 2 * math.Pi
	}
	for angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}

	// Fold the other three quadrants onto [0, π/2) using the gradient's
	// 90-degree rotation symmetry. Comparisons are strict so each boundary
	// angle routes into the later branch.
	switch {
	case angle < math.Pi/2:
		// Already in the first quadrant.
	case angle < math.Pi:
		pos = Vec{X: size.Y - pos.Y, Y: pos.X}
		size = size.Swap()
		angle -= math.Pi / 2
	case angle < 3*math.Pi/2:
		pos = size.Sub(pos)
		angle -= math.Pi
	default:
		pos = Vec{X: pos.Y, Y: size.X - pos.X}
		size = size.Swap()
		angle -= 3 * math.Pi / 2
	}

	d := pos.Point().Rotate(angle).Y
	max := size.Point().Rotate(angle).Y

	return g.Gradient.Interpolate(d / max)
}
