package gradient

import "math"

// Radial is a radial gradient: the color depends on the distance from a
// center point, normalized by the distance from the center to the farthest
// corner of the surface.
//
// Example:
//
//	r := &gradient.Radial{
//	    Center:   gradient.Pt(0.5, 0.5),
//	    Gradient: *gradient.NewLinear(gradient.White, gradient.Black),
//	}
type Radial struct {
	// Center of the gradient, as a ratio of the total size.
	//
	// Each component should be in [0, 1].
	Center Point

	// Gradient to apply according to the distance from the center.
	Gradient Linear
}

// gradientMarker implements the sealed Interpolator interface.
func (Radial) gradientMarker() {}

// Interpolate returns the color at pos on a surface of the given size.
// Implements the Interpolator interface.
//
// The surface must not be zero-sized on either axis; validating the size is
// the caller's responsibility.
func (g *Radial) Interpolate(pos, size Vec) RGB {
	sizeF := size.Point()

	// Distance from the center to the farthest corner. Per axis the farthest
	// edge is at ratio 0 or 1, whichever is further from the center ratio.
	toCorner := Pt(
		0.5+math.Abs(g.Center.X-0.5),
		0.5+math.Abs(g.Center.Y-0.5),
	).Mul(sizeF).Vec()
	maxDistance := math.Sqrt(float64(toCorner.SqNorm()))

	center := g.Center.Mul(sizeF).Vec()
	dist := math.Sqrt(float64(center.Sub(pos).SqNorm()))

	return g.Gradient.Interpolate(dist / maxDistance)
}
