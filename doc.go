// Package gradient evaluates continuous color gradients over discrete 2D
// surfaces such as terminal cell grids or pixel buffers.
//
// # Overview
//
// The package is built around a single scalar primitive, [Linear], which maps
// a position in [0, 1] to a color by interpolating between ordered control
// points. The 2D variants [Radial], [Angled] and [Bilinear] reduce an integer
// (position, size) query on a surface to one or more scalar positions, feed
// them through Linear gradients and combine the results. All three variants
// implement the [Interpolator] interface, so callers can treat any of them
// uniformly.
//
// # Quick Start
//
//	import "github.com/gogpu/gradient"
//
//	// A linear ramp from black through red to white.
//	g := gradient.NewLinear(gradient.Black, gradient.White).
//	    AddStop(0.5, gradient.Red)
//
//	// Apply it radially from the center of an 80x24 surface.
//	radial := &gradient.Radial{
//	    Center:   gradient.Pt(0.5, 0.5),
//	    Gradient: *g,
//	}
//	c := radial.Interpolate(gradient.V(10, 5), gradient.V(80, 24))
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; for [Angled], 0 is vertical and increasing angles
//     rotate the gradient direction clockwise
//
// # Concurrency
//
// Gradient values are immutable once constructed, and Interpolate performs no
// I/O and mutates no shared state. Any number of goroutines may query the
// same gradient concurrently without synchronization.
package gradient
