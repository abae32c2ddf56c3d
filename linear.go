package gradient

import (
	"fmt"
	"iter"
)

// Stop represents a color at a specific position in a gradient.
type Stop struct {
	Pos   float64 // Position in gradient, 0.0 to 1.0
	Color RGB     // Color at this position
}

// Linear is a linear gradient interpolating between positions 0 and 1.
//
// Example:
//
//	g := gradient.NewLinear(gradient.Black, gradient.White).
//	    AddStop(0.5, gradient.Red)
//	c := g.Interpolate(0.25)
type Linear struct {
	// Start is the color at position 0.
	Start RGB

	// Middle holds the intermediate (position, color) stops of the gradient.
	//
	// Positions should be in [0, 1] and sorted by ascending position.
	Middle []Stop

	// End is the color at position 1.
	End RGB
}

// NewLinear creates a simple gradient with only start and end colors.
func NewLinear(start, end RGB) *Linear {
	return &Linear{Start: start, End: end}
}

// AddStop adds an intermediate stop at the specified position.
// Positions should be in [0, 1] and added in ascending order.
// Returns the gradient for method chaining.
func (g *Linear) AddStop(pos float64, c RGB) *Linear {
	g.Middle = append(g.Middle, Stop{Pos: pos, Color: c})
	return g
}

// Interpolate returns the color for the given position.
//
// Positions at or below 0 return Start exactly and positions at or above 1
// return End exactly. Interpolate panics with an *InvalidPositionError if x
// is not an ordinary number (NaN).
func (g *Linear) Interpolate(x float64) RGB {
	if x <= 0 {
		return g.Start
	}
	if x >= 1 {
		return g.End
	}

	// Find the bracketing segment.
	last := Stop{Pos: 0, Color: g.Start}
	for p := range g.Points() {
		if p.Pos >= x {
			// A zero-length segment keeps t at 0, so the earlier stop wins.
			d := p.Pos - last.Pos
			t := 0.0
			if d != 0 {
				t = (x - last.Pos) / d
			}
			return last.Color.Lerp(p.Color, t)
		}
		last = p
	}

	// Unreachable for ordinary x: the end stop at position 1 always
	// satisfies the comparison above. NaN compares false against everything
	// and falls through.
	panic(&InvalidPositionError{Pos: x})
}

// Points iterates over the stops of this gradient, including the implicit
// stops at positions 0 and 1. The sequence can be ranged over multiple times.
func (g *Linear) Points() iter.Seq[Stop] {
	return func(yield func(Stop) bool) {
		if !yield(Stop{Pos: 0, Color: g.Start}) {
			return
		}
		for _, p := range g.Middle {
			if !yield(p) {
				return
			}
		}
		yield(Stop{Pos: 1, Color: g.End})
	}
}

// InvalidPositionError reports a non-finite position passed to
// [Linear.Interpolate]. It indicates a bug at the call site and is raised by
// panic rather than returned.
type InvalidPositionError struct {
	Pos float64 // The offending position (typically NaN).
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("gradient: invalid interpolation position: %v", e.Pos)
}
