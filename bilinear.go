package gradient

// Bilinear applies bilinear interpolation to a rectangle with a given color
// at each corner.
type Bilinear struct {
	// TopLeft is the color of the top-left corner.
	TopLeft RGB
	// BottomLeft is the color of the bottom-left corner.
	BottomLeft RGB
	// TopRight is the color of the top-right corner.
	TopRight RGB
	// BottomRight is the color of the bottom-right corner.
	BottomRight RGB
}

// gradientMarker implements the sealed Interpolator interface.
func (Bilinear) gradientMarker() {}

// Interpolate returns the color at pos on a surface of the given size.
// Implements the Interpolator interface.
//
// The position is mapped to a ratio per axis of pos / (size - 1). An axis of
// size 1 (or less) uses ratio 0 on that axis, so the top/left colors win.
func (g *Bilinear) Interpolate(pos, size Vec) RGB {
	x := axisRatio(pos.X, size.X)
	y := axisRatio(pos.Y, size.Y)

	// Interpolate along both horizontal edges, then between the two results.
	// This reuses the Linear algorithm instead of re-deriving 2D math.
	top := NewLinear(g.TopLeft, g.TopRight).Interpolate(x)
	bottom := NewLinear(g.BottomLeft, g.BottomRight).Interpolate(x)

	return NewLinear(top, bottom).Interpolate(y)
}

// axisRatio maps a cell index on an axis of n cells to a ratio in [0, 1].
func axisRatio(pos, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(pos) / float64(n-1)
}
