package gradient

import (
	"image"
	"image/color"
)

// Image wraps a gradient as a read-only image.Image covering a surface of
// the given size, sampling one color per cell. Pixels outside the surface
// are black.
//
// This is meant for callers that want to inspect or visualize a gradient;
// it performs no caching, every At call evaluates the gradient.
func Image(g Interpolator, size Vec) image.Image {
	return gradientImage{g: g, size: size}
}

type gradientImage struct {
	g    Interpolator
	size Vec
}

func (im gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (im gradientImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.size.X, im.size.Y)
}

func (im gradientImage) At(x, y int) color.Color {
	if x < 0 || x >= im.size.X || y < 0 || y >= im.size.Y {
		return color.NRGBA{A: 255}
	}
	return im.g.Interpolate(V(x, y), im.size).Color()
}
