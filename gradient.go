package gradient

// Interpolator is the capability shared by the 2D gradient variants.
// This is a sealed interface - only types in this package implement it.
//
// A query supplies an integer position on a surface together with the total
// surface size; the variant reduces the query to one or more scalar positions
// in [0, 1], resolves them through [Linear] gradients and combines the
// results.
//
// Implemented by [Radial], [Angled] and [Bilinear].
type Interpolator interface {
	// gradientMarker is an unexported method that seals this interface.
	// Only types in this package can implement Interpolator.
	gradientMarker()

	// Interpolate returns the color for the given position, given the total
	// size of the surface.
	Interpolate(pos, size Vec) RGB
}
