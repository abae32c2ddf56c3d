package gradient

import "math"

// Vec represents an integer position or size on a 2D surface.
type Vec struct {
	X, Y int
}

// V is a convenience function to create a Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Sub returns the difference of two vectors (component-wise subtraction).
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the component-wise product of two vectors.
func (v Vec) Mul(w Vec) Vec {
	return Vec{X: v.X * w.X, Y: v.Y * w.Y}
}

// Swap returns the vector with its components exchanged.
func (v Vec) Swap() Vec {
	return Vec{X: v.Y, Y: v.X}
}

// SqNorm returns the squared Euclidean norm of the vector.
func (v Vec) SqNorm() int {
	return v.X*v.X + v.Y*v.Y
}

// Point converts the vector to float components.
func (v Vec) Point() Point {
	return Point{X: float64(v.X), Y: float64(v.Y)}
}

// Point represents a 2D point or vector with float components.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of two points.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of two points.
func (p Point) Div(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Swap returns the point with its components exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// SqNorm returns the squared Euclidean norm of the vector.
func (p Point) SqNorm() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Vec converts the point to integer components, truncating towards zero.
func (p Point) Vec() Vec {
	return Vec{X: int(p.X), Y: int(p.Y)}
}
