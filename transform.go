package tilestead

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the world transform of an entity. Z does not take part in the
// 2D affine; it orders rendering and feeds hit depth.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians, clockwise with Y down
}

// NewTransform returns a transform at (x, y, z) with unit scale.
func NewTransform(x, y, z float64) Transform {
	return Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

// Position returns the planar position of the transform.
func (t Transform) Position() Vec2 {
	return Vec2{t.X, t.Y}
}

// Matrix computes the affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func (t Transform) Matrix() [6]float64 {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 && sy == 0 {
		// Zero value means "unset", not a collapsed transform.
		sx, sy = 1, 1
	}
	sin, cos := math.Sincos(t.Rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.X, t.Y}
}

// invertAffine computes the inverse of a 2D affine matrix.
// ok is false if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) (inv [6]float64, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
