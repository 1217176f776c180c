// Package geometry implement geometric primitives shared by phantom solids.
package geometry

import "math"

// Point represent point in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent 3D vector.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3DInt represent 3D vector with integer coordinates.
type Vec3DInt struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	Z int64 `json:"z"`
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// CenterAndSizeToMinAndMax converts center and size on a single axis to
// min and max bound values.
func CenterAndSizeToMinAndMax(center, size float64) (min, max float64) {
	return center - size/2, center + size/2
}

// Matrix3 is a 3x3 row-major rotation matrix.
type Matrix3 [3][3]float64

// IdentityMatrix returns the identity rotation.
func IdentityMatrix() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewRotationMatrix builds the rotation for Euler angles rx, ry, rz in
// radians, applied in x, y, z order (total matrix Rz * Ry * Rx).
func NewRotationMatrix(rx, ry, rz float64) Matrix3 {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	rotationX := Matrix3{
		{1, 0, 0},
		{0, cx, -sx},
		{0, sx, cx},
	}
	rotationY := Matrix3{
		{cy, 0, sy},
		{0, 1, 0},
		{-sy, 0, cy},
	}
	rotationZ := Matrix3{
		{cz, -sz, 0},
		{sz, cz, 0},
		{0, 0, 1},
	}

	return rotationZ.Mult(rotationY.Mult(rotationX))
}

// Mult returns the matrix product m * o.
func (m Matrix3) Mult(o Matrix3) Matrix3 {
	result := Matrix3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return result
}

// Transposed returns the transpose of m. For rotations it is the inverse.
func (m Matrix3) Transposed() Matrix3 {
	result := Matrix3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Apply returns m * p.
func (m Matrix3) Apply(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}
