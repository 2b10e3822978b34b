// Package geom provides the vector math and contact tests shared by the
// simulation. Positions are 3-vectors: X and Y span the ground plane, Z is
// elevation above it.
package geom

import "math"

// Vec3 is a position or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// V2 builds a ground-plane vector.
func V2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LengthSquared returns |v|².
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Vec3) float64 {
	return a.Sub(b).LengthSquared()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// Overlaps is the contact test used for every entity pair: two bodies touch
// when the squared distance between their centres is below the squared mean
// of their sizes. No square root is taken.
func Overlaps(a Vec3, sizeA float64, b Vec3, sizeB float64) bool {
	r := (sizeA + sizeB) / 2
	return DistanceSquared(a, b) < r*r
}

// Within reports whether b lies strictly inside radius of a.
func Within(a, b Vec3, radius float64) bool {
	return DistanceSquared(a, b) < radius*radius
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FromAngle returns a unit ground-plane direction for an angle in radians.
func FromAngle(angle float64) Vec3 {
	return Vec3{X: math.Cos(angle), Y: math.Sin(angle)}
}
