package gamemath

import "math"

// Vec3 is a float64 3D vector. Y is up, forward is -Z.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: -1}
	Right   = Vec3{X: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flatten drops the vertical component.
func (v Vec3) Flatten() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return v.Add(to.Sub(v).Scale(t))
}

func (v Vec3) IsEqualApprox(o Vec3) bool {
	return IsEqualApprox(v.X, o.X) && IsEqualApprox(v.Y, o.Y) && IsEqualApprox(v.Z, o.Z)
}

// Yaw returns the heading angle of the flattened vector, measured from
// forward (-Z) and increasing counter-clockwise seen from above.
func (v Vec3) Yaw() float64 {
	return math.Atan2(-v.X, -v.Z)
}
