package math

import "math"

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RotateY rotates v around the Y axis by the given angle in degrees.
func RotateY(v Vec3, degrees float64) Vec3 {
	s, c := math.Sincos(Radians(degrees))
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// RotateX rotates v around the X axis by the given angle in degrees.
func RotateX(v Vec3, degrees float64) Vec3 {
	s, c := math.Sincos(Radians(degrees))
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotationY returns the matrix form of RotateY.
func RotationY(degrees float64) Mat4 {
	return linear(func(v Vec3) Vec3 { return RotateY(v, degrees) })
}

// RotationX returns the matrix form of RotateX.
func RotationX(degrees float64) Mat4 {
	return linear(func(v Vec3) Vec3 { return RotateX(v, degrees) })
}

// RotationAround returns a matrix applying yaw (Y axis) then pitch (X axis)
// about center.
func RotationAround(center Vec3, yaw, pitch float64) Mat4 {
	return Translate(center.X, center.Y, center.Z).
		Mul(RotationX(pitch)).
		Mul(RotationY(yaw)).
		Mul(Translate(-center.X, -center.Y, -center.Z))
}

// linear builds the matrix of a linear map from the images of the unit axes.
func linear(fn func(Vec3) Vec3) Mat4 {
	x, y, z := fn(Vec3{X: 1}), fn(Vec3{Y: 1}), fn(Vec3{Z: 1})
	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	}
}

// Project maps a world point into the view space described by an eye
// position and an orthonormal camera basis. The returned z grows with
// distance from the eye along forward and is used directly as a sort key.
func Project(p, eye, forward, right, up Vec3) (x, y, z float64) {
	d := p.Sub(eye)
	return d.Dot(right), d.Dot(up), d.Dot(forward)
}
