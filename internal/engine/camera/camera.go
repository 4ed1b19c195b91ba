// Package camera describes the fixed orthographic views used by the
// software renderer.
package camera

import "github.com/Faultbox/skinrender/pkg/math"

// WorldUp is the model-space up axis.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// DefaultDistance is how far in front of the target Fit places the eye.
// The projection is orthographic, so it only needs to clear the model.
const DefaultDistance = 64.0

// View is a camera looking from Eye at Target. The model is rotated around
// Target by Yaw (about Y) then Pitch (about X), in degrees, before it is
// projected. Aspect is output width / height; zero derives it from the
// projected model extent.
type View struct {
	Eye    math.Vec3
	Target math.Vec3
	Yaw    float64
	Pitch  float64
	Aspect float64
}

// Basis is an orthonormal camera frame.
type Basis struct {
	Forward math.Vec3
	Right   math.Vec3
	Up      math.Vec3
}

// Basis derives the camera frame from Eye and Target.
func (v View) Basis() Basis {
	forward := v.Target.Sub(v.Eye).Normalize()
	right := forward.Cross(WorldUp).Normalize()
	up := right.Cross(forward).Normalize()
	return Basis{Forward: forward, Right: right, Up: up}
}

// Model returns the view's model rotation about Target.
func (v View) Model() math.Mat4 {
	return math.RotationAround(v.Target, v.Yaw, v.Pitch)
}

// Rotate applies the view's model rotation to a point.
func (v View) Rotate(p math.Vec3) math.Vec3 {
	return v.Model().TransformPoint(p)
}

// RotateNormal applies the view's model rotation to a direction.
func (v View) RotateNormal(n math.Vec3) math.Vec3 {
	return v.Model().TransformDirection(n)
}

// Project maps a rotated model-space point into view space. Z grows with
// distance from the eye.
func (b Basis) Project(p, eye math.Vec3) (x, y, z float64) {
	return math.Project(p, eye, b.Forward, b.Right, b.Up)
}

// Front returns a straight-on view of the model's front (-Z side) centred
// on target.
func Front(target math.Vec3) View {
	return View{
		Eye:    target.Add(math.Vec3{Z: -DefaultDistance}),
		Target: target,
	}
}

// Isometric returns a front view turned by yaw degrees so the player's right
// side shows, and tilted by pitch degrees so the top shows.
func Isometric(target math.Vec3, yaw, pitch float64) View {
	v := Front(target)
	v.Yaw = yaw
	// positive X rotation tips the top away from an eye on the -Z side
	v.Pitch = -pitch
	return v
}

// FitCenter returns the centre of the box spanned by lo and hi, the usual
// target for a model view.
func FitCenter(lo, hi math.Vec3) math.Vec3 {
	return lo.Add(hi).Scale(0.5)
}
