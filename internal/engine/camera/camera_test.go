package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/skinrender/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "z")
}

func TestFrontBasis(t *testing.T) {
	b := Front(math.Vec3{}).Basis()
	assertVec(t, math.Vec3{Z: 1}, b.Forward)
	// the player's right (+X) appears on the left of the image
	assertVec(t, math.Vec3{X: -1}, b.Right)
	assertVec(t, math.Vec3{Y: 1}, b.Up)
}

func TestBasisOrthonormal(t *testing.T) {
	v := View{Eye: math.Vec3{X: 3, Y: 5, Z: -7}, Target: math.Vec3{X: 1, Y: 2}}
	b := v.Basis()
	assert.InDelta(t, 1, b.Forward.Length(), 1e-9)
	assert.InDelta(t, 1, b.Right.Length(), 1e-9)
	assert.InDelta(t, 1, b.Up.Length(), 1e-9)
	assert.InDelta(t, 0, b.Forward.Dot(b.Right), 1e-9)
	assert.InDelta(t, 0, b.Forward.Dot(b.Up), 1e-9)
	assert.InDelta(t, 0, b.Right.Dot(b.Up), 1e-9)
}

func TestProjectDepthGrowsAway(t *testing.T) {
	v := Front(math.Vec3{})
	b := v.Basis()
	_, _, near := b.Project(math.Vec3{Z: -4}, v.Eye)
	_, _, far := b.Project(math.Vec3{Z: 4}, v.Eye)
	assert.Greater(t, far, near)
}

func TestIsometricShowsTopFrontAndRight(t *testing.T) {
	v := Isometric(math.Vec3{}, 45, 35)
	b := v.Basis()

	facing := func(n math.Vec3) bool {
		return v.RotateNormal(n).Dot(b.Forward) < 0
	}
	assert.True(t, facing(math.Vec3{Y: 1}), "top")
	assert.True(t, facing(math.Vec3{Z: -1}), "front")
	assert.True(t, facing(math.Vec3{X: 1}), "right side")
	assert.False(t, facing(math.Vec3{Z: 1}), "back")
	assert.False(t, facing(math.Vec3{X: -1}), "left side")
	assert.False(t, facing(math.Vec3{Y: -1}), "bottom")
}

func TestRotateKeepsTarget(t *testing.T) {
	target := math.Vec3{X: 1, Y: 28, Z: 0}
	v := Isometric(target, 45, 35)
	assertVec(t, target, v.Rotate(target))
}

func TestFitCenter(t *testing.T) {
	assertVec(t, math.Vec3{Y: 16}, FitCenter(math.Vec3{X: -8, Z: -4}, math.Vec3{X: 8, Y: 32, Z: 4}))
}

func TestRotateMatchesNormalRotation(t *testing.T) {
	v := Isometric(math.Vec3{X: 4, Y: 8}, 45, 35)
	p := math.Vec3{X: 5, Y: 8}
	// a point one unit from the target moves like the unit direction
	assertVec(t, v.RotateNormal(math.Vec3{X: 1}), v.Rotate(p).Sub(v.Target))
}
