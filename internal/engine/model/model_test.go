package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skinrender/pkg/math"
)

func TestBuildFacesCounts(t *testing.T) {
	tests := []struct {
		name    string
		slim    bool
		overlay bool
		want    int
	}{
		{"classic", false, false, 36},
		{"slim", true, false, 36},
		{"classic overlay", false, true, 72},
		{"slim overlay", true, true, 72},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, BuildFaces(tt.slim, tt.overlay), tt.want)
		})
	}
}

func TestBuildHeadFacesCounts(t *testing.T) {
	assert.Len(t, BuildHeadFaces(false), 6)
	assert.Len(t, BuildHeadFaces(true), 12)
}

func TestFacesAreAxisAlignedUnitNormals(t *testing.T) {
	for _, f := range BuildFaces(false, true) {
		assert.InDelta(t, 1, f.Normal.Length(), 1e-12)

		axes := 0
		for _, c := range []float64{f.Normal.X, f.Normal.Y, f.Normal.Z} {
			if c != 0 {
				axes++
			}
		}
		assert.Equal(t, 1, axes, "normal %v is not axis aligned", f.Normal)
	}
}

func TestNormalsPointOutward(t *testing.T) {
	for i := PartHead; i <= PartLeftLeg; i++ {
		box := PartBox(i, false)
		center := box.Min.Add(box.Max).Scale(0.5)
		for _, f := range BoxFaces(box, BoxUV{}) {
			out := f.Center().Sub(center)
			assert.Greater(t, out.Dot(f.Normal), 0.0, "part %d face normal %v", i, f.Normal)
		}
	}
}

func TestQuadIsPlanarParallelogram(t *testing.T) {
	for _, f := range BuildFaces(true, true) {
		e1 := f.V1.Sub(f.V0)
		e2 := f.V2.Sub(f.V0)
		assert.InDelta(t, 0, e1.Dot(f.Normal), 1e-12)
		assert.InDelta(t, 0, e2.Dot(f.Normal), 1e-12)
		assert.Equal(t, f.V1.Add(f.V2).Sub(f.V0), f.V3)
		// top-left, top-right, bottom-left seen from outside
		assert.Less(t, e1.Cross(e2).Dot(f.Normal), 0.0)
	}
}

func TestBoxFacesOrder(t *testing.T) {
	faces := BoxFaces(Box{Min: vec(0, 0, 0), Max: vec(1, 1, 1)}, BoxUV{})
	require.Len(t, faces, 6)

	want := []math.Vec3{vec(0, 0, -1), vec(0, 0, 1), vec(1, 0, 0), vec(-1, 0, 0), vec(0, 1, 0), vec(0, -1, 0)}
	for i, n := range want {
		assert.Equal(t, n, faces[i].Normal)
	}
}

func TestUnwrapBoxHead(t *testing.T) {
	uv := UnwrapBox(0, 0, 8, 8, 8)
	assert.Equal(t, UVRect{U0: 8, V0: 0, U1: 16, V1: 8}, uv.Up)
	assert.Equal(t, UVRect{U0: 16, V0: 0, U1: 24, V1: 8}, uv.Down)
	assert.Equal(t, UVRect{U0: 0, V0: 8, U1: 8, V1: 16}, uv.East)
	assert.Equal(t, UVRect{U0: 8, V0: 8, U1: 16, V1: 16}, uv.North)
	assert.Equal(t, UVRect{U0: 16, V0: 8, U1: 24, V1: 16}, uv.West)
	assert.Equal(t, UVRect{U0: 24, V0: 8, U1: 32, V1: 16}, uv.South)
}

func TestFrontFaceUsesFaceTexels(t *testing.T) {
	head := BuildHeadFaces(false)
	front := head[0]
	assert.Equal(t, UVRect{U0: 8, V0: 8, U1: 16, V1: 16}, front.UV)
	// image left is the player's right side (+X)
	assert.Equal(t, 4.0, front.V0.X)
	assert.Equal(t, 32.0, front.V0.Y)
	assert.Equal(t, -4.0, front.V0.Z)
}

func TestSlimArmsNarrower(t *testing.T) {
	classic := PartBox(PartRightArm, false).Size()
	slim := PartBox(PartRightArm, true).Size()
	assert.Equal(t, 4.0, classic.X)
	assert.Equal(t, 3.0, slim.X)

	left := PartBox(PartLeftArm, true)
	assert.Equal(t, -4.0, left.Max.X, "slim left arm stays attached to the body")

	faces := BuildFaces(true, false)
	rightFront := faces[2*6]
	assert.Equal(t, 3.0, rightFront.UV.Width())
	assert.Equal(t, UVRect{U0: 44, V0: 20, U1: 47, V1: 32}, rightFront.UV)
}

func TestSlimOnlyAffectsArms(t *testing.T) {
	classic := BuildFaces(false, true)
	slim := BuildFaces(true, true)
	for i := range classic {
		part := Part((i % 36) / 6)
		if part == PartRightArm || part == PartLeftArm {
			continue
		}
		assert.Equal(t, classic[i], slim[i], "face %d", i)
	}
}

func TestOverlayOutset(t *testing.T) {
	faces := BuildFaces(false, true)
	headBase := faces[0]
	headHat := faces[36]
	assert.Equal(t, headBase.V0.Z-HeadOverlayOutset, headHat.V0.Z)
	assert.Equal(t, UVRect{U0: 40, V0: 8, U1: 48, V1: 16}, headHat.UV)

	bodyJacket := faces[36+6]
	assert.Equal(t, -2-BodyOverlayOutset, bodyJacket.V0.Z)
	assert.Equal(t, 8.0, bodyJacket.UV.Width(), "overlay samples the base-size unwrap")
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, BuildFaces(true, true), BuildFaces(true, true))
	assert.Equal(t, Build(Key{HeadOnly: true, Overlay: true}), BuildHeadFaces(true))
}

func TestFaceBounds(t *testing.T) {
	b := FaceBounds(BuildFaces(false, false))
	assert.Equal(t, vec(-8, 0, -4), b.Min)
	assert.Equal(t, vec(8, 32, 4), b.Max)

	assert.Equal(t, Bounds{}, FaceBounds(nil))
}

func TestUVRectEmpty(t *testing.T) {
	assert.True(t, UVRect{U0: 3, V0: 3, U1: 3, V1: 8}.Empty())
	assert.False(t, UVRect{U0: 8, V0: 0, U1: 0, V1: 8}.Empty())
	assert.Equal(t, 8.0, UVRect{U0: 8, V0: 0, U1: 0, V1: 8}.Width())
}

func TestCacheReturnsSameSlice(t *testing.T) {
	c := NewCache()
	a := c.Get(Key{Overlay: true})
	b := c.Get(Key{Overlay: true})
	require.Len(t, a, 72)
	assert.Same(t, &a[0], &b[0])
	assert.Equal(t, 1, c.Len())

	c.Get(Key{HeadOnly: true})
	assert.Equal(t, 2, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	results := make([][]Face, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(Key{Slim: i%2 == 0, Overlay: true})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, c.Len())
	for i, r := range results {
		assert.Equal(t, BuildFaces(i%2 == 0, true), r)
	}
}

func TestLegacyTablesInsideTexture(t *testing.T) {
	for _, r := range LegacyMirrorCopies {
		assert.True(t, r.X >= 0 && r.X+r.W <= 64 && r.Y+r.H <= 32, "source %+v", r)
		dx, dy := r.X+r.DX, r.Y+r.DY
		assert.True(t, dx >= 0 && dx+r.W <= 64 && dy >= 32 && dy+r.H <= 64, "dest %+v", r)
	}
	area := 0
	for _, r := range LegacyClearRegions {
		area += r.Dx() * r.Dy()
	}
	assert.Equal(t, 64*16+2*16*16, area)
}

func TestMirroredDestinationsMatchUnwrap(t *testing.T) {
	leftLeg := UnwrapBox(16, 48, 4, 12, 4)
	leftArm := UnwrapBox(32, 48, 4, 12, 4)
	dests := map[[2]int]bool{}
	for _, r := range LegacyMirrorCopies {
		dests[[2]int{r.X + r.DX, r.Y + r.DY}] = true
	}
	for _, uv := range []BoxUV{leftLeg, leftArm} {
		for _, rect := range []UVRect{uv.Up, uv.Down, uv.East, uv.North, uv.West, uv.South} {
			key := [2]int{int(min(rect.U0, rect.U1)), int(rect.V0)}
			assert.True(t, dests[key], "no copy lands on %v", rect)
		}
	}
}
