package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skinrender/internal/engine/camera"
	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/engine/model"
	"github.com/Faultbox/skinrender/pkg/math"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	gray  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := canvas.New(w, h)
	canvas.Fill(img, img.Bounds(), c)
	return img
}

// unitFace is a 1x1 quad in the z=0 plane facing the default camera.
func unitFace() model.Face {
	v0 := math.Vec3{X: 1, Y: 1}
	v1 := math.Vec3{X: 0, Y: 1}
	v2 := math.Vec3{X: 1, Y: 0}
	return model.Face{
		V0: v0, V1: v1, V2: v2, V3: v1.Add(v2).Sub(v0),
		UV:     model.UVRect{U0: 0, V0: 0, U1: 1, V1: 1},
		Normal: math.Vec3{Z: -1},
	}
}

func square(x0, y0, x1, y1 float64) [4]Point {
	return [4]Point{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}
}

func TestDrawQuadUnitTexture(t *testing.T) {
	dst := solid(8, 8, gray)
	pf := &ProjectedFace{
		P:          square(2, 2, 6, 6),
		UV:         model.UVRect{U0: 0, V0: 0, U1: 1, V1: 1},
		Brightness: 1,
	}
	DrawQuad(dst, solid(1, 1, red), pf)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := gray
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = red
			}
			assert.Equal(t, want, dst.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestDrawQuadSamplesTexels(t *testing.T) {
	tex := canvas.New(2, 2)
	tex.SetNRGBA(0, 0, red)
	tex.SetNRGBA(1, 1, green)

	dst := canvas.New(4, 4)
	DrawQuad(dst, tex, &ProjectedFace{
		P:          square(0, 0, 4, 4),
		UV:         model.UVRect{U0: 0, V0: 0, U1: 2, V1: 2},
		Brightness: 1,
	})
	assert.Equal(t, red, dst.NRGBAAt(0, 0))
	assert.Equal(t, red, dst.NRGBAAt(1, 1))
	assert.Equal(t, green, dst.NRGBAAt(3, 3))
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(3, 0), "transparent texels are skipped")
}

func TestDrawQuadMirroredUV(t *testing.T) {
	tex := canvas.New(2, 1)
	tex.SetNRGBA(0, 0, red)
	tex.SetNRGBA(1, 0, green)

	dst := canvas.New(2, 1)
	DrawQuad(dst, tex, &ProjectedFace{
		P:          square(0, 0, 2, 1),
		UV:         model.UVRect{U0: 2, V0: 0, U1: 0, V1: 1},
		Brightness: 1,
	})
	assert.Equal(t, green, dst.NRGBAAt(0, 0))
	assert.Equal(t, red, dst.NRGBAAt(1, 0))
}

func TestDrawQuadClampsToFaceRect(t *testing.T) {
	tex := canvas.New(3, 1)
	tex.SetNRGBA(0, 0, green)
	tex.SetNRGBA(1, 0, red)
	tex.SetNRGBA(2, 0, green)

	dst := canvas.New(6, 1)
	DrawQuad(dst, tex, &ProjectedFace{
		P:          square(0, 0, 6, 1),
		UV:         model.UVRect{U0: 1, V0: 0, U1: 2, V1: 1},
		Brightness: 1,
	})
	for x := 0; x < 6; x++ {
		assert.Equal(t, red, dst.NRGBAAt(x, 0))
	}
}

func TestDrawQuadSkipsEmptyUV(t *testing.T) {
	dst := canvas.New(4, 4)
	DrawQuad(dst, solid(4, 4, red), &ProjectedFace{
		P:          square(0, 0, 4, 4),
		UV:         model.UVRect{U0: 1, V0: 0, U1: 1, V1: 4},
		Brightness: 1,
	})
	DrawQuad(dst, solid(4, 4, red), &ProjectedFace{
		P:          square(0, 0, 4, 4),
		UV:         model.UVRect{U0: 8, V0: 8, U1: 12, V1: 12},
		Brightness: 1,
	})
	assert.Equal(t, make([]byte, len(dst.Pix)), dst.Pix)
}

func TestDrawQuadZeroAreaDrawsNothing(t *testing.T) {
	dst := canvas.New(4, 4)
	assert.NotPanics(t, func() {
		DrawQuad(dst, solid(1, 1, red), &ProjectedFace{
			P:          square(2, 2, 2, 2),
			UV:         model.UVRect{U1: 1, V1: 1},
			Brightness: 1,
		})
	})
	assert.Equal(t, make([]byte, len(dst.Pix)), dst.Pix)
}

func TestDrawQuadShadesRGB(t *testing.T) {
	dst := canvas.New(1, 1)
	DrawQuad(dst, solid(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), &ProjectedFace{
		P:          square(0, 0, 1, 1),
		UV:         model.UVRect{U1: 1, V1: 1},
		Brightness: 0.5,
	})
	assert.Equal(t, color.NRGBA{R: 100, G: 50, B: 25, A: 255}, dst.NRGBAAt(0, 0))
}

func TestSortFacesTieBreak(t *testing.T) {
	base := []ProjectedFace{
		{Index: 7, Depth: 5},
		{Index: 0, Depth: 9},
		{Index: 3, Depth: 5},
		{Index: 5, Depth: 1},
	}
	for run := 0; run < 20; run++ {
		faces := append([]ProjectedFace(nil), base...)
		rand.New(rand.NewSource(int64(run))).Shuffle(len(faces), func(i, j int) {
			faces[i], faces[j] = faces[j], faces[i]
		})
		SortFaces(faces)

		order := make([]int, len(faces))
		for i, f := range faces {
			order[i] = f.Index
		}
		require.Equal(t, []int{0, 3, 7, 5}, order)
	}
}

func TestCoplanarFacesDrawLowerIndexFirst(t *testing.T) {
	f := unitFace()
	faces := make([]model.Face, 8)
	for i := range faces {
		faces[i] = f
		faces[i].UV = model.UVRect{U0: 0, V0: 0, U1: 0, V1: 0}
	}
	faces[3].UV = model.UVRect{U0: 0, V0: 0, U1: 1, V1: 1}
	faces[7].UV = model.UVRect{U0: 1, V0: 0, U1: 2, V1: 1}

	tex := canvas.New(2, 1)
	tex.SetNRGBA(0, 0, red)
	tex.SetNRGBA(1, 0, green)

	view := camera.Front(math.Vec3{X: 0.5, Y: 0.5})
	opts := Options{MinBrightness: 1}
	first := Render([]Batch{{Texture: tex, Faces: faces}}, view, 4, opts)
	for run := 0; run < 5; run++ {
		out := Render([]Batch{{Texture: tex, Faces: faces}}, view, 4, opts)
		assert.Equal(t, first.Pix, out.Pix)
	}
	assert.Equal(t, green, first.NRGBAAt(1, 1), "face 7 draws over face 3")
}

func TestRenderUnitQuadFillsCanvas(t *testing.T) {
	out := Render([]Batch{{Texture: solid(1, 1, red), Faces: []model.Face{unitFace()}}},
		camera.Front(math.Vec3{X: 0.5, Y: 0.5}), 4, Options{MinBrightness: 1})

	require.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, red, out.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRenderCullsBackFaces(t *testing.T) {
	back := unitFace()
	back.Normal = math.Vec3{Z: 1}
	batch := []Batch{{Texture: solid(1, 1, red), Faces: []model.Face{back}}}
	view := camera.Front(math.Vec3{X: 0.5, Y: 0.5})

	culled := Render(batch, view, 4, Options{MinBrightness: 1})
	assert.Equal(t, color.NRGBA{}, culled.NRGBAAt(2, 2))

	twoSided := Render(batch, view, 4, Options{MinBrightness: 1, TwoSided: true})
	assert.Equal(t, red, twoSided.NRGBAAt(2, 2))
}

func TestRenderAspect(t *testing.T) {
	view := camera.Front(math.Vec3{X: 0.5, Y: 0.5})
	view.Aspect = 2
	out := Render([]Batch{{Texture: solid(1, 1, red), Faces: []model.Face{unitFace()}}}, view, 10, Options{MinBrightness: 1})

	require.Equal(t, image.Rect(0, 0, 20, 10), out.Bounds())
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(2, 5), "letterboxed")
	assert.Equal(t, red, out.NRGBAAt(10, 5))
}

func TestRenderDegenerateInput(t *testing.T) {
	out := Render(nil, camera.Front(math.Vec3{}), 0, DefaultOptions())
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())

	p := math.Vec3{X: 1, Y: 1}
	flat := model.Face{V0: p, V1: p, V2: p, V3: p, UV: model.UVRect{U1: 1, V1: 1}, Normal: math.Vec3{Z: -1}}
	assert.NotPanics(t, func() {
		out = Render([]Batch{{Texture: solid(1, 1, red), Faces: []model.Face{flat}}}, camera.Front(p), 16, DefaultOptions())
	})
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())

	assert.NotPanics(t, func() {
		Render([]Batch{{Texture: nil, Faces: []model.Face{unitFace()}}}, camera.Front(p), 8, DefaultOptions())
	})
}

func TestRenderPlayerDeterministic(t *testing.T) {
	tex := canvas.New(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			tex.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	faces := model.BuildFaces(false, true)
	b := model.FaceBounds(faces)
	view := camera.Isometric(camera.FitCenter(b.Min, b.Max), 45, 35)

	first := Render([]Batch{{Texture: tex, Faces: faces}}, view, 128, DefaultOptions())
	second := Render([]Batch{{Texture: tex, Faces: faces}}, view, 128, DefaultOptions())
	assert.Equal(t, first.Pix, second.Pix)
	assert.Equal(t, 128, first.Bounds().Dy())

	opaque := 0
	for i := 3; i < len(first.Pix); i += 4 {
		if first.Pix[i] == 255 {
			opaque++
		}
	}
	assert.Greater(t, opaque, 128*first.Bounds().Dx()/4)
}

func TestProjectShadesAndIndexes(t *testing.T) {
	up := unitFace()
	up.Normal = math.Vec3{Y: 1}
	batches := []Batch{
		{Faces: []model.Face{unitFace()}},
		{Faces: []model.Face{unitFace(), up}},
	}
	opts := Options{MinBrightness: 0.5, Sun: math.Vec3{Y: 1}}
	faces := Project(batches, camera.Front(math.Vec3{}), opts)
	require.Len(t, faces, 3)

	assert.Equal(t, []int{0, 1, 2}, []int{faces[0].Index, faces[1].Index, faces[2].Index})
	assert.Equal(t, []int{0, 1, 1}, []int{faces[0].Batch, faces[1].Batch, faces[2].Batch})
	assert.InDelta(t, 0.75, faces[0].Brightness, 1e-12)
	assert.InDelta(t, 1.0, faces[2].Brightness, 1e-12)
	assert.False(t, faces[0].Culled)
	assert.True(t, faces[2].Culled, "a face pointing up is edge-on to a level camera")
	assert.InDelta(t, 64, faces[0].Depth, 1e-9)
}
