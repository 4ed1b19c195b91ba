package renderer

import (
	"github.com/Faultbox/skinrender/internal/engine/camera"
	"github.com/Faultbox/skinrender/internal/engine/lighting"
	"github.com/Faultbox/skinrender/internal/engine/model"
	"github.com/Faultbox/skinrender/pkg/math"
)

// Point is a 2D position in view or screen space.
type Point struct {
	X, Y float64
}

// ProjectedFace is a face prepared for rasterization. P holds the corners in
// the same order as model.Face (top-left, top-right, bottom-left,
// bottom-right).
type ProjectedFace struct {
	P          [4]Point
	UV         model.UVRect
	Brightness float64
	Batch      int     // index into the batch list
	Index      int     // position across all batches, the sort tie-break
	Depth      float64 // view-space z of the face centre
	Culled     bool    // faces away from the eye
}

// Project rotates every face by the view, shades it and projects its
// corners into view space. Faces keep their input order.
func Project(batches []Batch, view camera.View, opts Options) []ProjectedFace {
	basis := view.Basis()
	rot := view.Model()
	sun := opts.Sun
	if sun == (math.Vec3{}) {
		sun = lighting.DefaultSun
	}

	n := 0
	for _, b := range batches {
		n += len(b.Faces)
	}
	out := make([]ProjectedFace, 0, n)

	index := 0
	for bi, b := range batches {
		for _, f := range b.Faces {
			normal := rot.TransformDirection(f.Normal)
			pf := ProjectedFace{
				UV:         f.UV,
				Brightness: lighting.Brightness(normal, sun, opts.MinBrightness),
				Batch:      bi,
				Index:      index,
				Culled:     normal.Dot(basis.Forward) >= 0,
			}

			for i, v := range [4]math.Vec3{f.V0, f.V1, f.V2, f.V3} {
				x, y, _ := basis.Project(rot.TransformPoint(v), view.Eye)
				pf.P[i] = Point{X: x, Y: y}
			}
			// equals the mean depth of the corners
			_, _, pf.Depth = basis.Project(rot.TransformPoint(f.Center()), view.Eye)

			out = append(out, pf)
			index++
		}
	}
	return out
}
