package renderer

import (
	"image"
	gomath "math"

	"github.com/Faultbox/skinrender/internal/engine/canvas"
)

type edgeHit struct {
	x, u, v float64
}

// DrawQuad scanline-fills the parallelogram pf.P onto dst, sampling tex
// with nearest-texel lookup clamped to pf.UV. Pixels are covered when their
// centre lies inside the quad. Quads with an empty or out-of-texture UV
// rectangle are skipped.
func DrawQuad(dst, tex *image.NRGBA, pf *ProjectedFace) {
	if tex == nil {
		return
	}
	texRect, ok := texelRect(pf, tex.Rect)
	if !ok {
		return
	}

	p := pf.P
	uv := [4][2]float64{
		{pf.UV.U0, pf.UV.V0},
		{pf.UV.U1, pf.UV.V0},
		{pf.UV.U0, pf.UV.V1},
		{pf.UV.U1, pf.UV.V1},
	}
	// perimeter: 0 -> 1 -> 3 -> 2 -> 0
	edges := [4][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}}

	minY, maxY := p[0].Y, p[0].Y
	for _, c := range p[1:] {
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	bounds := dst.Bounds()
	yStart := max(int(gomath.Ceil(minY-0.5)), bounds.Min.Y)
	yEnd := min(int(gomath.Ceil(maxY-0.5)), bounds.Max.Y)

	for y := yStart; y < yEnd; y++ {
		yc := float64(y) + 0.5

		var left, right edgeHit
		hits := 0
		for _, e := range edges {
			a, b := p[e[0]], p[e[1]]
			if a.Y == b.Y {
				continue
			}
			lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
			if yc < lo || yc >= hi {
				continue
			}
			t := (yc - a.Y) / (b.Y - a.Y)
			h := edgeHit{
				x: a.X + t*(b.X-a.X),
				u: uv[e[0]][0] + t*(uv[e[1]][0]-uv[e[0]][0]),
				v: uv[e[0]][1] + t*(uv[e[1]][1]-uv[e[0]][1]),
			}
			if hits == 0 || h.x < left.x {
				left = h
			}
			if hits == 0 || h.x > right.x {
				right = h
			}
			hits++
		}
		if hits < 2 {
			continue
		}

		xStart := max(int(gomath.Ceil(left.x-0.5)), bounds.Min.X)
		xEnd := min(int(gomath.Ceil(right.x-0.5)), bounds.Max.X)
		span := right.x - left.x
		for x := xStart; x < xEnd; x++ {
			s := 0.0
			if span > 0 {
				s = (float64(x) + 0.5 - left.x) / span
			}
			u := left.u + s*(right.u-left.u)
			v := left.v + s*(right.v-left.v)

			tx := clampInt(int(gomath.Floor(u)), texRect.Min.X, texRect.Max.X-1)
			ty := clampInt(int(gomath.Floor(v)), texRect.Min.Y, texRect.Max.Y-1)
			c := tex.NRGBAAt(tx, ty)
			if c.A == 0 {
				continue
			}
			if pf.Brightness != 1 {
				c = canvas.Shade(c, pf.Brightness)
			}
			canvas.BlendOver(dst, x, y, c)
		}
	}
}

// texelRect returns the integer texel area a face may sample, limited to
// the texture.
func texelRect(pf *ProjectedFace, texBounds image.Rectangle) (image.Rectangle, bool) {
	if pf.UV.Empty() {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		int(gomath.Floor(min(pf.UV.U0, pf.UV.U1))),
		int(gomath.Floor(min(pf.UV.V0, pf.UV.V1))),
		int(gomath.Ceil(max(pf.UV.U0, pf.UV.U1))),
		int(gomath.Ceil(max(pf.UV.V0, pf.UV.V1))),
	).Intersect(texBounds)
	return r, !r.Empty()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
