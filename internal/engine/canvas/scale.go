package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ScaleNearest resizes src to w x h with nearest-neighbour sampling.
// Integer upscales of pixel art stay exact.
func ScaleNearest(src image.Image, w, h int) *image.NRGBA {
	dst := New(w, h)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// ScaleSmooth resizes src to w x h with approximate bilinear filtering, used when
// shrinking an upscaled composition to its final size.
func ScaleSmooth(src image.Image, w, h int) *image.NRGBA {
	dst := New(w, h)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FitInto scales src with nearest-neighbour sampling into r of dst and
// blends it over the existing pixels.
func FitInto(dst *image.NRGBA, r image.Rectangle, src image.Image) {
	if r.Empty() {
		return
	}
	scaled := ScaleNearest(src, r.Dx(), r.Dy())
	Composite(dst, scaled, r.Min)
}
