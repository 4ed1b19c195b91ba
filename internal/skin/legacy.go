package skin

import (
	"image"
	"image/draw"

	"github.com/Faultbox/skinrender/internal/engine/canvas"
	"github.com/Faultbox/skinrender/internal/engine/model"
)

// IsLegacy reports whether tex uses the 64x32 layout (width twice the
// height).
func IsLegacy(tex image.Image) bool {
	b := tex.Bounds()
	return b.Dy() > 0 && b.Dx() == 2*b.Dy()
}

// UpgradeLegacy converts a 64x32 skin (or an integer multiple) to the
// square layout: the original fills the top half, the right arm and leg are
// mirrored into the left slots and the second-layer areas are cleared.
// Square input is returned unchanged. tex itself is never modified.
func UpgradeLegacy(tex *image.NRGBA) *image.NRGBA {
	if !IsLegacy(tex) {
		return tex
	}
	w := tex.Bounds().Dx()
	s := max(w/64, 1)

	out := canvas.New(w, w)
	draw.Draw(out, image.Rect(0, 0, w, w/2), tex, tex.Bounds().Min, draw.Src)

	for _, c := range model.LegacyMirrorCopies {
		canvas.CopyArea(out, c.X*s, c.Y*s, c.W*s, c.H*s, c.DX*s, c.DY*s, c.FlipX, c.FlipY)
	}
	for _, r := range model.LegacyClearRegions {
		canvas.Clear(out, image.Rect(r.Min.X*s, r.Min.Y*s, r.Max.X*s, r.Max.Y*s))
	}
	return out
}
