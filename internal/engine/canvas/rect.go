package canvas

import (
	"image"
	"image/color"
)

// Crop copies r out of src into a new canvas anchored at (0, 0).
// Parts of r outside src stay transparent.
func Crop(src *image.NRGBA, r image.Rectangle) *image.NRGBA {
	out := New(r.Dx(), r.Dy())
	clip := r.Intersect(src.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		si := src.PixOffset(clip.Min.X, y)
		di := out.PixOffset(clip.Min.X-r.Min.X, y-r.Min.Y)
		copy(out.Pix[di:di+clip.Dx()*4], src.Pix[si:si+clip.Dx()*4])
	}
	return out
}

// Fill sets every pixel of r to c without blending.
func Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}

// FillOver blends c over every pixel of r.
func FillOver(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			BlendOver(dst, x, y, c)
		}
	}
}

// Clear makes every pixel of r fully transparent.
func Clear(dst *image.NRGBA, r image.Rectangle) {
	Fill(dst, r, color.NRGBA{})
}

// CopyArea copies the w x h block at (x, y) to (x+dx, y+dy) within img,
// optionally mirrored horizontally and/or vertically. The source block is
// read fully before writing so overlapping areas behave.
func CopyArea(img *image.NRGBA, x, y, w, h, dx, dy int, flipX, flipY bool) {
	block := Crop(img, image.Rect(x, y, x+w, y+h))
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			sx, sy := i, j
			if flipX {
				sx = w - 1 - i
			}
			if flipY {
				sy = h - 1 - j
			}
			tx, ty := x+dx+i, y+dy+j
			if !(image.Point{tx, ty}.In(img.Rect)) {
				continue
			}
			img.SetNRGBA(tx, ty, block.NRGBAAt(sx, sy))
		}
	}
}

// Tile repeats tile across the whole of dst, overwriting it.
func Tile(dst, tile *image.NRGBA) {
	tb := tile.Bounds()
	if tb.Empty() {
		return
	}
	db := dst.Bounds()
	for y := db.Min.Y; y < db.Max.Y; y++ {
		ty := tb.Min.Y + (y-db.Min.Y)%tb.Dy()
		for x := db.Min.X; x < db.Max.X; x++ {
			tx := tb.Min.X + (x-db.Min.X)%tb.Dx()
			dst.SetNRGBA(x, y, tile.NRGBAAt(tx, ty))
		}
	}
}
