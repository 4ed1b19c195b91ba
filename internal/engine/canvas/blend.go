// Package canvas provides pixel-level helpers over straight-alpha RGBA
// buffers: source-over blending, blits, fills and scaling.
package canvas

import (
	"image"
	"image/color"
)

// OpaqueThreshold is the alpha at or above which a source pixel simply
// overwrites the destination.
const OpaqueThreshold = 254

// New allocates a transparent w x h canvas.
func New(w, h int) *image.NRGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// BlendOver composites c over the pixel at (x, y) using straight alpha.
// Out-of-bounds coordinates are ignored.
func BlendOver(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(dst.Rect)) {
		return
	}
	i := dst.PixOffset(x, y)
	blendAt(dst.Pix[i:i+4:i+4], c)
}

func blendAt(px []byte, c color.NRGBA) {
	sa := int(c.A)
	if sa == 0 {
		return
	}
	if sa >= OpaqueThreshold {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		return
	}

	da := int(px[3])
	// dst weight in the output: da * (1 - sa)
	dw := da * (255 - sa) / 255
	outA := sa + dw
	if outA == 0 {
		return
	}
	px[0] = byte((int(c.R)*sa + int(px[0])*dw) / outA)
	px[1] = byte((int(c.G)*sa + int(px[1])*dw) / outA)
	px[2] = byte((int(c.B)*sa + int(px[2])*dw) / outA)
	px[3] = byte(outA)
}

// Composite draws src over dst with src's origin placed at dp.
func Composite(dst, src *image.NRGBA, dp image.Point) {
	sb := src.Bounds()
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			BlendOver(dst, dp.X+x-sb.Min.X, dp.Y+y-sb.Min.Y, src.NRGBAAt(x, y))
		}
	}
}

// Shade multiplies the RGB channels of c by factor, clamped to [0, 255].
// Alpha is left untouched.
func Shade(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: clampByte(float64(c.R) * factor),
		G: clampByte(float64(c.G) * factor),
		B: clampByte(float64(c.B) * factor),
		A: c.A,
	}
}

// Tint multiplies each RGB channel of c by the matching tint channel / 255.
// Alpha comes from c.
func Tint(c color.NRGBA, tint color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(int(c.R) * int(tint.R) / 255),
		G: uint8(int(c.G) * int(tint.G) / 255),
		B: uint8(int(c.B) * int(tint.B) / 255),
		A: c.A,
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
