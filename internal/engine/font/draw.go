package font

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/Faultbox/skinrender/internal/engine/canvas"
)

// Style controls how DrawStyled renders a run of text.
type Style struct {
	Color         color.NRGBA
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Shadow        bool
	Scale         int // output pixels per font pixel; 0 means 1
}

// ShadowColor returns the drop-shadow tint for c.
func ShadowColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: c.A}
}

// Draw renders text with its baseline at y, starting at x, and returns the
// x after the last advance.
func (f *Font) Draw(dst *image.NRGBA, text string, x, y int, bold bool, tint color.NRGBA) int {
	return f.DrawStyled(dst, text, x, y, Style{Color: tint, Bold: bold})
}

// DrawStyled renders text with its baseline at y and returns the x after the
// last advance. Advances and decorations are multiplied by st.Scale. The
// shadow of each glyph is offset by that glyph's ShadowOffset.
func (f *Font) DrawStyled(dst *image.NRGBA, text string, x, y int, st Style) int {
	scale := max(st.Scale, 1)
	if st.Shadow {
		sh := st
		sh.Shadow = false
		sh.Color = ShadowColor(st.Color)
		f.drawRun(dst, text, x, y, sh, scale, true)
	}
	return f.drawRun(dst, text, x, y, st, scale, false)
}

func (f *Font) drawRun(dst *image.NRGBA, text string, x, y int, st Style, scale int, shadow bool) int {
	px := func(v float64) int { return int(gomath.Round(v * float64(scale))) }
	// decorations have no glyph of their own
	deco := 0
	if shadow {
		deco = px(f.DefaultShadowOffset)
	}

	cx := x
	for _, r := range text {
		adv := f.Advance(r, st.Bold) * scale
		if g, ok := f.glyphs[r]; ok {
			off := 0
			if shadow {
				off = px(g.ShadowOffset)
			}
			f.blit(dst, g, cx+off, y+off, st, scale)
			if st.Bold {
				f.blit(dst, g, cx+off+px(g.BoldOffset), y+off, st, scale)
			}
		}
		lx, ly := cx+deco, y+deco
		if st.Underline {
			canvas.FillOver(dst, image.Rect(lx-scale, ly+scale, lx+adv, ly+2*scale), st.Color)
		}
		if st.Strikethrough {
			mid := ly - (f.Ascent*scale)/2
			canvas.FillOver(dst, image.Rect(lx-scale, mid-scale/2, lx+adv, mid-scale/2+scale), st.Color)
		}
		cx += adv
	}
	return cx
}

// blit draws one glyph tinted, nearest-sampled, with its top at
// y - ascent.
func (f *Font) blit(dst *image.NRGBA, g *Glyph, x, y int, st Style, scale int) {
	px := g.Scale * float64(scale)
	top := float64(y - g.Ascent*scale)
	rows := g.Rect.Dy()

	for gy := 0; gy < rows; gy++ {
		y0 := int(gomath.Round(top + float64(gy)*px))
		y1 := int(gomath.Round(top + float64(gy+1)*px))
		shear := 0
		if st.Italic {
			shear = int(gomath.Round(float64(scale) * float64(rows-gy) / float64(rows)))
		}
		for gx := 0; gx < g.Rect.Dx(); gx++ {
			c := g.Atlas.NRGBAAt(g.Rect.Min.X+gx, g.Rect.Min.Y+gy)
			if c.A == 0 {
				continue
			}
			c = canvas.Tint(c, st.Color)
			x0 := x + shear + int(gomath.Round(float64(gx)*px))
			x1 := x + shear + int(gomath.Round(float64(gx+1)*px))
			canvas.FillOver(dst, image.Rect(x0, y0, x1, y1), c)
		}
	}
}
