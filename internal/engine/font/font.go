// Package font loads Minecraft-style bitmap fonts and measures and draws
// text with them.
package font

import (
	"image"
	gomath "math"
)

// Fallback metrics used when a font has no width table.
const (
	DefaultWidth        = 6
	DefaultBoldOffset   = 1.0
	DefaultShadowOffset = 1.0
)

// Glyph is one character cell of an atlas.
type Glyph struct {
	Atlas        *image.NRGBA
	Rect         image.Rectangle // cell in the atlas
	Advance      int
	BoldOffset   float64
	ShadowOffset float64
	Ascent       int     // rows above the baseline, in font pixels
	Scale        float64 // font pixels per atlas texel
}

// Font maps code points to glyphs and advances. It is immutable once built.
type Font struct {
	Name                string
	Ascent              int
	LineHeight          int
	DefaultWidth        int
	DefaultBoldOffset   float64
	DefaultShadowOffset float64

	glyphs      map[rune]*Glyph
	advances    map[rune]int
	boldOffsets map[rune]float64
}

// Empty returns a font with no glyphs. Text still measures with the default
// width.
func Empty(name string) *Font {
	return &Font{
		Name:                name,
		Ascent:              7,
		LineHeight:          9,
		DefaultWidth:        DefaultWidth,
		DefaultBoldOffset:   DefaultBoldOffset,
		DefaultShadowOffset: DefaultShadowOffset,
		glyphs:              make(map[rune]*Glyph),
		advances:            make(map[rune]int),
		boldOffsets:         make(map[rune]float64),
	}
}

// Glyph returns the glyph for r, if the font has one.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// GlyphCount returns the number of drawable glyphs.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// Advance returns the horizontal cursor step after r.
func (f *Font) Advance(r rune, bold bool) int {
	var w int
	if g, ok := f.glyphs[r]; ok {
		w = g.Advance
	} else if a, ok := f.advances[r]; ok {
		w = a
	} else {
		w = f.DefaultWidth
	}
	if bold {
		w += int(gomath.Ceil(f.BoldOffset(r)))
	}
	return w
}

// BoldOffset returns the extra advance of r when bold.
func (f *Font) BoldOffset(r rune) float64 {
	if g, ok := f.glyphs[r]; ok {
		return g.BoldOffset
	}
	if b, ok := f.boldOffsets[r]; ok {
		return b
	}
	return f.DefaultBoldOffset
}

// Measure returns the width of text in font pixels.
func (f *Font) Measure(text string, bold bool) int {
	w := 0
	for _, r := range text {
		w += f.Advance(r, bold)
	}
	return w
}
