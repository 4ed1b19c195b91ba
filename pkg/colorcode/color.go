// Package colorcode parses Minecraft legacy (§) and hex colour codes and
// renders formatted text as HTML or plain text.
package colorcode

import (
	"fmt"
	"image/color"
)

// SectionSign introduces every formatting code.
const SectionSign = '§'

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// Hex returns the canonical #RRGGBB form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns the colour as a fully opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Shadow returns the darker shade used for drop shadows (a quarter of each channel).
func (c Color) Shadow() Color {
	return Color{c.R / 4, c.G / 4, c.B / 4}
}

// The 16 legacy colours, indexed by code character.
var (
	Black       = Color{0x00, 0x00, 0x00}
	DarkBlue    = Color{0x00, 0x00, 0xAA}
	DarkGreen   = Color{0x00, 0xAA, 0x00}
	DarkAqua    = Color{0x00, 0xAA, 0xAA}
	DarkRed     = Color{0xAA, 0x00, 0x00}
	DarkPurple  = Color{0xAA, 0x00, 0xAA}
	Gold        = Color{0xFF, 0xAA, 0x00}
	Gray        = Color{0xAA, 0xAA, 0xAA}
	DarkGray    = Color{0x55, 0x55, 0x55}
	Blue        = Color{0x55, 0x55, 0xFF}
	Green       = Color{0x55, 0xFF, 0x55}
	Aqua        = Color{0x55, 0xFF, 0xFF}
	Red         = Color{0xFF, 0x55, 0x55}
	LightPurple = Color{0xFF, 0x55, 0xFF}
	Yellow      = Color{0xFF, 0xFF, 0x55}
	White       = Color{0xFF, 0xFF, 0xFF}
)

var legacyColors = map[rune]Color{
	'0': Black,
	'1': DarkBlue,
	'2': DarkGreen,
	'3': DarkAqua,
	'4': DarkRed,
	'5': DarkPurple,
	'6': Gold,
	'7': Gray,
	'8': DarkGray,
	'9': Blue,
	'a': Green,
	'b': Aqua,
	'c': Red,
	'd': LightPurple,
	'e': Yellow,
	'f': White,
}

// LegacyColor returns the colour for a legacy code character (case-insensitive).
func LegacyColor(code rune) (Color, bool) {
	c, ok := legacyColors[toLower(code)]
	return c, ok
}

// ParseHexColor parses a hex colour escape starting at index, the position
// of the first rune of the escape in text.
//
// The 14-rune gradient encoding "§x§R§R§G§G§B§B" is tried first, anchored at
// its leading §. Otherwise the literal "#RRGGBB" is accepted either at index
// itself (7 runes) or behind a § at index (8 runes, "§#RRGGBB"). consumed
// counts runes from index. ok is false when no form matches exactly at index.
func ParseHexColor(text []rune, index int) (c Color, consumed int, ok bool) {
	if c, ok := parseGradientHex(text, index); ok {
		return c, 14, true
	}
	if c, ok := parseLiteralHex(text, index); ok {
		return c, 7, true
	}
	if index >= 0 && index < len(text) && text[index] == SectionSign {
		if c, ok := parseLiteralHex(text, index+1); ok {
			return c, 8, true
		}
	}
	return Color{}, 0, false
}

func parseGradientHex(text []rune, i int) (Color, bool) {
	if i < 0 || i+14 > len(text) {
		return Color{}, false
	}
	if text[i] != SectionSign || toLower(text[i+1]) != 'x' {
		return Color{}, false
	}
	var digits [6]rune
	for n := 0; n < 6; n++ {
		p := i + 2 + n*2
		if text[p] != SectionSign || !isHexDigit(text[p+1]) {
			return Color{}, false
		}
		digits[n] = text[p+1]
	}
	return colorFromDigits(digits), true
}

func parseLiteralHex(text []rune, i int) (Color, bool) {
	if i < 0 || i+7 > len(text) || text[i] != '#' {
		return Color{}, false
	}
	var digits [6]rune
	for n := 0; n < 6; n++ {
		r := text[i+1+n]
		if !isHexDigit(r) {
			return Color{}, false
		}
		digits[n] = r
	}
	return colorFromDigits(digits), true
}

func colorFromDigits(d [6]rune) Color {
	return Color{
		R: uint8(hexValue(d[0])<<4 | hexValue(d[1])),
		G: uint8(hexValue(d[2])<<4 | hexValue(d[3])),
		B: uint8(hexValue(d[4])<<4 | hexValue(d[5])),
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
