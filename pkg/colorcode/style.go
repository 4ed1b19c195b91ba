package colorcode

// Format is a bitmask of text decorations.
type Format uint8

// Format bits.
const (
	Bold Format = 1 << iota
	Italic
	Underline
	Strikethrough
)

// Has reports whether all bits of f are set.
func (m Format) Has(f Format) bool {
	return m&f == f
}

// Style is the colour and decoration state applied to a run of text.
// Styles compare by value; two runs with equal styles are interchangeable.
type Style struct {
	Color    Color
	HasColor bool
	Format   Format
}

// IsPlain reports whether the style has neither a colour nor decorations.
func (s Style) IsPlain() bool {
	return !s.HasColor && s.Format == 0
}

// ColorOr returns the style colour, or fallback when none is set.
func (s Style) ColorOr(fallback Color) Color {
	if s.HasColor {
		return s.Color
	}
	return fallback
}

// formatCodes maps decoration code characters to their format bit.
var formatCodes = map[rune]Format{
	'l': Bold,
	'o': Italic,
	'n': Underline,
	'm': Strikethrough,
}

const (
	codeReset      = 'r'
	codeObfuscated = 'k'
	codeHex        = 'x'
)

// isLegacyCode reports whether r is a single-character code Strip removes.
func isLegacyCode(r rune) bool {
	r = toLower(r)
	if _, ok := legacyColors[r]; ok {
		return true
	}
	if _, ok := formatCodes[r]; ok {
		return true
	}
	return r == codeReset || r == codeObfuscated
}
