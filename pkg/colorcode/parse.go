package colorcode

import "strings"

// Run is a maximal stretch of text sharing one style.
type Run struct {
	Text  string
	Style Style
}

// Parse walks text and splits it into styled runs.
//
// A colour code sets the colour and clears decorations, §r clears both, and
// decoration codes add their bit. A run is flushed only when the style
// actually changes; earlier runs are never merged back. Unrecognised code
// characters are dropped together with their §, and a trailing § with
// nothing after it is kept as text.
func Parse(text string) []Run {
	src := []rune(text)

	var runs []Run
	var buf strings.Builder
	var runStyle, cur Style

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, Run{Text: buf.String(), Style: runStyle})
			buf.Reset()
		}
	}
	apply := func(next Style) {
		cur = next
		if cur == runStyle {
			return
		}
		flush()
		runStyle = cur
	}

	for i := 0; i < len(src); i++ {
		r := src[i]
		if r != SectionSign || i+1 >= len(src) {
			buf.WriteRune(r)
			continue
		}

		if c, n, ok := ParseHexColor(src, i); ok {
			apply(Style{Color: c, HasColor: true})
			i += n - 1
			continue
		}

		code := toLower(src[i+1])
		i++
		if c, ok := legacyColors[code]; ok {
			apply(Style{Color: c, HasColor: true})
			continue
		}
		if f, ok := formatCodes[code]; ok {
			next := cur
			next.Format |= f
			apply(next)
			continue
		}
		if code == codeReset {
			apply(Style{})
		}
		// Obfuscated and unknown codes leave the style untouched.
	}
	flush()

	return runs
}
