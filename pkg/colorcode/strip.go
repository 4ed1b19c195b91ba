package colorcode

import "strings"

// Strip removes every recognised colour, format and hex escape from text.
// Unknown codes and a trailing § are left in place. Codes that only appear
// once an inner code is removed (such as "§§cc") are removed as well, so
// Strip(Strip(s)) == Strip(s).
func Strip(text string) string {
	for {
		out := stripOnce(text)
		if out == text {
			return out
		}
		text = out
	}
}

func stripOnce(text string) string {
	if !strings.ContainsRune(text, SectionSign) {
		return text
	}
	src := []rune(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(src); i++ {
		r := src[i]
		if r != SectionSign || i+1 >= len(src) {
			sb.WriteRune(r)
			continue
		}
		if _, n, ok := ParseHexColor(src, i); ok {
			i += n - 1
			continue
		}
		if isLegacyCode(src[i+1]) {
			i++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
