package colorcode

import "strings"

// ToHTML converts formatted text to HTML. Runs with a colour or decoration
// are wrapped in a styled span; plain runs are emitted bare.
func ToHTML(text string) string {
	var sb strings.Builder
	for _, run := range Parse(text) {
		if run.Style.IsPlain() {
			writeEscaped(&sb, run.Text)
			continue
		}
		sb.WriteString(`<span style="`)
		sb.WriteString(styleAttr(run.Style))
		sb.WriteString(`">`)
		writeEscaped(&sb, run.Text)
		sb.WriteString("</span>")
	}
	return sb.String()
}

func styleAttr(s Style) string {
	var parts []string
	if s.HasColor {
		parts = append(parts, "color: "+s.Color.Hex())
	}
	if s.Format.Has(Bold) {
		parts = append(parts, "font-weight: bold")
	}
	if s.Format.Has(Italic) {
		parts = append(parts, "font-style: italic")
	}
	switch {
	case s.Format.Has(Underline | Strikethrough):
		parts = append(parts, "text-decoration: underline line-through")
	case s.Format.Has(Underline):
		parts = append(parts, "text-decoration: underline")
	case s.Format.Has(Strikethrough):
		parts = append(parts, "text-decoration: line-through")
	}
	return strings.Join(parts, "; ")
}

func writeEscaped(sb *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case ' ':
			sb.WriteString("&nbsp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		case '\n':
			sb.WriteString("<br>")
		default:
			sb.WriteRune(r)
		}
	}
}
