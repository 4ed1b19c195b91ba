// Package encoding provides text and payload decoding helpers for server
// status data.
package encoding

import (
	"bytes"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dropControls removes control characters other than newline.
var dropControls = runes.Remove(runes.Predicate(func(r rune) bool {
	return r != '\n' && unicode.IsControl(r)
}))

// NormalizeText prepares display text for the bitmap font: CRLF and lone CR
// become LF, other control characters are dropped and the result is NFC
// composed so accented letters map onto single glyphs.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	t := transform.Chain(dropControls, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return norm.NFC.String(s)
	}
	return out
}

// Lines splits normalized text into at most n lines. n <= 0 means no limit.
func Lines(s string, n int) []string {
	lines := strings.Split(NormalizeText(s), "\n")
	if n > 0 && len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// UTF16BEToUTF8 decodes big-endian UTF-16, the string encoding of legacy
// server list responses. Returns the input as-is if decoding fails.
func UTF16BEToUTF8(data []byte) string {
	dec := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM).NewDecoder()
	result, _, err := transform.Bytes(dec, data)
	if err != nil {
		return string(data)
	}
	return TrimNullString(result)
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// TrimNullString removes trailing null bytes and converts to string.
func TrimNullString(data []byte) string {
	return string(TrimNullBytes(data))
}
