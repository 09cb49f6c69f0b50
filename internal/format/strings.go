package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TruncateWithEllipsis truncates s to at most maxWidth terminal cells,
// appending "…" when something was cut. Wide runes count as two cells.
// If maxWidth is less than 2 the string is hard-truncated without a tail.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 2 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TitleCase upper-cases the first letter of s, leaving the rest alone.
// Names that already carry a capital are returned as given: "ubuntu"
// becomes "Ubuntu"; "macOS" is unchanged.
func TitleCase(s string) string {
	if s == "" || strings.IndexFunc(s, unicode.IsUpper) >= 0 {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
