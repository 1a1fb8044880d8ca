package crypto

import "strings"

// Markers used by ForDisplay.
const (
	SpaceMarker     = "&nbsp;"
	LineBreakMarker = "<br>"
)

// ForDisplay rewrites decoded text for markup rendering so that runs of
// spaces and line breaks stay visible. Apply it once, to output only; the
// result is not valid cipher input.
func ForDisplay(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case ' ':
			b.WriteString(SpaceMarker)
		case '\n', '\r':
			b.WriteString(LineBreakMarker)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
