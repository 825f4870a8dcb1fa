// ABOUTME: ANSI-aware truncation of styled text to a column budget.
// ABOUTME: Escape sequences are preserved so styling stays balanced after the cut.

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate cuts s to at most maxWidth visible columns. When a cut happens
// the last visible cell becomes an ellipsis and styling is reset first, so
// a color opened before the cut cannot bleed past the line.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Visible(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1 // room for the ellipsis
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune('…')
	return b.String()
}
