// ABOUTME: Display width measurement for styled terminal text.
// ABOUTME: ANSI sequences count zero columns; graphemes may span two cells.

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the display width of s in terminal columns. ANSI escape
// sequences contribute zero width; grapheme clusters may be wider than one
// cell for East Asian characters and emoji.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}

	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// isPlainASCII reports whether s contains only printable ASCII, which lets
// Visible skip grapheme segmentation entirely.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster,
// taken from its first rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
