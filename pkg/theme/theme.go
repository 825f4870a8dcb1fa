// ABOUTME: Semantic color theme types: Color, Palette, Theme.
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps finder roles to colors.

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Palette holds the colors for every role the finder draws.
type Palette struct {
	// Prompt styles the "$" marker on the query line.
	Prompt Color
	// Marker styles the ">" pointer on the selected row.
	Marker Color
	// Selection is the background wash of the selected row.
	Selection Color
	// Match highlights the characters the query matched.
	Match Color
	// Muted styles the gutter of unselected rows.
	Muted Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the stock finder colors.
func DefaultPalette() Palette {
	return Palette{
		Prompt:    NewColor("\x1b[34m"),
		Marker:    NewColor("\x1b[32m"),
		Selection: NewColor("\x1b[48;5;236m"),
		Match:     NewColor("\x1b[48;5;24m"),
		Muted:     NewColor("\x1b[2m"),
	}
}
