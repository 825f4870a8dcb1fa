// ABOUTME: JSON theme file loading with default fallback.
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness.

package theme

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonTheme is the file representation of a Theme. Color values are raw
// ANSI escape codes; empty fields inherit the default palette.
type jsonTheme struct {
	Name    string `json:"name"`
	Palette struct {
		Prompt    string `json:"prompt"`
		Marker    string `json:"marker"`
		Selection string `json:"selection"`
		Match     string `json:"match"`
		Muted     string `json:"muted"`
	} `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme. Missing palette
// fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p := DefaultPalette()
	if jt.Palette.Prompt != "" {
		p.Prompt = NewColor(jt.Palette.Prompt)
	}
	if jt.Palette.Marker != "" {
		p.Marker = NewColor(jt.Palette.Marker)
	}
	if jt.Palette.Selection != "" {
		p.Selection = NewColor(jt.Palette.Selection)
	}
	if jt.Palette.Match != "" {
		p.Match = NewColor(jt.Palette.Match)
	}
	if jt.Palette.Muted != "" {
		p.Muted = NewColor(jt.Palette.Muted)
	}

	return &Theme{Name: jt.Name, Palette: p}, nil
}
