// ABOUTME: Built-in themes: default and monochrome.
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration.

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Prompt:    NewColor("\x1b[1m"),
			Marker:    NewColor("\x1b[1m"),
			Selection: NewColor("\x1b[7m"),
			Match:     NewColor("\x1b[4m"),
			Muted:     NewColor("\x1b[2m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "monochrome"}
}
