// ABOUTME: Tests for Color application, builtins, the global pointer, and the loader.
// ABOUTME: Loader tests use temp files for valid, partial, and malformed themes.

package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestColorApply(t *testing.T) {
	t.Parallel()

	c := NewColor("\x1b[32m")
	if got := c.Apply("ok"); got != "\x1b[32mok\x1b[0m" {
		t.Errorf("Apply() = %q", got)
	}

	empty := NewColor("")
	if got := empty.Apply("ok"); got != "ok" {
		t.Errorf("empty color Apply() = %q, want unchanged", got)
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) = nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
	}

	if Builtin("nope") != nil {
		t.Error("expected nil for unknown builtin")
	}
}

func TestGlobalSetAndCurrent(t *testing.T) {
	saved := Current()
	defer Set(saved)

	mono := Builtin("monochrome")
	Set(mono)
	if Current() != mono {
		t.Error("Current() did not return the theme just set")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.json")
	data := `{"name":"custom","palette":{"marker":"\u001b[35m"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q, want %q", th.Name, "custom")
	}
	if th.Palette.Marker.Code() != "\x1b[35m" {
		t.Errorf("Marker = %q, want overridden color", th.Palette.Marker.Code())
	}
	// Unset fields inherit the defaults.
	if th.Palette.Prompt.Code() != DefaultPalette().Prompt.Code() {
		t.Errorf("Prompt = %q, want default", th.Palette.Prompt.Code())
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "parsing theme file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
