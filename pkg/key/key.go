// ABOUTME: Key type and ParseKey for decoding raw terminal input bytes.
// ABOUTME: Handles printable runes, control characters, and escape sequences.

package key

import "unicode/utf8"

// Key is a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // for KeyRune
	Alt  bool
}

// KeyType enumerates the kinds of key events the finder can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // printable character
	KeyEnter                    // Enter / Return
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // arrow up
	KeyDown                     // arrow down
	KeyLeft                     // arrow left
	KeyRight                    // arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // lone Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyUnknown                  // unrecognized input
)

// ParseKey parses raw terminal input into a Key. It handles single bytes,
// multi-byte UTF-8 runes, and ESC-prefixed sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseSingleByte(b byte) Key {
	switch b {
	case 0x0d, 0x0a:
		return Key{Type: KeyEnter}
	case 0x7f, 0x08:
		return Key{Type: KeyBackspace}
	case 0x1b:
		return Key{Type: KeyEscape}
	case 0x03:
		return Key{Type: KeyCtrlC}
	case 0x04:
		return Key{Type: KeyCtrlD}
	}
	if b >= 0x20 && b <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte. '[' and 'O'
	// are excluded: they introduce CSI and SS3 sequences, and claiming
	// them would misread a sequence whose tail has not arrived yet.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e && data[1] != '[' && data[1] != 'O' {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return "Alt+" + string(k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
