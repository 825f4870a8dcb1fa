// ABOUTME: Top-level entry points for running an interactive fuzzy selection.
// ABOUTME: Owns raw mode, the key event loop, and wiring session to renderer.

package finder

import (
	"errors"
	"io"
	"os"
	"time"

	"fuzzyfind/internal/log"
	"fuzzyfind/pkg/input"
	"fuzzyfind/pkg/key"
	"fuzzyfind/pkg/term"
	"fuzzyfind/pkg/theme"
)

// DefaultLines is the window capacity used when the caller passes none.
const DefaultLines = 8

// Options configures a selection run. The zero value is usable: it selects
// the process terminal, the default scorer, the current theme's palette,
// and DefaultLines rows.
type Options struct {
	// Lines is the window capacity in rows. Values < 1 mean DefaultLines.
	Lines int

	// Scorer ranks labels against the query. Nil means FuzzyScorer.
	Scorer Scorer

	// Terminal is the render target. Nil means the process terminal on
	// stdin/stdout.
	Terminal term.Terminal

	// Input supplies raw key bytes. Nil means the terminal's input when
	// Terminal is nil, os.Stdin otherwise.
	Input io.Reader

	// EscTimeout bounds how long a lone ESC byte is held before being
	// reported as the Escape key. Zero means input.DefaultEscTimeout.
	EscTimeout time.Duration

	// Palette overrides the current theme's palette when non-nil.
	Palette *theme.Palette
}

// Find runs an interactive selection over items on the process terminal
// with a window of lines rows. It returns the chosen payload, or ok=false
// when the user cancelled or confirmed an empty match list.
func Find[T any](items []Item[T], lines int) (T, bool, error) {
	t := term.NewProcessTerminal()
	return FindWith(items, Options{Lines: lines, Terminal: t, Input: t.Input()})
}

// FindWith runs an interactive selection with explicit collaborators. The
// terminal is switched to raw mode for the duration of the call and
// restored before returning, also on panic.
func FindWith[T any](items []Item[T], opts Options) (payload T, ok bool, err error) {
	var zero T
	if opts.Lines < 1 {
		opts.Lines = DefaultLines
	}
	if opts.Terminal == nil {
		pt := term.NewProcessTerminal()
		opts.Terminal = pt
		if opts.Input == nil {
			opts.Input = pt.Input()
		}
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	pal := theme.Current().Palette
	if opts.Palette != nil {
		pal = *opts.Palette
	}

	t := opts.Terminal
	if err := t.EnterRawMode(); err != nil {
		return zero, false, err
	}
	defer term.RestoreOnPanic(t)
	defer func() {
		if rerr := t.ExitRawMode(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	// Never ask for more rows than the screen has; leave one row for the
	// shell prompt above and one below.
	if _, h, serr := t.Size(); serr == nil && opts.Lines+1 >= h {
		opts.Lines = max(1, h-2)
	}

	r := newRenderer[T](t, opts.Lines, pal)
	if err := r.init(); err != nil {
		return zero, false, err
	}
	defer func() {
		if cerr := r.cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	session := NewSession(items, opts.Lines, opts.Scorer)
	if err := r.draw(session.Window(), session.Query()); err != nil {
		return zero, false, err
	}

	keys := input.NewReader(opts.Input, opts.EscTimeout)
	defer keys.Close()
	for {
		k, kerr := keys.Next()
		if kerr != nil {
			if errors.Is(kerr, io.EOF) {
				log.Debug("input closed, treating as cancel")
				return zero, false, nil
			}
			return zero, false, kerr
		}

		switch k.Type {
		case key.KeyRune:
			if k.Alt {
				continue
			}
			session.AppendRune(k.Rune)
		case key.KeyBackspace:
			session.Backspace()
		case key.KeyUp:
			session.MoveUp()
		case key.KeyDown:
			session.MoveDown()
		case key.KeyEnter:
			payload, ok := session.Confirm()
			return payload, ok, nil
		case key.KeyEscape, key.KeyCtrlC, key.KeyCtrlD:
			return zero, false, nil
		default:
			continue
		}

		if err := r.draw(session.Window(), session.Query()); err != nil {
			return zero, false, err
		}
	}
}
