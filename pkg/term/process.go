// ABOUTME: ProcessTerminal implements Terminal on the process TTY via golang.org/x/term.
// ABOUTME: Manages raw mode state and answers cursor position via a DSR query.

package term

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a TTY file pair and x/term.
// Input and output default to os.Stdin and os.Stdout.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal on stdin/stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{in: os.Stdin, out: os.Stdout}
}

// NewTTYTerminal returns a ProcessTerminal on an explicit TTY file, used
// when stdin carries piped data rather than the keyboard.
func NewTTYTerminal(tty *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: tty, out: tty}
}

// Input returns the file key events should be read from.
func (t *ProcessTerminal) Input() *os.File {
	return t.in
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state. Calling it
// without a prior EnterRawMode is a no-op, so it is safe to defer on
// every exit path.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// CursorPos queries the terminal with DSR (ESC [ 6 n) and parses the
// ESC [ row ; col R report from the input. Raw mode must be active and
// no other reader may be consuming the input while the query runs.
func (t *ProcessTerminal) CursorPos() (row, col int, err error) {
	if _, err := t.out.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("writing cursor query: %w", err)
	}

	// Read byte-wise up to the final 'R'. The response is short; a
	// bounded loop guards against a terminal that never answers with
	// a well-formed report.
	var resp []byte
	b := make([]byte, 1)
	for len(resp) < 32 {
		if _, err := t.in.Read(b); err != nil {
			return 0, 0, fmt.Errorf("reading cursor report: %w", err)
		}
		resp = append(resp, b[0])
		if b[0] == 'R' {
			break
		}
	}

	if _, err := fmt.Sscanf(string(resp), "\x1b[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor report %q: %w", resp, err)
	}
	return row, col, nil
}

// Write sends bytes to the terminal.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
