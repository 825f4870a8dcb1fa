// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and reports the stack.
// ABOUTME: Intended as a deferred call wherever raw mode is held.

package term

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred by whoever owns the terminal while
// raw mode is active. On panic it shows the cursor, exits raw mode via t,
// prints the panic value and stack trace to stderr, then re-panics so the
// process still fails loudly.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort cleanup; the terminal may already be gone.
	_, _ = t.Write([]byte("\x1b[?25h"))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	panic(r)
}
