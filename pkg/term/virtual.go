// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output in a buffer and tracks raw-mode enter/exit calls.

package term

import (
	"bytes"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. It records written
// output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	cursorRow  int
	cursorCol  int
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
// The cursor starts at the top-left (1,1).
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:     width,
		height:    height,
		cursorRow: 1,
		cursorCol: 1,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// CursorPos returns the configured cursor position.
func (v *VirtualTerminal) CursorPos() (row, col int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cursorRow, v.cursorCol, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.Write(p)
}

// --- Test helpers (not part of the Terminal interface) ---

// SetCursorPos positions the cursor reported by CursorPos.
func (v *VirtualTerminal) SetCursorPos(row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cursorRow = row
	v.cursorCol = col
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
