// ABOUTME: Defines the Terminal interface for raw mode, geometry, and output.
// ABOUTME: Abstracts terminal operations so the finder can target real or virtual terminals.

package term

// Terminal abstracts the low-level terminal operations the finder needs:
// raw mode as a scoped resource, geometry queries, and output writing.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	// CursorPos reports the cursor position, 1-based. Only meaningful
	// while raw mode is active.
	CursorPos() (row, col int, err error)
	Write(p []byte) (n int, err error)
}
