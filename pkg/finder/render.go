// ABOUTME: Draws the match window and query prompt in place on the terminal.
// ABOUTME: Reserves a region below the invocation row and repaints it per event.

package finder

import (
	"fmt"
	"strings"

	"fuzzyfind/pkg/finder/view"
	"fuzzyfind/pkg/term"
	"fuzzyfind/pkg/theme"
	"fuzzyfind/pkg/width"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\x1b[2K"
)

// renderer owns a region of capacity+1 terminal rows: the match window on
// top, the query prompt on the bottom line. Frames are written in one
// Write call so a slow terminal never shows a half-painted region.
type renderer[T any] struct {
	t        term.Terminal
	capacity int
	pal      theme.Palette
	startRow int // 1-based first row of the region
	width    int
}

func newRenderer[T any](t term.Terminal, capacity int, pal theme.Palette) *renderer[T] {
	return &renderer[T]{t: t, capacity: capacity, pal: pal}
}

// init measures the terminal, makes room for the region below the current
// cursor row (scrolling the screen when the cursor sits too close to the
// bottom), and records where the region starts.
func (r *renderer[T]) init() error {
	w, h, err := r.t.Size()
	if err != nil {
		return err
	}
	r.width = w

	row, _, err := r.t.CursorPos()
	if err != nil {
		return err
	}

	// The region occupies rows row..row+capacity. Emitting newlines at
	// the bottom scrolls existing content up by exactly the overflow.
	if _, err := r.t.Write([]byte(strings.Repeat("\r\n", r.capacity))); err != nil {
		return err
	}
	scrolled := max(0, row+r.capacity-h)
	r.startRow = max(1, row-scrolled)
	return nil
}

// draw repaints the whole region: blank filler rows, the window rows in
// display order, then the prompt line. The cursor ends up right after the
// query text so typing feedback lands where the user is looking.
func (r *renderer[T]) draw(win view.Window[Scored[T]], query string) error {
	var b strings.Builder
	b.WriteString(hideCursor)
	fmt.Fprintf(&b, "\x1b[%d;1H", r.startRow)

	for i := win.Len(); i < r.capacity; i++ {
		b.WriteString(clearLine)
		b.WriteString("\r\n")
	}
	for _, row := range win.Rows() {
		b.WriteString(clearLine)
		b.WriteString(r.formatRow(row))
		b.WriteString("\r\n")
	}

	b.WriteString(clearLine)
	b.WriteString(r.pal.Prompt.Apply("$"))
	b.WriteString(" ")
	b.WriteString(query)
	b.WriteString(showCursor)

	_, err := r.t.Write([]byte(b.String()))
	return err
}

// formatRow styles one match row: a marker gutter, then the label with the
// scorer's matched positions highlighted. Positions outside the label are
// skipped; the scorer's offsets are advisory, not trusted.
func (r *renderer[T]) formatRow(row view.Row[Scored[T]]) string {
	label := row.Entry.Item.Label
	matched := make(map[int]bool, len(row.Entry.MatchedIndexes))
	for _, idx := range row.Entry.MatchedIndexes {
		if idx >= 0 && idx < len(label) {
			matched[idx] = true
		}
	}

	var b strings.Builder
	if row.Selected {
		b.WriteString(r.pal.Marker.Apply(">"))
	} else {
		b.WriteString(r.pal.Muted.Apply(" "))
	}
	b.WriteString("  ")

	for i, ch := range label {
		s := string(ch)
		switch {
		case matched[i]:
			b.WriteString(r.pal.Match.Apply(s))
		case row.Selected:
			b.WriteString(r.pal.Selection.Apply(s))
		default:
			b.WriteString(s)
		}
	}
	return width.Truncate(b.String(), r.width)
}

// cleanup erases the region and parks the cursor on its first row, so the
// shell prompt reappears where the widget was invoked. Rows are addressed
// explicitly; a trailing newline on the bottom screen row would scroll.
func (r *renderer[T]) cleanup() error {
	var b strings.Builder
	for i := 0; i <= r.capacity; i++ {
		fmt.Fprintf(&b, "\x1b[%d;1H", r.startRow+i)
		b.WriteString(clearLine)
	}
	fmt.Fprintf(&b, "\x1b[%d;1H", r.startRow)
	b.WriteString(showCursor)
	_, err := r.t.Write([]byte(b.String()))
	return err
}
