// ABOUTME: Defines the View interface and the Window projection returned by Render.
// ABOUTME: A Window is empty or splits visible entries into above/selected/below.

package view

// View is a selection window over an ordered match list. Implementations
// track which entry is selected and which slice of the list is visible.
// Render must tolerate a list of any length, including one that differs
// from the list used on the previous call: stale positions are clamped
// back into range, never reported as errors.
type View[T any] interface {
	// Up moves the selection one entry toward the end of the list
	// (visually upward). Saturates at the window's reach.
	Up()

	// Down moves the selection one entry toward the start of the list
	// (visually downward). Saturates at the first entry.
	Down()

	// Render projects the current selection state onto items.
	Render(items []T) Window[T]
}

// Window is a read-only projection of the visible slice of a match list.
// The zero value is the empty window.
type Window[T any] struct {
	// Above holds entries displayed above the selection, ordered
	// nearest-to-farthest from it. Below is symmetric.
	Above []T
	Below []T

	selected    T
	hasSelected bool
}

// newWindow builds a non-empty window.
func newWindow[T any](above []T, selected T, below []T) Window[T] {
	return Window[T]{
		Above:       above,
		Below:       below,
		selected:    selected,
		hasSelected: true,
	}
}

// Selected returns the selected entry. ok is false for the empty window.
func (w Window[T]) Selected() (entry T, ok bool) {
	return w.selected, w.hasSelected
}

// NumAbove returns the number of entries displayed above the selection.
func (w Window[T]) NumAbove() int {
	return len(w.Above)
}

// Len returns the total number of visible entries.
func (w Window[T]) Len() int {
	if !w.hasSelected {
		return 0
	}
	return len(w.Above) + 1 + len(w.Below)
}

// Row is one display line of a window.
type Row[T any] struct {
	Entry    T
	Selected bool
}

// Rows returns the window's entries in display order, top to bottom.
// The best-ranked entries sit at the bottom, nearest the prompt.
func (w Window[T]) Rows() []Row[T] {
	if !w.hasSelected {
		return nil
	}
	rows := make([]Row[T], 0, w.Len())
	for i := len(w.Above) - 1; i >= 0; i-- {
		rows = append(rows, Row[T]{Entry: w.Above[i]})
	}
	rows = append(rows, Row[T]{Entry: w.selected, Selected: true})
	for _, e := range w.Below {
		rows = append(rows, Row[T]{Entry: e})
	}
	return rows
}
