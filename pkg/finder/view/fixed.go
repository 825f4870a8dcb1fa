// ABOUTME: Fixed view: the window is anchored at the start of the match list.
// ABOUTME: Only the top capacity matches are ever reachable by the selection.

package view

// Fixed is a View anchored at the head of the match list. The selection
// moves within the top capacity entries and the window never pans.
type Fixed[T any] struct {
	capacity int
	index    int
}

// NewFixed returns a Fixed view showing up to capacity rows.
// Panics if capacity < 1: a zero-row window is a programmer error.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 1 {
		panic("view: capacity must be at least 1")
	}
	return &Fixed[T]{capacity: capacity}
}

// Capacity returns the fixed number of rows the window can display.
func (v *Fixed[T]) Capacity() int {
	return v.capacity
}

// Up moves the selection toward the end of the reachable entries,
// saturating at the top row.
func (v *Fixed[T]) Up() {
	if v.index+1 < v.capacity {
		v.index++
	}
}

// Down moves the selection toward the best match, saturating at zero.
func (v *Fixed[T]) Down() {
	if v.index > 0 {
		v.index--
	}
}

// Render projects the selection onto items. If the list shrank since the
// previous call the index is clamped to the last entry before rendering.
func (v *Fixed[T]) Render(items []T) Window[T] {
	if len(items) == 0 {
		v.index = 0
		return Window[T]{}
	}

	if v.index+1 > len(items) {
		v.index = len(items) - 1
	}

	below := make([]T, 0, v.index)
	for i := v.index - 1; i >= 0; i-- {
		below = append(below, items[i])
	}

	var above []T
	for i := v.index + 1; i < v.capacity && i < len(items); i++ {
		above = append(above, items[i])
	}

	return newWindow(above, items[v.index], below)
}
