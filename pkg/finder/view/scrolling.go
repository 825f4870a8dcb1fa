// ABOUTME: Scrolling view: the selection can reach any match; the window pans.
// ABOUTME: Once the cursor hits the top row, further Up calls scroll the list instead.

package view

// Scrolling is a View whose window pans across the entire match list.
// index is the selected row's position within the visible slice and skip
// is the number of leading matches hidden above the window.
type Scrolling[T any] struct {
	capacity int
	index    int
	skip     int
}

// NewScrolling returns a Scrolling view showing up to capacity rows.
// Panics if capacity < 1: a zero-row window is a programmer error.
func NewScrolling[T any](capacity int) *Scrolling[T] {
	if capacity < 1 {
		panic("view: capacity must be at least 1")
	}
	return &Scrolling[T]{capacity: capacity}
}

// Capacity returns the fixed number of rows the window can display.
func (v *Scrolling[T]) Capacity() int {
	return v.capacity
}

// Up moves the selection toward the end of the list. While there is room
// within the window the cursor row moves; at the top row the window pans.
func (v *Scrolling[T]) Up() {
	if v.index+1 < v.capacity {
		v.index++
	} else {
		v.skip++
	}
}

// Down is symmetric to Up: the cursor row moves until it reaches the
// bottom, then the window pans back, floored at the start of the list.
func (v *Scrolling[T]) Down() {
	if v.index > 0 {
		v.index--
	} else if v.skip > 0 {
		v.skip--
	}
}

// Render projects the selection onto items. The list may have changed
// arbitrarily since the previous call: skip is pulled back so the window
// does not hang past the end of the list, then index is clamped so the
// selection stays on a real entry. Out-of-range state is repaired, never
// reported.
func (v *Scrolling[T]) Render(items []T) Window[T] {
	if len(items) == 0 {
		v.index = 0
		v.skip = 0
		return Window[T]{}
	}

	if v.skip+v.capacity > len(items) {
		v.skip = max(0, len(items)-v.capacity)
	}
	if v.skip+v.index+1 > len(items) {
		v.index = len(items) - v.skip - 1
	}

	visible := items[v.skip:]

	below := make([]T, 0, v.index)
	for i := v.index - 1; i >= 0; i-- {
		below = append(below, visible[i])
	}

	var above []T
	for i := v.index + 1; i < v.capacity && i < len(visible); i++ {
		above = append(above, visible[i])
	}

	return newWindow(above, visible[v.index], below)
}
