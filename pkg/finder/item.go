// ABOUTME: Item and Scored value types: a labeled payload and its scored variant.
// ABOUTME: Plain data construction, no validation; consumers bounds-check positions.

package finder

// Item is a labeled payload eligible for selection. The label is what the
// user sees and what the scorer matches against; the payload travels with
// it untouched.
type Item[T any] struct {
	Label   string
	Payload T
}

// NewItem creates an Item. An empty label is valid.
func NewItem[T any](label string, payload T) Item[T] {
	return Item[T]{Label: label, Payload: payload}
}

// WithScore annotates the item with a match score and the byte offsets of
// the matched characters within the label. The positions are taken as-is:
// a misbehaving scorer is tolerated at render time, not here.
func (it Item[T]) WithScore(score int, positions []int) Scored[T] {
	return Scored[T]{Item: it, Score: score, MatchedIndexes: positions}
}

// Scored is an Item annotated with a match rank. A fresh generation is
// built on every re-rank; nothing is carried over between queries.
type Scored[T any] struct {
	Item           Item[T]
	Score          int
	MatchedIndexes []int
}
