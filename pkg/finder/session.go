// ABOUTME: Session orchestrates the query, the ranked match list, and the view.
// ABOUTME: Every query edit triggers a full synchronous re-rank; no incremental reuse.

package finder

import (
	"sort"

	"fuzzyfind/internal/log"
	"fuzzyfind/pkg/finder/view"
)

// Session holds the state of one interactive selection: the immutable item
// set, the current query, the ranked matches for that query, and the
// scrolling view tracking the selection. It processes one event at a time
// on the calling goroutine; it is not safe for concurrent use.
type Session[T any] struct {
	items   []Item[T]
	query   []rune
	matches []Scored[T]
	view    *view.Scrolling[Scored[T]]
	scorer  Scorer
}

// NewSession creates a Session over items with a window of capacity rows.
// Panics if capacity < 1. A nil scorer selects the default FuzzyScorer.
func NewSession[T any](items []Item[T], capacity int, scorer Scorer) *Session[T] {
	if scorer == nil {
		scorer = NewFuzzyScorer()
	}
	s := &Session[T]{
		items:  items,
		view:   view.NewScrolling[Scored[T]](capacity),
		scorer: scorer,
	}
	s.rerank()
	return s
}

// Query returns the current query text.
func (s *Session[T]) Query() string {
	return string(s.query)
}

// Capacity returns the number of rows the window can display.
func (s *Session[T]) Capacity() int {
	return s.view.Capacity()
}

// MatchCount returns the number of items matching the current query.
func (s *Session[T]) MatchCount() int {
	return len(s.matches)
}

// AppendRune appends a typed character to the query and re-ranks.
func (s *Session[T]) AppendRune(r rune) {
	s.query = append(s.query, r)
	s.rerank()
}

// Backspace removes the last character of the query, if any, and re-ranks.
func (s *Session[T]) Backspace() {
	if len(s.query) == 0 {
		return
	}
	s.query = s.query[:len(s.query)-1]
	s.rerank()
}

// MoveUp moves the selection one entry away from the best match.
func (s *Session[T]) MoveUp() {
	s.view.Up()
}

// MoveDown moves the selection one entry toward the best match.
func (s *Session[T]) MoveDown() {
	s.view.Down()
}

// Window renders the current window over the ranked matches. The view
// clamps any selection state left over from a longer or differently
// ordered list.
func (s *Session[T]) Window() view.Window[Scored[T]] {
	return s.view.Render(s.matches)
}

// Confirm returns the payload of the currently selected match. ok is
// false when nothing matches the query.
func (s *Session[T]) Confirm() (payload T, ok bool) {
	if len(s.matches) == 0 {
		var zero T
		return zero, false
	}
	sel, ok := s.view.Render(s.matches).Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return sel.Item.Payload, true
}

// rerank rebuilds the ranked match list from scratch: every item is scored
// against the current query, non-matches are dropped, and the rest are
// sorted by descending score. The sort is stable so ties keep input order.
func (s *Session[T]) rerank() {
	query := string(s.query)
	s.matches = s.matches[:0]
	for _, it := range s.items {
		score, positions, ok := s.scorer.Score(it.Label, query)
		if !ok {
			continue
		}
		s.matches = append(s.matches, it.WithScore(score, positions))
	}
	sort.SliceStable(s.matches, func(i, j int) bool {
		return s.matches[i].Score > s.matches[j].Score
	})

	log.Debug("ranked %d of %d item(s) for query %q", len(s.matches), len(s.items), query)
}
