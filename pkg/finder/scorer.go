// ABOUTME: Scorer interface and the default implementation over sahilm/fuzzy.
// ABOUTME: An empty query matches everything with score zero, preserving input order.

package finder

import "github.com/sahilm/fuzzy"

// Scorer ranks a candidate label against a query. ok is false when the
// label does not match at all and must be excluded. positions are byte
// offsets of the matched characters within label, strictly increasing.
// Implementations must be pure, synchronous, and stateless.
type Scorer interface {
	Score(label, query string) (score int, positions []int, ok bool)
}

// FuzzyScorer is the default Scorer, backed by sahilm/fuzzy.
type FuzzyScorer struct{}

// NewFuzzyScorer returns the default fuzzy Scorer.
func NewFuzzyScorer() FuzzyScorer {
	return FuzzyScorer{}
}

// Score matches label against query. The empty query matches every label
// with score zero and no highlighted positions, so an untyped prompt shows
// all items in their original order.
func (FuzzyScorer) Score(label, query string) (int, []int, bool) {
	if query == "" {
		return 0, nil, true
	}
	results := fuzzy.Find(query, []string{label})
	if len(results) == 0 {
		return 0, nil, false
	}
	return results[0].Score, results[0].MatchedIndexes, true
}
