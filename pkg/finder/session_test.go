// ABOUTME: Tests for Session: re-ranking, query edits, selection, confirm.
// ABOUTME: Uses a deterministic stub scorer so rankings are fully controlled.

package finder

import (
	"strings"
	"testing"
)

// substrScorer matches labels containing the query as a substring and
// scores them by a fixed table, defaulting to zero.
type substrScorer struct {
	scores map[string]int
}

func (s substrScorer) Score(label, query string) (int, []int, bool) {
	if query == "" {
		return 0, nil, true
	}
	idx := strings.Index(label, query)
	if idx < 0 {
		return 0, nil, false
	}
	positions := make([]int, len(query))
	for i := range positions {
		positions[i] = idx + i
	}
	return s.scores[label], positions, true
}

func stringItems(labels ...string) []Item[string] {
	items := make([]Item[string], len(labels))
	for i, l := range labels {
		items[i] = NewItem(l, l)
	}
	return items
}

func TestSession_EmptyQueryShowsAllInInputOrder(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("alpha", "beta", "gamma"), 5, substrScorer{})

	if got := s.MatchCount(); got != 3 {
		t.Fatalf("MatchCount() = %d, want 3", got)
	}
	win := s.Window()
	sel, ok := win.Selected()
	if !ok || sel.Item.Label != "alpha" {
		t.Errorf("Selected() = %q, %v, want alpha, true", sel.Item.Label, ok)
	}
	if got := win.NumAbove(); got != 2 {
		t.Errorf("NumAbove() = %d, want 2", got)
	}
}

func TestSession_TypingReRanksByScore(t *testing.T) {
	t.Parallel()

	scorer := substrScorer{scores: map[string]int{
		"internal/app": 10,
		"cmd/app":      50,
		"app.go":       30,
	}}
	s := NewSession(stringItems("internal/app", "cmd/app", "app.go", "readme"), 5, scorer)

	for _, r := range "app" {
		s.AppendRune(r)
	}

	if got := s.Query(); got != "app" {
		t.Fatalf("Query() = %q, want %q", got, "app")
	}
	if got := s.MatchCount(); got != 3 {
		t.Fatalf("MatchCount() = %d, want 3", got)
	}
	sel, _ := s.Window().Selected()
	if sel.Item.Label != "cmd/app" {
		t.Errorf("selected %q, want cmd/app (highest score)", sel.Item.Label)
	}
}

func TestSession_TieBreakKeepsInputOrder(t *testing.T) {
	t.Parallel()

	// All scores equal: the stable sort must keep input order.
	s := NewSession(stringItems("first", "firm", "fir"), 5, substrScorer{})
	for _, r := range "fir" {
		s.AppendRune(r)
	}

	win := s.Window()
	sel, _ := win.Selected()
	if sel.Item.Label != "first" {
		t.Errorf("selected %q, want first (input order on ties)", sel.Item.Label)
	}
	want := []string{"firm", "fir"}
	if len(win.Above) != len(want) {
		t.Fatalf("len(Above) = %d, want %d", len(win.Above), len(want))
	}
	for i, l := range want {
		if win.Above[i].Item.Label != l {
			t.Errorf("Above[%d] = %q, want %q", i, win.Above[i].Item.Label, l)
		}
	}
}

func TestSession_NoMatches(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("alpha", "beta"), 5, substrScorer{})
	for _, r := range "zzz" {
		s.AppendRune(r)
	}

	if got := s.MatchCount(); got != 0 {
		t.Fatalf("MatchCount() = %d, want 0", got)
	}
	if got := s.Window().Len(); got != 0 {
		t.Errorf("Window().Len() = %d, want 0", got)
	}
	if _, ok := s.Confirm(); ok {
		t.Error("Confirm() ok = true for empty match list, want false")
	}
}

func TestSession_BackspaceRestoresMatches(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("alpha", "beta"), 5, substrScorer{})
	s.AppendRune('x')
	if got := s.MatchCount(); got != 0 {
		t.Fatalf("after 'x': MatchCount() = %d, want 0", got)
	}

	s.Backspace()
	if got := s.MatchCount(); got != 2 {
		t.Errorf("after backspace: MatchCount() = %d, want 2", got)
	}
	if got := s.Query(); got != "" {
		t.Errorf("Query() = %q, want empty", got)
	}

	// Backspace on an empty query is a no-op.
	s.Backspace()
	if got := s.MatchCount(); got != 2 {
		t.Errorf("after extra backspace: MatchCount() = %d, want 2", got)
	}
}

func TestSession_ConfirmAfterMove(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("alpha", "beta", "gamma"), 5, substrScorer{})
	s.MoveUp()

	payload, ok := s.Confirm()
	if !ok || payload != "beta" {
		t.Errorf("Confirm() = %q, %v, want beta, true", payload, ok)
	}

	s.MoveDown()
	payload, ok = s.Confirm()
	if !ok || payload != "alpha" {
		t.Errorf("after MoveDown: Confirm() = %q, %v, want alpha, true", payload, ok)
	}
}

func TestSession_SelectionClampedWhenMatchesShrink(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("aa", "ab", "ac", "b"), 5, substrScorer{})
	s.MoveUp()
	s.MoveUp()
	s.MoveUp() // selection on "b", the farthest entry

	s.AppendRune('a') // only aa, ab, ac remain

	sel, ok := s.Window().Selected()
	if !ok {
		t.Fatal("Window().Selected() ok = false, want true")
	}
	if sel.Item.Label != "ac" {
		t.Errorf("selected %q, want ac (clamped to last match)", sel.Item.Label)
	}
}

func TestSession_NilScorerUsesFuzzyDefault(t *testing.T) {
	t.Parallel()

	s := NewSession(stringItems("main.go", "main_test.go", "readme.md"), 5, nil)
	for _, r := range "main" {
		s.AppendRune(r)
	}

	if got := s.MatchCount(); got != 2 {
		t.Fatalf("MatchCount() = %d, want 2", got)
	}
	if _, ok := s.Confirm(); !ok {
		t.Error("Confirm() ok = false, want true")
	}
}

func TestSession_ReRankIsDeterministic(t *testing.T) {
	t.Parallel()

	items := stringItems("one", "two", "three", "four")
	a := NewSession(items, 4, substrScorer{})
	b := NewSession(items, 4, substrScorer{})
	for _, r := range "o" {
		a.AppendRune(r)
		b.AppendRune(r)
	}

	wa, wb := a.Window(), b.Window()
	if wa.Len() != wb.Len() {
		t.Fatalf("window lengths differ: %d vs %d", wa.Len(), wb.Len())
	}
	ra, rb := wa.Rows(), wb.Rows()
	for i := range ra {
		if ra[i].Entry.Item.Label != rb[i].Entry.Item.Label {
			t.Errorf("row %d differs: %q vs %q", i, ra[i].Entry.Item.Label, rb[i].Entry.Item.Label)
		}
	}
}
