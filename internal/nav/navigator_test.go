package nav

import "testing"

func newTestNavigator(labels ...string) *Navigator {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{ID: l, Label: l}
	}
	return NewNavigator(items)
}

func TestMoveWrapAroundClosure(t *testing.T) {
	for _, size := range []int{1, 2, 5, 9} {
		labels := make([]string, size)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		n := newTestNavigator(labels...)
		start := n.Index()
		for i := 0; i < size; i++ {
			if _, ok := n.Move(1); !ok {
				t.Fatalf("size %d: move failed", size)
			}
		}
		if n.Index() != start {
			t.Fatalf("size %d: expected index back at %d, got %d", size, start, n.Index())
		}
	}
}

func TestMoveWrapsBothDirections(t *testing.T) {
	n := newTestNavigator("a", "b", "c")
	if _, ok := n.Move(-1); !ok {
		t.Fatalf("expected move to succeed")
	}
	if n.Index() != 2 {
		t.Fatalf("expected wrap to last item, got %d", n.Index())
	}
	n.Move(1)
	if n.Index() != 0 {
		t.Fatalf("expected wrap back to first item, got %d", n.Index())
	}
}

func TestMoveEmptyList(t *testing.T) {
	n := newTestNavigator()
	if _, ok := n.Move(1); ok {
		t.Fatalf("expected no-op on empty list")
	}
	if _, ok := n.Current(); ok {
		t.Fatalf("expected no current item on empty list")
	}
}

func TestTypeAheadPrefixSequence(t *testing.T) {
	n := newTestNavigator("Apple", "Apricot", "Banana")

	steps := []struct {
		r         rune
		wantIndex int
		wantMatch bool
	}{
		{'a', 0, true},
		{'p', 0, true},
		{'r', 1, true},
	}
	for _, s := range steps {
		res := n.TypeAhead(s.r)
		if res.Matched != s.wantMatch || n.Index() != s.wantIndex {
			t.Fatalf("after %q: matched=%v index=%d, want matched=%v index=%d",
				s.r, res.Matched, n.Index(), s.wantMatch, s.wantIndex)
		}
	}

	// Navigation clears the buffer, so a fresh prefix starts over.
	n.Home()
	if n.Buffer() != "" {
		t.Fatalf("expected buffer cleared by navigation, got %q", n.Buffer())
	}
	res := n.TypeAhead('b')
	if !res.Matched || n.Index() != 2 {
		t.Fatalf("expected jump to Banana, got matched=%v index=%d", res.Matched, n.Index())
	}

	n.Home()
	res = n.TypeAhead('z')
	if res.Matched {
		t.Fatalf("expected no match for z")
	}
	if n.Index() != 0 {
		t.Fatalf("no match must leave index unchanged, got %d", n.Index())
	}
	if res.Buffer != "z" {
		t.Fatalf("expected buffer to keep accumulating, got %q", res.Buffer)
	}
}

func TestTypeAheadCaseInsensitive(t *testing.T) {
	n := newTestNavigator("Apple", "Banana")
	res := n.TypeAhead('B')
	if !res.Matched || n.Index() != 1 {
		t.Fatalf("expected case-insensitive match, got matched=%v index=%d", res.Matched, n.Index())
	}
}

func TestTypeAheadSearchKeyOverride(t *testing.T) {
	n := NewNavigator([]Item{
		{Label: "The Old Mill", SearchKey: "mill"},
		{Label: "Mine"},
	})
	res := n.TypeAhead('m')
	if !res.Matched || n.Index() != 0 {
		t.Fatalf("expected search key to win, got matched=%v index=%d", res.Matched, n.Index())
	}
}

func TestBackspaceResearchesAndClears(t *testing.T) {
	n := newTestNavigator("Apple", "Apricot", "Banana")
	n.TypeAhead('a')
	n.TypeAhead('p')
	n.TypeAhead('r')
	if n.Index() != 1 {
		t.Fatalf("setup failed, index %d", n.Index())
	}

	res := n.Backspace()
	if !res.Matched || res.Buffer != "ap" {
		t.Fatalf("expected re-search on ap, got %+v", res)
	}
	if n.Index() != 0 {
		t.Fatalf("expected jump back to Apple, got %d", n.Index())
	}

	n.Backspace()
	res = n.Backspace()
	if !res.Cleared {
		t.Fatalf("expected cleared result, got %+v", res)
	}
	if n.Buffer() != "" {
		t.Fatalf("expected empty buffer, got %q", n.Buffer())
	}

	res = n.Backspace()
	if !res.Cleared {
		t.Fatalf("backspace on empty buffer reports cleared, got %+v", res)
	}
}

func TestFuzzyJump(t *testing.T) {
	n := newTestNavigator("Stone Quarry", "Lumber Camp", "Fishing Hut")
	item, ok := n.FuzzyJump("lmbr")
	if !ok || item.Label != "Lumber Camp" {
		t.Fatalf("expected fuzzy jump to Lumber Camp, got %v/%v", item.Label, ok)
	}
	if n.Index() != 1 {
		t.Fatalf("expected index 1, got %d", n.Index())
	}
	if _, ok := n.FuzzyJump("zzzzqq"); ok {
		t.Fatalf("expected fuzzy miss")
	}
	if _, ok := n.FuzzyJump("  "); ok {
		t.Fatalf("expected blank query to miss")
	}
}

func TestSuggest(t *testing.T) {
	items := []Item{{Label: "Granary"}, {Label: "Armory"}, {Label: "Bakery"}}
	got, ok := Suggest(items, "granry")
	if !ok || got != "Granary" {
		t.Fatalf("expected Granary suggestion, got %q/%v", got, ok)
	}
	if _, ok := Suggest(items, "xxxxxxxxxxxx"); ok {
		t.Fatalf("expected no suggestion beyond distance bound")
	}
	if _, ok := Suggest(items, ""); ok {
		t.Fatalf("expected no suggestion for empty query")
	}
}
