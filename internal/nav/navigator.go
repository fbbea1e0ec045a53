package nav

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Navigator provides wrap-around index movement and type-ahead prefix
// search over an ordered item sequence.
type Navigator struct {
	items  []Item
	index  int
	buffer string
}

// NewNavigator builds a navigator positioned on the first item.
func NewNavigator(items []Item) *Navigator {
	return &Navigator{items: items}
}

// Count returns the number of items.
func (n *Navigator) Count() int {
	return len(n.items)
}

// Index returns the current position.
func (n *Navigator) Index() int {
	return n.index
}

// Buffer returns the accumulated type-ahead search string.
func (n *Navigator) Buffer() string {
	return n.buffer
}

// Items returns a copy of the item sequence.
func (n *Navigator) Items() []Item {
	out := make([]Item, len(n.items))
	copy(out, n.items)
	return out
}

// Current returns the selected item; false when the list is empty.
func (n *Navigator) Current() (Item, bool) {
	if len(n.items) == 0 {
		return Item{}, false
	}
	return n.items[n.index], true
}

// Move shifts the index by direction with wrap-around and clears the
// type-ahead buffer first. Returns false when the list is empty.
func (n *Navigator) Move(direction int) (Item, bool) {
	n.buffer = ""
	count := len(n.items)
	if count == 0 {
		return Item{}, false
	}
	n.index = ((n.index+direction)%count + count) % count
	return n.items[n.index], true
}

// Home jumps to the first item, clearing the type-ahead buffer.
func (n *Navigator) Home() (Item, bool) {
	n.buffer = ""
	if len(n.items) == 0 {
		return Item{}, false
	}
	n.index = 0
	return n.items[n.index], true
}

// End jumps to the last item, clearing the type-ahead buffer.
func (n *Navigator) End() (Item, bool) {
	n.buffer = ""
	if len(n.items) == 0 {
		return Item{}, false
	}
	n.index = len(n.items) - 1
	return n.items[n.index], true
}

// ClearSearch drops the type-ahead buffer without moving.
func (n *Navigator) ClearSearch() {
	n.buffer = ""
}

// FindByPrefix scans in list order for the first item whose search key
// starts with the query, case-insensitively.
func (n *Navigator) FindByPrefix(query string) (int, bool) {
	q := strings.ToLower(query)
	if q == "" {
		return 0, false
	}
	for i, it := range n.items {
		if strings.HasPrefix(it.searchKey(), q) {
			return i, true
		}
	}
	return 0, false
}

// SearchResult describes the outcome of a type-ahead mutation.
type SearchResult struct {
	Buffer  string
	Matched bool
	// Cleared is set when a backspace emptied the buffer.
	Cleared bool
	Item    Item
}

// TypeAhead appends a character to the search buffer and re-searches.
// On a match the index jumps; on no match the index is left unchanged
// and the buffer keeps accumulating so backspace can correct it.
func (n *Navigator) TypeAhead(r rune) SearchResult {
	n.buffer += string(unicode.ToLower(r))
	return n.search()
}

// Backspace removes the last buffered character. An emptied buffer
// reports Cleared; otherwise the shortened buffer is re-searched.
func (n *Navigator) Backspace() SearchResult {
	runes := []rune(n.buffer)
	if len(runes) <= 1 {
		n.buffer = ""
		return SearchResult{Cleared: true}
	}
	n.buffer = string(runes[:len(runes)-1])
	return n.search()
}

func (n *Navigator) search() SearchResult {
	res := SearchResult{Buffer: n.buffer}
	if idx, ok := n.FindByPrefix(n.buffer); ok {
		n.index = idx
		res.Matched = true
		res.Item = n.items[idx]
	}
	return res
}

// FuzzyJump moves to the closest fuzzy match for the query, for
// non-prefix lookups. The type-ahead buffer is untouched.
func (n *Navigator) FuzzyJump(query string) (Item, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(n.items) == 0 {
		return Item{}, false
	}
	keys := make([]string, len(n.items))
	for i, it := range n.items {
		keys[i] = it.searchKey()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	if len(ranks) == 0 {
		return Item{}, false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	n.index = best.OriginalIndex
	return n.items[n.index], true
}
