// Package nav implements hierarchical list/menu navigation: wrap-around
// movement, incremental type-ahead search, nested level transitions and
// modal confirmation.
package nav

import "strings"

// Loader builds the items of a child level on demand.
type Loader func() ([]Item, error)

// Item is one selectable menu entry. Items are built when a level's
// contents are (re)built and owned exclusively by that level until the
// next rebuild.
type Item struct {
	ID    string
	Label string
	// SearchKey overrides the lowercase label for type-ahead matching.
	SearchKey string
	// Loader, when set, opens a deeper level on activation.
	Loader Loader
	// Activate performs the item's action and returns the announcement;
	// an error is a host-rejected side effect. Items with neither
	// Loader nor Activate are read-only and re-announce themselves.
	Activate func() (string, error)
}

func (it Item) searchKey() string {
	if it.SearchKey != "" {
		return strings.ToLower(it.SearchKey)
	}
	return strings.ToLower(it.Label)
}
