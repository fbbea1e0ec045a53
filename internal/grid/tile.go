// Package grid implements the bounded 2D cursor, tile announcement
// composition and the directional change scan.
package grid

import (
	"strconv"
	"strings"

	"github.com/sablewing/gridspeak/internal/phrase"
)

// VisibilityTier controls how much of a tile may be announced.
type VisibilityTier int

const (
	// VisibilityHidden suppresses everything about the tile.
	VisibilityHidden VisibilityTier = iota
	// VisibilityType reveals the terrain type only.
	VisibilityType
	// VisibilityFull reveals type and contents.
	VisibilityFull
)

// Object is a tile's occupying object with its announcement qualifiers.
type Object struct {
	Name              string
	UnderConstruction bool
	Ruin              bool
	Marked            bool
}

// Occupant is a transient tile occupant, grouped by category in the
// announcement and excluded from fingerprints.
type Occupant struct {
	Category string
}

// Tile is the queried content of one grid cell. All fields carry display
// names already resolved at the provider boundary; the core never
// interprets them.
type Tile struct {
	Terrain   string
	Passable  bool
	Object    *Object
	Occupants []Occupant
}

const hiddenAnnouncement = "undiscovered"

// Announce composes the spoken description of a tile under the given
// visibility tier: primary content, passability qualifier, then the
// grouped occupant summary.
func Announce(t Tile, tier VisibilityTier) string {
	switch tier {
	case VisibilityHidden:
		return hiddenAnnouncement
	case VisibilityType:
		return t.Terrain
	}
	parts := []string{primaryContent(t)}
	if !t.Passable {
		parts = append(parts, "impassable")
	}
	parts = append(parts, occupantSummary(t.Occupants))
	return phrase.JoinClauses(parts...)
}

func primaryContent(t Tile) string {
	if t.Object == nil {
		return t.Terrain
	}
	parts := []string{t.Object.Name}
	if t.Object.UnderConstruction {
		parts = append(parts, "under construction")
	}
	if t.Object.Ruin {
		parts = append(parts, "ruin")
	}
	if t.Object.Marked {
		parts = append(parts, "marked")
	}
	return phrase.JoinClauses(parts...)
}

// occupantSummary groups occupants by category in first-seen order and
// pluralizes each count.
func occupantSummary(occ []Occupant) string {
	if len(occ) == 0 {
		return ""
	}
	order := make([]string, 0, len(occ))
	counts := make(map[string]int, len(occ))
	for _, o := range occ {
		if o.Category == "" {
			continue
		}
		if _, seen := counts[o.Category]; !seen {
			order = append(order, o.Category)
		}
		counts[o.Category]++
	}
	parts := make([]string, 0, len(order))
	for _, cat := range order {
		parts = append(parts, phrase.CountNoun(counts[cat], cat))
	}
	return phrase.JoinClauses(parts...)
}

// Fingerprint derives the equality key used by the change scan: terrain,
// object identity and qualifiers, and passability. Transient occupants
// are excluded so a passing unit does not stop the scan.
func Fingerprint(t Tile) string {
	var b strings.Builder
	b.WriteString(t.Terrain)
	b.WriteByte('|')
	if t.Object != nil {
		b.WriteString(t.Object.Name)
		if t.Object.UnderConstruction {
			b.WriteString("+c")
		}
		if t.Object.Ruin {
			b.WriteString("+r")
		}
		if t.Object.Marked {
			b.WriteString("+m")
		}
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(t.Passable))
	return b.String()
}
