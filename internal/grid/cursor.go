package grid

import (
	"github.com/sablewing/gridspeak/internal/logging/events"
	"github.com/sablewing/gridspeak/internal/phrase"
	"github.com/sablewing/gridspeak/internal/spatial"
)

// TileSource is the provider boundary the cursor reads through. Every
// call is a fresh query against the live host; any result may be absent.
type TileSource interface {
	// Bounds returns the grid dimensions; absent when no map is loaded.
	Bounds() (width, height int, ok bool)
	// TileAt returns the tile content at p.
	TileAt(p spatial.Point) (Tile, bool)
	// Visibility returns the announcement tier for p.
	Visibility(p spatial.Point) VisibilityTier
	// Origin returns the distinguished starting tile, if the host
	// defines one; the cursor falls back to the grid center.
	Origin() (spatial.Point, bool)
}

const (
	boundaryAnnouncement = "edge of map"
	noChangeAnnouncement = "no change till edge"
)

// Cursor is a bounded 2D map cursor. It initializes lazily on first use
// and stays within [0,width) x [0,height) afterwards.
type Cursor struct {
	src         TileSource
	pos         spatial.Point
	initialized bool
}

// NewCursor builds an uninitialized cursor over the source.
func NewCursor(src TileSource) *Cursor {
	return &Cursor{src: src}
}

// Position returns the cursor location; ok is false until the first
// successful use.
func (c *Cursor) Position() (spatial.Point, bool) {
	return c.pos, c.initialized
}

// Reset returns the cursor to the uninitialized state. Called on session
// teardown; idempotent.
func (c *Cursor) Reset() {
	if !c.initialized {
		return
	}
	c.initialized = false
	c.pos = spatial.Point{}
	events.Grid.Reset()
}

// Ensure forces lazy initialization without announcing; false while the
// host has no map bounds.
func (c *Cursor) Ensure() bool {
	return c.ensure()
}

// ensure lazily places the cursor at the host origin, or the grid center
// when the host defines none. Returns false while no bounds exist.
func (c *Cursor) ensure() bool {
	if c.initialized {
		return true
	}
	w, h, ok := c.src.Bounds()
	if !ok || w <= 0 || h <= 0 {
		return false
	}
	pos, ok := c.src.Origin()
	if !ok || !inBounds(pos, w, h) {
		pos = spatial.Point{X: w / 2, Y: h / 2}
	}
	c.pos = pos
	c.initialized = true
	return true
}

func inBounds(p spatial.Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Move shifts the cursor by (dx,dy) and returns the announcement for the
// new tile, or the boundary message when the move would leave the grid.
// moved reports whether the cursor changed position.
func (c *Cursor) Move(dx, dy int) (text string, moved bool) {
	if !c.ensure() {
		return "", false
	}
	w, h, ok := c.src.Bounds()
	if !ok {
		return "", false
	}
	candidate := c.pos.Add(spatial.Point{X: dx, Y: dy})
	if !inBounds(candidate, w, h) {
		events.Grid.Boundary(c.pos.X, c.pos.Y, dx, dy)
		return boundaryAnnouncement, false
	}
	c.pos = candidate
	events.Grid.CursorMove(c.pos.X, c.pos.Y)
	return c.Describe(), true
}

// SetPosition performs the same bounds check as Move without producing
// an announcement; used for programmatic jumps.
func (c *Cursor) SetPosition(p spatial.Point) bool {
	w, h, ok := c.src.Bounds()
	if !ok || !inBounds(p, w, h) {
		return false
	}
	c.pos = p
	c.initialized = true
	events.Grid.CursorMove(p.X, p.Y)
	return true
}

// Describe announces the tile under the cursor, honoring its visibility
// tier. An absent tile announces nothing.
func (c *Cursor) Describe() string {
	if !c.ensure() {
		return ""
	}
	tile, ok := c.src.TileAt(c.pos)
	if !ok {
		return ""
	}
	return Announce(tile, c.src.Visibility(c.pos))
}

// SkipToChange steps in direction (dx,dy) until a tile whose fingerprint
// differs from the starting tile's, moves the cursor there and announces
// the distance plus the new tile. When every tile up to the edge matches,
// the cursor stays put and the no-change message is returned once.
func (c *Cursor) SkipToChange(dx, dy int) (text string, moved bool) {
	if !c.ensure() {
		return "", false
	}
	w, h, ok := c.src.Bounds()
	if !ok {
		return "", false
	}
	startTile, ok := c.src.TileAt(c.pos)
	if !ok {
		return "", false
	}
	start := Fingerprint(startTile)
	step := spatial.Point{X: dx, Y: dy}
	p := c.pos
	steps := 0
	for {
		next := p.Add(step)
		if !inBounds(next, w, h) {
			events.Grid.Boundary(c.pos.X, c.pos.Y, dx, dy)
			return noChangeAnnouncement, false
		}
		p = next
		steps++
		// An absent tile reads as different from any real fingerprint,
		// so the scan stops at the host's data horizon.
		fp := ""
		if tile, ok := c.src.TileAt(p); ok {
			fp = Fingerprint(tile)
		}
		if fp != start {
			c.pos = p
			events.Grid.Skip(dx, dy, steps)
			events.Grid.CursorMove(p.X, p.Y)
			return phrase.JoinClauses(phrase.CountNoun(steps, "tile"), c.Describe()), true
		}
	}
}
