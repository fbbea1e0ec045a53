package grid

import (
	"fmt"

	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/phrase"
	"github.com/sablewing/gridspeak/internal/provider"
	"github.com/sablewing/gridspeak/internal/spatial"
	"github.com/sablewing/gridspeak/internal/speech"
)

// WorldSource extends the tile boundary with the spatial queries the map
// handler needs. Everything is read-only and queried fresh per call.
type WorldSource interface {
	TileSource
	// MapVisible reports whether the map currently has input focus.
	MapVisible() bool
	// Entities lists classified entities with positions.
	Entities() []provider.Entity
	// StructureAt resolves the structure occupying a tile, if any.
	StructureAt(p spatial.Point) (spatial.Structure, bool)
}

// Handler owns map navigation keys while the map is visible.
type Handler struct {
	src    WorldSource
	cursor *Cursor
	out    speech.Output
}

// NewHandler wires the map handler over a world source.
func NewHandler(src WorldSource, cursor *Cursor, out speech.Output) *Handler {
	return &Handler{src: src, cursor: cursor, out: out}
}

// Cursor exposes the handler's cursor for session lifecycle management.
func (h *Handler) Cursor() *Cursor {
	return h.cursor
}

// Active reports whether the map owns input. Fresh host query, no side
// effects.
func (h *Handler) Active() bool {
	return h.src.MapVisible()
}

// ProcessKey consumes map navigation keys and declines everything else
// so the host's native input still works.
func (h *Handler) ProcessKey(ev input.Event) bool {
	dx, dy, isArrow := arrowDelta(ev.Key)
	if isArrow {
		if ev.Mod.Shift {
			text, _ := h.cursor.SkipToChange(dx, dy)
			h.announce(text)
		} else {
			text, moved := h.cursor.Move(dx, dy)
			if !moved && text == boundaryAnnouncement {
				h.out.Play(speech.CueBoundary)
			}
			h.announce(text)
		}
		return true
	}
	if ev.Key != input.KeyRune {
		return false
	}
	switch ev.Rune {
	case 'i':
		h.announce(h.cursor.Describe())
	case 'c':
		h.announceCoordinates()
	case 'n':
		h.announce(h.nearestReport(nil, ""))
	case 'u':
		h.announce(h.kindReport(provider.KindUnit, "unit"))
	case 's':
		h.announce(h.kindReport(provider.KindStructure, "structure"))
	case 'r':
		h.announce(h.kindReport(provider.KindResource, "resource"))
	case 'e':
		h.announce(h.entranceReport())
	default:
		return false
	}
	return true
}

func (h *Handler) announce(text string) {
	if text == "" {
		return
	}
	h.out.Say(text)
}

func arrowDelta(k input.Key) (dx, dy int, ok bool) {
	switch k {
	case input.KeyUp:
		return 0, -1, true
	case input.KeyDown:
		return 0, 1, true
	case input.KeyLeft:
		return -1, 0, true
	case input.KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

func (h *Handler) announceCoordinates() {
	if !h.cursor.Ensure() {
		return
	}
	pos, _ := h.cursor.Position()
	h.announce(fmt.Sprintf("column %d, row %d", pos.X, pos.Y))
}

func (h *Handler) kindReport(kind provider.Kind, noun string) string {
	return h.nearestReport(func(e provider.Entity) bool { return e.Kind == kind }, noun)
}

// nearestReport names the closest matching entity with its Chebyshev
// distance and ratio-tolerant direction.
func (h *Handler) nearestReport(pred func(provider.Entity) bool, noun string) string {
	if !h.cursor.Ensure() {
		return ""
	}
	pos, _ := h.cursor.Position()
	entities := h.src.Entities()
	best, dist, found := spatial.Nearest(entities, func(e provider.Entity) spatial.Point { return e.Pos }, pred, pos)
	if !found {
		if noun == "" {
			return "nothing nearby"
		}
		return fmt.Sprintf("no %s nearby", noun)
	}
	if dist == 0 {
		return phrase.JoinClauses(best.Name, spatial.Here)
	}
	dir := spatial.RatioDirection(best.Pos.X-pos.X, best.Pos.Y-pos.Y)
	return phrase.JoinClauses(best.Name, fmt.Sprintf("%s %s", phrase.CountNoun(dist, "tile"), dir))
}

const atEntranceAnnouncement = "at entrance"

// entranceReport describes the approach tile of the structure under the
// cursor, or recognizes the cursor standing on a neighboring structure's
// approach tile.
func (h *Handler) entranceReport() string {
	if !h.cursor.Ensure() {
		return ""
	}
	pos, _ := h.cursor.Position()
	if s, ok := h.src.StructureAt(pos); ok {
		r := spatial.Approach(pos, s)
		if r.AtEntrance() {
			return atEntranceAnnouncement
		}
		return fmt.Sprintf("entrance %s %s, facing %s",
			phrase.CountNoun(r.Distance, "tile"), r.Direction, r.Facing)
	}
	if spatial.AtNeighborApproach(pos, h.src.StructureAt) {
		return atEntranceAnnouncement
	}
	return "no structure here"
}
