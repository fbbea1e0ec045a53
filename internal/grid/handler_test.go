package grid

import (
	"testing"

	"github.com/sablewing/gridspeak/internal/input"
	"github.com/sablewing/gridspeak/internal/provider"
	"github.com/sablewing/gridspeak/internal/spatial"
	"github.com/sablewing/gridspeak/internal/speech"
)

type fakeWorld struct {
	fakeSource
	mapVisible bool
	entities   []provider.Entity
	structures []spatial.Structure
}

func (f *fakeWorld) MapVisible() bool {
	return f.mapVisible
}

func (f *fakeWorld) Entities() []provider.Entity {
	return f.entities
}

func (f *fakeWorld) StructureAt(p spatial.Point) (spatial.Structure, bool) {
	for _, s := range f.structures {
		if s.Footprint.Contains(p) {
			return s, true
		}
	}
	return spatial.Structure{}, false
}

func newTestWorld(w, h int) *fakeWorld {
	tiles := make(map[spatial.Point]Tile, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tiles[spatial.Point{X: x, Y: y}] = Tile{Terrain: "grass", Passable: true}
		}
	}
	return &fakeWorld{
		fakeSource: fakeSource{width: w, height: h, hasBounds: true, tiles: tiles},
		mapVisible: true,
	}
}

func newTestHandler(world *fakeWorld) (*Handler, *speech.Recorder) {
	rec := &speech.Recorder{}
	h := NewHandler(world, NewCursor(world), rec)
	return h, rec
}

func TestHandlerActiveFollowsMapVisibility(t *testing.T) {
	world := newTestWorld(4, 4)
	h, _ := newTestHandler(world)
	if !h.Active() {
		t.Fatalf("expected active while map visible")
	}
	world.mapVisible = false
	if h.Active() {
		t.Fatalf("expected inactive when map hidden")
	}
}

func TestHandlerArrowMovesAndAnnounces(t *testing.T) {
	world := newTestWorld(4, 4)
	h, rec := newTestHandler(world)
	h.Cursor().SetPosition(spatial.Point{X: 1, Y: 1})

	if !h.ProcessKey(input.KeyEvent(input.KeyRight)) {
		t.Fatalf("arrow key must be consumed")
	}
	if pos, _ := h.Cursor().Position(); pos != (spatial.Point{X: 2, Y: 1}) {
		t.Fatalf("unexpected position %v", pos)
	}
	if rec.Last() != "grass" {
		t.Fatalf("expected tile announcement, got %q", rec.Last())
	}
}

func TestHandlerBoundaryPlaysCue(t *testing.T) {
	world := newTestWorld(2, 2)
	h, rec := newTestHandler(world)
	h.Cursor().SetPosition(spatial.Point{X: 0, Y: 0})

	if !h.ProcessKey(input.KeyEvent(input.KeyUp)) {
		t.Fatalf("arrow key must be consumed even at the edge")
	}
	if rec.Last() != "edge of map" {
		t.Fatalf("expected boundary message, got %q", rec.Last())
	}
	if len(rec.Cues) != 1 || rec.Cues[0] != speech.CueBoundary {
		t.Fatalf("expected boundary cue, got %v", rec.Cues)
	}
}

func TestHandlerShiftArrowSkips(t *testing.T) {
	world := newTestWorld(5, 1)
	world.tiles[spatial.Point{X: 3, Y: 0}] = Tile{Terrain: "water", Passable: false}
	world.tiles[spatial.Point{X: 4, Y: 0}] = Tile{Terrain: "water", Passable: false}
	h, rec := newTestHandler(world)
	h.Cursor().SetPosition(spatial.Point{X: 0, Y: 0})

	ev := input.Event{Key: input.KeyRight, Mod: input.Modifiers{Shift: true}}
	if !h.ProcessKey(ev) {
		t.Fatalf("shift+arrow must be consumed")
	}
	if pos, _ := h.Cursor().Position(); pos != (spatial.Point{X: 3, Y: 0}) {
		t.Fatalf("expected scan stop at first change, got %v", pos)
	}
	if rec.Last() != "3 tiles, water, impassable" {
		t.Fatalf("unexpected skip announcement %q", rec.Last())
	}
}

func TestHandlerDeclinesUnknownKeys(t *testing.T) {
	world := newTestWorld(3, 3)
	h, rec := newTestHandler(world)
	if h.ProcessKey(input.RuneEvent('z')) {
		t.Fatalf("unknown rune must be declined")
	}
	if h.ProcessKey(input.KeyEvent(input.KeyEnter)) {
		t.Fatalf("enter must be declined to the host")
	}
	if len(rec.Utterances) != 0 {
		t.Fatalf("declined keys must not announce, got %v", rec.Utterances)
	}
}

func TestHandlerNearestReports(t *testing.T) {
	world := newTestWorld(10, 10)
	world.entities = []provider.Entity{
		{Pos: spatial.Point{X: 9, Y: 9}, Name: "warehouse", Kind: provider.KindStructure},
		{Pos: spatial.Point{X: 7, Y: 3}, Name: "fox", Kind: provider.KindUnit},
	}
	h, rec := newTestHandler(world)
	h.Cursor().SetPosition(spatial.Point{X: 2, Y: 2})

	if !h.ProcessKey(input.RuneEvent('n')) {
		t.Fatalf("nearest key must be consumed")
	}
	if rec.Last() != "fox, 5 tiles east" {
		t.Fatalf("unexpected nearest report %q", rec.Last())
	}

	if !h.ProcessKey(input.RuneEvent('s')) {
		t.Fatalf("structure key must be consumed")
	}
	if rec.Last() != "warehouse, 7 tiles southeast" {
		t.Fatalf("unexpected structure report %q", rec.Last())
	}

	if !h.ProcessKey(input.RuneEvent('r')) {
		t.Fatalf("resource key must be consumed")
	}
	if rec.Last() != "no resource nearby" {
		t.Fatalf("unexpected empty report %q", rec.Last())
	}
}

func TestHandlerEntranceReport(t *testing.T) {
	world := newTestWorld(10, 10)
	s := spatial.Structure{
		Name:      "barn",
		Footprint: spatial.Footprint{Min: spatial.Point{X: 4, Y: 4}, Max: spatial.Point{X: 5, Y: 5}},
		Facing:    spatial.FacingSouth,
		Entrance:  spatial.Point{X: 4, Y: 5},
	}
	world.structures = []spatial.Structure{s}
	h, rec := newTestHandler(world)

	// On the structure, away from the approach tile.
	h.Cursor().SetPosition(spatial.Point{X: 5, Y: 4})
	h.ProcessKey(input.RuneEvent('e'))
	if rec.Last() != "entrance 2 tiles southwest, facing south" {
		t.Fatalf("unexpected entrance report %q", rec.Last())
	}

	// Standing on the approach tile of the neighboring structure.
	h.Cursor().SetPosition(spatial.Point{X: 4, Y: 6})
	h.ProcessKey(input.RuneEvent('e'))
	if rec.Last() != "at entrance" {
		t.Fatalf("expected at-entrance recognition, got %q", rec.Last())
	}

	h.Cursor().SetPosition(spatial.Point{X: 0, Y: 0})
	h.ProcessKey(input.RuneEvent('e'))
	if rec.Last() != "no structure here" {
		t.Fatalf("expected no-structure message, got %q", rec.Last())
	}
}

func TestHandlerCoordinates(t *testing.T) {
	world := newTestWorld(4, 4)
	h, rec := newTestHandler(world)
	h.Cursor().SetPosition(spatial.Point{X: 3, Y: 1})
	h.ProcessKey(input.RuneEvent('c'))
	if rec.Last() != "column 3, row 1" {
		t.Fatalf("unexpected coordinates %q", rec.Last())
	}
}
