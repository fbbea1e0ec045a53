package sim

import (
	"fmt"

	"github.com/sablewing/gridspeak/internal/grid"
	"github.com/sablewing/gridspeak/internal/provider"
	"github.com/sablewing/gridspeak/internal/spatial"
)

// World is an in-memory realization of a Spec. It serves the map
// handler's tile queries, the spatial search layer's entity list and the
// menu screen, standing in for a live game host.
type World struct {
	name           string
	width, height  int
	origin         *spatial.Point
	defaultTerrain string

	terrain    map[spatial.Point]string
	impassable map[spatial.Point]bool
	objects    map[spatial.Point]*grid.Object
	structures []spatial.Structure
	units      []unitSpec
	resources  []resourceSpec
	visibility map[spatial.Point]grid.VisibilityTier
	stock      map[string]int

	meta       *provider.MetadataCache
	classifier *provider.Classifier

	screen  menuScreen
	confirm func(prompt string, accept func() string) error
}

// New builds a world from a spec.
func New(spec Spec) (*World, error) {
	w := &World{
		name:           spec.Name,
		width:          spec.Width,
		height:         spec.Height,
		defaultTerrain: spec.DefaultTerrain,
		terrain:        make(map[spatial.Point]string),
		impassable:     make(map[spatial.Point]bool),
		objects:        make(map[spatial.Point]*grid.Object),
		visibility:     make(map[spatial.Point]grid.VisibilityTier),
		units:          spec.Units,
		resources:      spec.Resources,
		stock:          make(map[string]int),
		classifier:     provider.DefaultClassifier(),
	}
	if spec.Origin != nil {
		p := spec.Origin.point()
		w.origin = &p
	}
	for k, v := range spec.Stock {
		w.stock[k] = v
	}
	for _, t := range spec.Tiles {
		p := spatial.Point{X: t.X, Y: t.Y}
		if t.Terrain != "" {
			w.terrain[p] = t.Terrain
		}
		if t.Passable != nil && !*t.Passable {
			w.impassable[p] = true
		}
	}
	for _, o := range spec.Objects {
		w.objects[spatial.Point{X: o.X, Y: o.Y}] = &grid.Object{
			Name:              o.Name,
			UnderConstruction: o.UnderConstruction,
			Ruin:              o.Ruin,
			Marked:            o.Marked,
		}
	}
	for _, s := range spec.Structures {
		st, err := s.structure()
		if err != nil {
			return nil, err
		}
		w.structures = append(w.structures, st)
	}
	for _, p := range spec.Hidden {
		w.visibility[p.point()] = grid.VisibilityHidden
	}
	for _, p := range spec.Explored {
		w.visibility[p.point()] = grid.VisibilityType
	}
	names := Metadata(spec)
	w.meta = provider.NewMetadataCache(func() (provider.Metadata, error) {
		return names, nil
	})
	return w, nil
}

// Metadata extracts the schema-level display names from a spec.
func Metadata(spec Spec) provider.Metadata {
	return provider.Metadata{
		TerrainNames:  spec.TerrainNames,
		CategoryNames: spec.CategoryNames,
	}
}

// Default builds the embedded demo world.
func Default() *World {
	w, err := New(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return w
}

// Name returns the world's display name.
func (w *World) Name() string {
	return w.name
}

func (w *World) inBounds(p spatial.Point) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// Bounds implements grid.TileSource.
func (w *World) Bounds() (int, int, bool) {
	return w.width, w.height, true
}

// Origin implements grid.TileSource.
func (w *World) Origin() (spatial.Point, bool) {
	if w.origin == nil {
		return spatial.Point{}, false
	}
	return *w.origin, true
}

// Visibility implements grid.TileSource.
func (w *World) Visibility(p spatial.Point) grid.VisibilityTier {
	if tier, ok := w.visibility[p]; ok {
		return tier
	}
	return grid.VisibilityFull
}

// TileAt implements grid.TileSource. Display names resolve through the
// metadata cache at this boundary; the navigation core never sees raw
// identifiers.
func (w *World) TileAt(p spatial.Point) (grid.Tile, bool) {
	if !w.inBounds(p) {
		return grid.Tile{}, false
	}
	terrainID := w.defaultTerrain
	if id, ok := w.terrain[p]; ok {
		terrainID = id
	}
	tile := grid.Tile{
		Terrain:  w.meta.TerrainName(terrainID),
		Passable: !w.impassable[p],
	}
	if s, ok := w.structureAt(p); ok {
		tile.Object = &grid.Object{Name: s.Name}
		tile.Passable = false
	} else if obj, ok := w.objects[p]; ok {
		o := *obj
		tile.Object = &o
	}
	for _, u := range w.units {
		if u.X == p.X && u.Y == p.Y {
			tile.Occupants = append(tile.Occupants, grid.Occupant{
				Category: w.meta.CategoryName(u.Category),
			})
		}
	}
	return tile, true
}

// MapVisible implements grid.WorldSource. The map yields focus while
// the menu screen is open.
func (w *World) MapVisible() bool {
	return !w.screen.open
}

// StructureAt implements grid.WorldSource.
func (w *World) StructureAt(p spatial.Point) (spatial.Structure, bool) {
	return provider.SafeQuery(func() (spatial.Structure, bool) {
		return w.structureAt(p)
	})
}

func (w *World) structureAt(p spatial.Point) (spatial.Structure, bool) {
	for _, s := range w.structures {
		if s.Footprint.Contains(p) {
			return s, true
		}
	}
	return spatial.Structure{}, false
}

// Entities implements grid.WorldSource: every host object classified
// at the boundary.
func (w *World) Entities() []provider.Entity {
	entities := make([]provider.Entity, 0, len(w.structures)+len(w.units)+len(w.resources))
	for _, s := range w.structures {
		entities = append(entities, w.classifier.Classify(provider.Raw{
			Pos:          s.Entrance,
			Name:         s.Name,
			HasFootprint: true,
		}))
	}
	for _, u := range w.units {
		entities = append(entities, w.classifier.Classify(provider.Raw{
			Pos:      spatial.Point{X: u.X, Y: u.Y},
			Name:     u.Name,
			Category: u.Category,
			Mobile:   true,
		}))
	}
	for _, r := range w.resources {
		entities = append(entities, w.classifier.Classify(provider.Raw{
			Pos:         spatial.Point{X: r.X, Y: r.Y},
			Name:        r.Name,
			Harvestable: true,
		}))
	}
	return entities
}

// Stock returns the current amount of a stocked good.
func (w *World) Stock(good string) int {
	return w.stock[good]
}

// SetConfirmer installs the confirmation entry point destructive menu
// actions must route through. Wired after the session exists.
func (w *World) SetConfirmer(confirm func(prompt string, accept func() string) error) {
	w.confirm = confirm
}

func (w *World) demolish(name string) (string, bool) {
	for i, s := range w.structures {
		if s.Name == name {
			w.structures = append(w.structures[:i], w.structures[i+1:]...)
			return fmt.Sprintf("%s demolished", name), true
		}
	}
	return "", false
}

type menuScreen struct {
	open bool
}

func (s *menuScreen) Open() bool { return s.open }

func (s *menuScreen) Close() { s.open = false }
