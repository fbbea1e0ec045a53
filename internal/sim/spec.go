// Package sim hosts a small self-contained world so the navigation
// layer can run and be exercised without a live game attached.
package sim

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sablewing/gridspeak/internal/spatial"
)

//go:embed world.yaml
var defaultWorldYAML []byte

type pointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p pointSpec) point() spatial.Point {
	return spatial.Point{X: p.X, Y: p.Y}
}

type tileSpec struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Terrain  string `yaml:"terrain"`
	Passable *bool  `yaml:"passable"`
}

type objectSpec struct {
	X                 int    `yaml:"x"`
	Y                 int    `yaml:"y"`
	Name              string `yaml:"name"`
	UnderConstruction bool   `yaml:"under_construction"`
	Ruin              bool   `yaml:"ruin"`
	Marked            bool   `yaml:"marked"`
}

type structureSpec struct {
	Name     string    `yaml:"name"`
	Min      pointSpec `yaml:"min"`
	Max      pointSpec `yaml:"max"`
	Facing   string    `yaml:"facing"`
	Entrance pointSpec `yaml:"entrance"`
}

type unitSpec struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type resourceSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Name string `yaml:"name"`
}

// Spec is the YAML shape of a world file.
type Spec struct {
	Name           string            `yaml:"name"`
	Width          int               `yaml:"width"`
	Height         int               `yaml:"height"`
	Origin         *pointSpec        `yaml:"origin"`
	DefaultTerrain string            `yaml:"default_terrain"`
	TerrainNames   map[string]string `yaml:"terrain_names"`
	CategoryNames  map[string]string `yaml:"category_names"`
	Stock          map[string]int    `yaml:"stock"`
	Tiles          []tileSpec        `yaml:"tiles"`
	Objects        []objectSpec      `yaml:"objects"`
	Structures     []structureSpec   `yaml:"structures"`
	Units          []unitSpec        `yaml:"units"`
	Resources      []resourceSpec    `yaml:"resources"`
	Hidden         []pointSpec       `yaml:"hidden"`
	Explored       []pointSpec       `yaml:"explored"`
}

var facingValues = map[string]spatial.Facing{
	"north": spatial.FacingNorth,
	"east":  spatial.FacingEast,
	"south": spatial.FacingSouth,
	"west":  spatial.FacingWest,
}

func (s structureSpec) structure() (spatial.Structure, error) {
	facing, ok := facingValues[s.Facing]
	if !ok {
		return spatial.Structure{}, fmt.Errorf("structure %q: unknown facing %q", s.Name, s.Facing)
	}
	return spatial.Structure{
		Name:      s.Name,
		Footprint: spatial.Footprint{Min: s.Min.point(), Max: s.Max.point()},
		Facing:    facing,
		Entrance:  s.Entrance.point(),
	}, nil
}

func (s Spec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("world %q: dimensions must be positive (got %dx%d)", s.Name, s.Width, s.Height)
	}
	if s.DefaultTerrain == "" {
		return fmt.Errorf("world %q: default_terrain is required", s.Name)
	}
	return nil
}

// Parse decodes a YAML world file.
func Parse(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse world: %w", err)
	}
	if err := spec.validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// LoadFile reads and decodes a world file from disk.
func LoadFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read world: %w", err)
	}
	return Parse(data)
}

// DefaultSpec returns the embedded demo world.
func DefaultSpec() Spec {
	spec, err := Parse(defaultWorldYAML)
	if err != nil {
		// The embedded world ships with the binary; a parse failure is
		// a build defect.
		panic(err)
	}
	return spec
}
