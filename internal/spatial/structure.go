package spatial

// Facing is a structure rotation index mapped to a cardinal outward offset.
type Facing int

const (
	FacingNorth Facing = iota
	FacingEast
	FacingSouth
	FacingWest
)

var facingOffsets = [4]Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

var facingNames = [4]string{"north", "east", "south", "west"}

// Offset returns the outward unit offset for the facing.
func (f Facing) Offset() Point {
	return facingOffsets[f.normalize()]
}

// String returns the facing's cardinal name.
func (f Facing) String() string {
	return facingNames[f.normalize()]
}

func (f Facing) normalize() int {
	n := int(f) % 4
	if n < 0 {
		n += 4
	}
	return n
}

// Footprint is the inclusive rectangle of tiles a structure occupies.
type Footprint struct {
	Min Point
	Max Point
}

// Contains reports whether p lies within the footprint.
func (fp Footprint) Contains(p Point) bool {
	return p.X >= fp.Min.X && p.X <= fp.Max.X && p.Y >= fp.Min.Y && p.Y <= fp.Max.Y
}

// Structure describes a placed building for entrance geometry queries.
type Structure struct {
	Name      string
	Footprint Footprint
	Facing    Facing
	Entrance  Point
}

// ApproachTile returns the tile from which the structure is entered: one
// step outward from the entrance along the facing. When rotation has
// already pushed the entrance coordinate outside the footprint, the
// entrance tile itself is the approach tile.
func ApproachTile(s Structure) Point {
	if s.Footprint.Contains(s.Entrance) {
		return s.Entrance.Add(s.Facing.Offset())
	}
	return s.Entrance
}

// ApproachReport describes the cursor's relation to a structure's
// approach tile.
type ApproachReport struct {
	Distance  int
	Direction string
	Facing    Facing
}

// AtEntrance reports whether the cursor stands on the approach tile.
func (r ApproachReport) AtEntrance() bool {
	return r.Distance == 0
}

// Approach computes distance and ratio-tolerant direction from the cursor
// to the structure's approach tile.
func Approach(cursor Point, s Structure) ApproachReport {
	target := ApproachTile(s)
	return ApproachReport{
		Distance:  Chebyshev(cursor, target),
		Direction: RatioDirection(target.X-cursor.X, target.Y-cursor.Y),
		Facing:    s.Facing,
	}
}

var neighborOffsets = [4]Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// AtNeighborApproach reports whether the cursor stands on the approach
// tile of a structure occupying one of its 4 neighbors, without standing
// on that structure itself. structAt resolves the structure occupying a
// tile, if any.
func AtNeighborApproach(cursor Point, structAt func(Point) (Structure, bool)) bool {
	for _, d := range neighborOffsets {
		s, ok := structAt(cursor.Add(d))
		if !ok {
			continue
		}
		if s.Footprint.Contains(cursor) {
			continue
		}
		if ApproachTile(s) == cursor {
			return true
		}
	}
	return false
}
