// Package spatial provides grid geometry: Chebyshev distance, direction
// naming and structure entrance/approach calculations.
//
// Coordinates follow screen order: x grows east, y grows south, so
// "north" means dy < 0.
package spatial

// Point is a tile coordinate.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Chebyshev returns max(|dx|,|dy|) between a and b, the natural distance
// on a square grid with 8-directional movement.
func Chebyshev(a, b Point) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dy > dx {
		return dy
	}
	return dx
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Here is the direction name for a coincident point.
const Here = "here"

// RatioDirection names the direction of (dx,dy) tolerantly: an axis is
// included only when its magnitude is at least half the other axis, so a
// long shallow offset reads as a single cardinal. Returns Here when both
// components are zero.
func RatioDirection(dx, dy int) string {
	var ns, ew string
	if dy != 0 && abs(dy)*2 >= abs(dx) {
		if dy < 0 {
			ns = "north"
		} else {
			ns = "south"
		}
	}
	if dx != 0 && abs(dx)*2 >= abs(dy) {
		if dx < 0 {
			ew = "west"
		} else {
			ew = "east"
		}
	}
	if ns == "" && ew == "" {
		return Here
	}
	return ns + ew
}

// CompassDirection names (dx,dy) as exactly one of the 8 compass points.
// Unlike RatioDirection the split is purely sign-based: a diagonal is
// chosen whenever both components are nonzero, regardless of ratio.
// Returns Here when both components are zero.
func CompassDirection(dx, dy int) string {
	var ns, ew string
	switch {
	case dy < 0:
		ns = "north"
	case dy > 0:
		ns = "south"
	}
	switch {
	case dx < 0:
		ew = "west"
	case dx > 0:
		ew = "east"
	}
	if ns == "" && ew == "" {
		return Here
	}
	return ns + ew
}
