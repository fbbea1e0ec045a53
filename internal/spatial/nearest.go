package spatial

// Nearest scans items, keeps those satisfying pred, and returns the one
// with the smallest Chebyshev distance to from. Ties are broken by the
// candidate's position, (y, then x) ascending, so results do not depend
// on the source collection's iteration order.
func Nearest[T any](items []T, at func(T) Point, pred func(T) bool, from Point) (T, int, bool) {
	var best T
	bestDist := -1
	var bestPos Point
	found := false
	for _, it := range items {
		if pred != nil && !pred(it) {
			continue
		}
		pos := at(it)
		dist := Chebyshev(from, pos)
		if !found || dist < bestDist || (dist == bestDist && lessPos(pos, bestPos)) {
			best = it
			bestDist = dist
			bestPos = pos
			found = true
		}
	}
	return best, bestDist, found
}

func lessPos(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
