// internal/selection/selection.go
//
// Drag-selection geometry for the word-search board.
// Responsibilities:
//   - Normalise the displacement between two cells into a unit direction.
//   - Expand a start/end pair into the straight run of cells between them.
//   - Track an in-progress drag (begin → extend* → finish/cancel).
//   - Match a completed run against word placements, in either order.
//
// Everything here is pure with respect to the board: callers own the state
// and pass it in.

package selection

import "github.com/robalobadob/wordsearch/internal/grid"

// Unit returns the direction that walks from one cell to another.
// The displacement is divided by the gcd of its absolute components; the
// result is accepted only if it is one of the eight unit directions, or the
// zero step when from == to.
func Unit(from, to grid.Coord) (grid.Direction, bool) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	g := gcd(abs(dr), abs(dc))
	if g == 0 {
		g = 1
	}
	d := grid.Direction{DR: dr / g, DC: dc / g}
	if d.DR == 0 && d.DC == 0 {
		return d, true
	}
	return d, d.Valid()
}

// Line returns every cell from `from` to `to` inclusive, or false when the two
// cells are not collinear along one of the eight directions.
func Line(from, to grid.Coord) ([]grid.Coord, bool) {
	d, ok := Unit(from, to)
	if !ok {
		return nil, false
	}
	if d.DR == 0 && d.DC == 0 {
		return []grid.Coord{from}, true
	}
	run := []grid.Coord{}
	for i := 0; ; i++ {
		c := from.Step(d, i)
		run = append(run, c)
		if c == to {
			return run, true
		}
	}
}

// Equal reports whether a and b hold the same coordinates in the same order.
func Equal(a, b []grid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Matches reports whether run equals path forward or exactly reversed.
func Matches(run, path []grid.Coord) bool {
	if len(run) == 0 || len(run) != len(path) {
		return false
	}
	if Equal(run, path) {
		return true
	}
	n := len(path)
	for i := range run {
		if run[i] != path[n-1-i] {
			return false
		}
	}
	return true
}

// Match returns the first word, in list order, whose placement matches run.
// Words rejected by skip (typically already found) and words without a
// placement are never considered.
func Match(run []grid.Coord, words []string, positions map[string][]grid.Coord, skip func(string) bool) (string, bool) {
	for _, w := range words {
		if skip != nil && skip(w) {
			continue
		}
		path, ok := positions[w]
		if !ok {
			continue
		}
		if Matches(run, path) {
			return w, true
		}
	}
	return "", false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
