package selection

import "github.com/robalobadob/wordsearch/internal/grid"

// Drag is the state of a pointer drag over an n×n board.
// The zero value is an inactive drag; Size must be set before use.
type Drag struct {
	Size   int          `json:"-"`
	Active bool         `json:"active"`
	Start  grid.Coord   `json:"start"`
	Run    []grid.Coord `json:"run"`
}

// Begin starts a new drag at c. Off-board cells are ignored.
func (d *Drag) Begin(c grid.Coord) bool {
	if !c.In(d.Size) {
		return false
	}
	d.Active = true
	d.Start = c
	d.Run = []grid.Coord{c}
	return true
}

// Extend recomputes the run from the start cell to c.
// It is a no-op when no drag is active, c is off the board, or c is not on
// one of the eight lines through the start cell.
func (d *Drag) Extend(c grid.Coord) bool {
	if !d.Active || !c.In(d.Size) {
		return false
	}
	run, ok := Line(d.Start, c)
	if !ok {
		return false
	}
	d.Run = run
	return true
}

// Finish closes the drag and hands back the completed run.
// The returned slice is nil when no drag was active.
func (d *Drag) Finish() []grid.Coord {
	if !d.Active {
		return nil
	}
	run := d.Run
	d.Reset()
	return run
}

// Reset abandons any drag in progress.
func (d *Drag) Reset() {
	d.Active = false
	d.Start = grid.Coord{}
	d.Run = nil
}
