// internal/grid/types.go
//
// Core type definitions for the word-search grid.
// Defines:
//   - Coord: a (row, col) cell address.
//   - Direction: one of the eight unit steps a word may run along.
//   - Board: a filled letter grid plus the coordinates of every placed word.

package grid

import (
	"fmt"
	"strings"
)

const (
	// Size is the fixed board dimension used by the game.
	Size = 18

	// Alphabet is the filler alphabet; every cell holds one of these letters.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Coord addresses a single cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// String returns a compact "(r,c)" representation.
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Step returns the cell i steps away from c along d.
func (c Coord) Step(d Direction, i int) Coord {
	return Coord{Row: c.Row + i*d.DR, Col: c.Col + i*d.DC}
}

// In reports whether c lies inside an n×n board.
func (c Coord) In(n int) bool {
	return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n
}

// Direction is a unit step with components in {-1, 0, 1}.
type Direction struct {
	DR int `json:"dr"`
	DC int `json:"dc"`
}

// Directions lists the eight legal word directions.
var Directions = [8]Direction{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

// Valid reports whether d is one of the eight legal directions.
func (d Direction) Valid() bool {
	if d.DR == 0 && d.DC == 0 {
		return false
	}
	return d.DR >= -1 && d.DR <= 1 && d.DC >= -1 && d.DC <= 1
}

// Board is the output of a generation pass.
type Board struct {
	Size      int                // Dimension of the square grid.
	Cells     [][]rune           // Cells[row][col]; never zero once generation completes.
	Positions map[string][]Coord // Ordered coordinates per placed word.
	Unplaced  []string           // Words that could not be placed in any attempt.
}

// At returns the letter at c, or 0 when c is off the board.
func (b *Board) At(c Coord) rune {
	if !c.In(b.Size) {
		return 0
	}
	return b.Cells[c.Row][c.Col]
}

// Rows renders each grid row as a string.
func (b *Board) Rows() []string {
	out := make([]string, b.Size)
	for r, row := range b.Cells {
		out[r] = string(row)
	}
	return out
}

// Placed reports whether word has recorded coordinates.
func (b *Board) Placed(word string) bool {
	_, ok := b.Positions[word]
	return ok
}

// String pretty-prints the grid, one row per line with single spaces between letters.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.Cells {
		for c, ch := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(ch)
		}
		if r < len(b.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
