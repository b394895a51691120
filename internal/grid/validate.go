package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard wraps every invariant violation reported by Validate.
var ErrInvalidBoard = errors.New("grid: invalid board")

// Validate checks the structural invariants of a generated board:
// every cell holds a letter of Alphabet, and every recorded placement is an
// in-bounds straight line that spells its word forward or backward.
func (b *Board) Validate() error {
	if len(b.Cells) != b.Size {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, len(b.Cells), b.Size)
	}
	for r, row := range b.Cells {
		if len(row) != b.Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(row))
		}
		for c, ch := range row {
			if ch < 'A' || ch > 'Z' {
				return fmt.Errorf("%w: cell %v holds %q", ErrInvalidBoard, C(r, c), ch)
			}
		}
	}
	for word, path := range b.Positions {
		if err := b.validatePath(word, path); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) validatePath(word string, path []Coord) error {
	letters := []rune(word)
	if len(path) != len(letters) {
		return fmt.Errorf("%w: %s has %d coords", ErrInvalidBoard, word, len(path))
	}
	for _, c := range path {
		if !c.In(b.Size) {
			return fmt.Errorf("%w: %s leaves the board at %v", ErrInvalidBoard, word, c)
		}
	}
	if len(path) > 1 {
		d := Direction{DR: path[1].Row - path[0].Row, DC: path[1].Col - path[0].Col}
		if !d.Valid() {
			return fmt.Errorf("%w: %s steps by %v", ErrInvalidBoard, word, d)
		}
		for i := range path {
			if path[i] != path[0].Step(d, i) {
				return fmt.Errorf("%w: %s bends at %v", ErrInvalidBoard, word, path[i])
			}
		}
	}
	read := make([]rune, len(path))
	for i, c := range path {
		read[i] = b.At(c)
	}
	if string(read) != word && string(reverse(read)) != word {
		return fmt.Errorf("%w: %s reads %q", ErrInvalidBoard, word, string(read))
	}
	return nil
}
