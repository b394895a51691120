// internal/game/engine.go
//
// Session engine for a single word-search board.
// Responsibilities:
//   - Create sessions and (re)generate boards through the grid package.
//   - Feed pointer events (begin / extend / end / cancel) into the drag tracker.
//   - Confirm words whose placement matches a completed run.
//   - Track completion so the win signal fires exactly once per board.
//
// Notes:
//   - Words that could not be placed are excluded from the win target, so a
//     crowded board can still be finished.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/robalobadob/wordsearch/internal/grid"
	"github.com/robalobadob/wordsearch/internal/selection"
)

// New constructs a session for the given words and generates its first board.
func New(cfg Config, category string, level int, words []string) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        randomID(),
		Category:  category,
		Level:     level,
		Daily:     cfg.Seeded,
		Words:     append([]string(nil), words...),
		CreatedAt: now,
		cfg:       cfg,
	}
	s.Reset()
	s.UpdatedAt = now
	return s
}

// Reset replaces the board and clears every piece of progress in one step.
// Seeded sessions regenerate the identical layout.
func (s *Session) Reset() {
	s.Board = s.generator().GenerateComplete(s.Words)
	s.Found = []string{}
	s.Confirmed = []grid.Coord{}
	s.found = make(map[string]bool, len(s.Words))
	s.Drag = selection.Drag{Size: s.Board.Size}
	s.Complete = false
}

func (s *Session) generator() *grid.Generator {
	opts := []grid.Option{
		grid.WithAttempts(s.cfg.Attempts),
		grid.WithLayouts(s.cfg.Layouts),
	}
	if s.cfg.Seeded {
		opts = append(opts, grid.WithSeed(s.cfg.Seed))
	}
	return grid.NewGenerator(s.cfg.Size, opts...)
}

// Begin starts a selection at (row, col). Off-board cells are ignored.
func (s *Session) Begin(row, col int) bool {
	return s.Drag.Begin(grid.C(row, col))
}

// Extend moves the live end of the selection to (row, col).
// Returns false when the event left the run unchanged.
func (s *Session) Extend(row, col int) bool {
	return s.Drag.Extend(grid.C(row, col))
}

// End closes the selection and confirms at most one unfound word whose
// placement equals the run, forward or reversed.
func (s *Session) End() Outcome {
	run := s.Drag.Finish()
	if run == nil {
		return Outcome{}
	}
	word, ok := selection.Match(run, s.Words, s.Board.Positions, func(w string) bool { return s.found[w] })
	if !ok {
		return Outcome{}
	}
	s.found[word] = true
	s.Found = append(s.Found, word)
	s.Confirmed = append(s.Confirmed, s.Board.Positions[word]...)

	out := Outcome{Word: word, Found: true}
	if !s.Complete && len(s.Found) == s.Target() {
		s.Complete = true
		out.Completed = true
	}
	return out
}

// Cancel abandons the selection without matching, e.g. when the pointer is
// released outside the board.
func (s *Session) Cancel() {
	s.Drag.Reset()
}

// Target is the number of words that can actually be found on this board.
func (s *Session) Target() int {
	return len(s.Board.Positions)
}

// IsFound reports whether word has been confirmed.
func (s *Session) IsFound(word string) bool { return s.found[word] }

// IsConfirmed reports whether c belongs to a found word.
func (s *Session) IsConfirmed(c grid.Coord) bool {
	for _, x := range s.Confirmed {
		if x == c {
			return true
		}
	}
	return false
}

// IsSelected reports whether c is on the active run.
func (s *Session) IsSelected(c grid.Coord) bool {
	for _, x := range s.Drag.Run {
		if x == c {
			return true
		}
	}
	return false
}

// Snapshot copies the session into a rendering view.
func (s *Session) Snapshot() Snapshot {
	lines := make(map[string][]grid.Coord, len(s.Found))
	for _, w := range s.Found {
		lines[w] = append([]grid.Coord(nil), s.Board.Positions[w]...)
	}
	return Snapshot{
		ID:        s.ID,
		Category:  s.Category,
		Level:     s.Level,
		Daily:     s.Daily,
		Size:      s.Board.Size,
		Rows:      s.Board.Rows(),
		Words:     append([]string(nil), s.Words...),
		Found:     append([]string{}, s.Found...),
		Unplaced:  append([]string(nil), s.Board.Unplaced...),
		Lines:     lines,
		Confirmed: append([]grid.Coord{}, s.Confirmed...),
		Selection: append([]grid.Coord{}, s.Drag.Run...),
		Target:    s.Target(),
		Complete:  s.Complete,
	}
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
