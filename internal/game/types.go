// internal/game/types.go
//
// Core type definitions for a word-search play session.
// Defines:
//   - Config: generation knobs shared by every session the server creates.
//   - Session: one board plus the progress made on it.
//   - Outcome: result of closing a drag selection.
//   - Snapshot: JSON-friendly view consumed by the HTTP and rendering layers.

package game

import (
	"time"

	"github.com/robalobadob/wordsearch/internal/grid"
	"github.com/robalobadob/wordsearch/internal/selection"
)

// Config controls board generation.
type Config struct {
	Size     int   // Board dimension (grid.Size when zero).
	Attempts int   // Random tries per spelling (grid.DefaultAttempts when zero).
	Layouts  int   // Whole-board retries (grid.DefaultLayouts when zero).
	Seed     int64 // Used only when Seeded is true.
	Seeded   bool  // Reproduce the same board on every (re)generation.
}

// Session holds the state of a single word-search game.
// Board is replaced wholesale on Reset; nothing else keeps a reference to it.
type Session struct {
	ID        string           // Unique session identifier (random hex string).
	Category  string           // Catalog category the words came from.
	Level     int              // Level number inside the category.
	Daily     bool             // True when the board is the seeded daily puzzle.
	Words     []string         // Target words, in display order.
	Board     *grid.Board      // Current grid and placements.
	Found     []string         // Found words, in the order they were found.
	Confirmed []grid.Coord     // Cells of found words, highlighted permanently.
	Drag      selection.Drag   // Active pointer drag, if any.
	Complete  bool             // Set once every placed word has been found.
	CreatedAt time.Time        // Session creation time.
	UpdatedAt time.Time        // Last mutation; used for idle eviction.
	cfg       Config
	found     map[string]bool
}

// Outcome describes what closing a selection achieved.
type Outcome struct {
	Word      string `json:"word,omitempty"` // Word matched by the run, if any.
	Found     bool   `json:"found"`          // True if a new word was confirmed.
	Completed bool   `json:"completed"`      // True only on the selection that finished the puzzle.
}

// Snapshot is a read-only copy of a session for rendering.
// Placements of unfound words are deliberately absent.
type Snapshot struct {
	ID        string                  `json:"gameId"`
	Category  string                  `json:"category"`
	Level     int                     `json:"level"`
	Daily     bool                    `json:"daily"`
	Size      int                     `json:"size"`
	Rows      []string                `json:"rows"`
	Words     []string                `json:"words"`
	Found     []string                `json:"found"`
	Unplaced  []string                `json:"unplaced,omitempty"`
	Lines     map[string][]grid.Coord `json:"lines"`
	Confirmed []grid.Coord            `json:"confirmed"`
	Selection []grid.Coord            `json:"selection"`
	Target    int                     `json:"target"`
	Complete  bool                    `json:"complete"`
}
