// internal/grid/generator.go
//
// Word placement for a single word-search board.
// Responsibilities:
//   - Place each word (input order) forward first, reversed second.
//   - Bounded random search per spelling: random direction, random anchor.
//   - Allow crossings only where both words need the same letter.
//   - Fill every remaining cell with a random letter from Alphabet.
//
// Notes:
//   - A word that exhausts every attempt is reported in Board.Unplaced rather
//     than failing the whole pass. GenerateComplete retries whole layouts to
//     avoid handing out an unwinnable board.
//   - A Generator owns its *rand.Rand and is not safe for concurrent use.

package grid

import (
	"math/rand"
	"time"
)

const (
	// DefaultAttempts is the number of random tries per spelling of a word.
	DefaultAttempts = 100

	// DefaultLayouts bounds how many full boards GenerateComplete builds.
	DefaultLayouts = 25
)

// Generator builds boards of a fixed size.
type Generator struct {
	size     int
	attempts int
	layouts  int
	rnd      *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithAttempts overrides the per-spelling retry budget.
func WithAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.attempts = n
		}
	}
}

// WithLayouts overrides the whole-board retry budget used by GenerateComplete.
func WithLayouts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.layouts = n
		}
	}
}

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// NewGenerator returns a Generator for size×size boards.
// A non-positive size falls back to Size.
func NewGenerator(size int, opts ...Option) *Generator {
	if size <= 0 {
		size = Size
	}
	g := &Generator{
		size:     size,
		attempts: DefaultAttempts,
		layouts:  DefaultLayouts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Size reports the board dimension.
func (g *Generator) Size() int { return g.size }

// Generate runs a single placement pass.
func (g *Generator) Generate(words []string) *Board {
	b := &Board{
		Size:      g.size,
		Cells:     make([][]rune, g.size),
		Positions: make(map[string][]Coord, len(words)),
	}
	for r := range b.Cells {
		b.Cells[r] = make([]rune, g.size)
	}

	for _, w := range words {
		if _, dup := b.Positions[w]; dup {
			continue
		}
		if !g.place(b, w) {
			b.Unplaced = append(b.Unplaced, w)
		}
	}

	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == 0 {
				b.Cells[r][c] = rune(Alphabet[g.rnd.Intn(len(Alphabet))])
			}
		}
	}
	return b
}

// GenerateComplete repeats Generate until every word is placed or the layout
// budget runs out. In the latter case the board with the fewest unplaced words
// is returned.
func (g *Generator) GenerateComplete(words []string) *Board {
	var best *Board
	for i := 0; i < g.layouts; i++ {
		b := g.Generate(words)
		if len(b.Unplaced) == 0 {
			return b
		}
		if best == nil || len(b.Unplaced) < len(best.Unplaced) {
			best = b
		}
	}
	return best
}

// place tries the forward spelling, then the reversed one.
// Coordinates are recorded in the order the letters were written, so a
// reversed placement reads the word from its last coordinate back.
func (g *Generator) place(b *Board, word string) bool {
	forward := []rune(word)
	if len(forward) == 0 || len(forward) > g.size {
		return false
	}
	for _, variant := range [][]rune{forward, reverse(forward)} {
		for attempt := 0; attempt < g.attempts; attempt++ {
			d := Directions[g.rnd.Intn(len(Directions))]
			start := Coord{Row: g.rnd.Intn(g.size), Col: g.rnd.Intn(g.size)}
			if !fits(b, variant, start, d) {
				continue
			}
			path := make([]Coord, len(variant))
			for i, ch := range variant {
				c := start.Step(d, i)
				b.Cells[c.Row][c.Col] = ch
				path[i] = c
			}
			b.Positions[word] = path
			return true
		}
	}
	return false
}

// fits reports whether word can be written from start along d without leaving
// the board or overwriting a different letter.
func fits(b *Board, word []rune, start Coord, d Direction) bool {
	for i, ch := range word {
		c := start.Step(d, i)
		if !c.In(b.Size) {
			return false
		}
		if cur := b.Cells[c.Row][c.Col]; cur != 0 && cur != ch {
			return false
		}
	}
	return true
}

func reverse(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}
