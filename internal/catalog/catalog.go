// internal/catalog/catalog.go
//
// Category → level → word list data for the game menus.
//
// Responsibilities:
//   - Define the Source interface the server and terminal client read from.
//   - Normalise words to the board alphabet (A–Z, accents folded, spaces dropped).
//   - Validate catalogs: non-empty levels, unique words, words that fit the board.
//   - Provide an in-memory Source (Catalog) built from parsed data.
//
// Sources:
//   - HCL (hcl.go): the embedded default or a file named by CATALOG_FILE.
//   - SQLite (sqlite.go): a database named by CATALOG_DB, seeded from HCL.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrCategoryNotFound = errors.New("catalog: category not found")
	ErrLevelNotFound    = errors.New("catalog: level not found")
	ErrInvalidWord      = errors.New("catalog: invalid word")
)

// Level is one playable word list.
type Level struct {
	Number int      `json:"number"`
	Words  []string `json:"words"`
}

// Category groups levels under a menu entry.
type Category struct {
	Name   string  `json:"name"`
	Levels []Level `json:"levels"`
}

// LevelNumbers lists the level numbers of c in ascending order.
func (c Category) LevelNumbers() []int {
	out := make([]int, len(c.Levels))
	for i, l := range c.Levels {
		out[i] = l.Number
	}
	sort.Ints(out)
	return out
}

// Source supplies word lists. Implementations must be safe for concurrent use.
type Source interface {
	Categories(ctx context.Context) ([]Category, error)
	Category(ctx context.Context, name string) (Category, error)
	Words(ctx context.Context, category string, level int) ([]string, error)
}

// Normalize folds w onto the board alphabet.
// "Pingüino" → "PINGUINO", "oso polar" → "OSOPOLAR".
func Normalize(w string) (string, error) {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(fold, strings.TrimSpace(w))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidWord, w, err)
	}
	s = strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, w, r)
		}
	}
	return s, nil
}

// Catalog is an immutable in-memory Source.
type Catalog struct {
	categories []Category
}

// New normalises and validates categories into a Catalog.
// maxLen bounds word length (the board size); zero disables the check.
func New(categories []Category, maxLen int) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.New("catalog: no categories")
	}
	seenCat := make(map[string]bool, len(categories))
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, errors.New("catalog: category without a name")
		}
		if seenCat[strings.ToLower(name)] {
			return nil, fmt.Errorf("catalog: duplicate category %q", name)
		}
		seenCat[strings.ToLower(name)] = true
		if len(c.Levels) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no levels", name)
		}

		cat := Category{Name: name}
		seenLvl := map[int]bool{}
		for _, l := range c.Levels {
			if l.Number <= 0 {
				return nil, fmt.Errorf("catalog: %s: level numbers start at 1, got %d", name, l.Number)
			}
			if seenLvl[l.Number] {
				return nil, fmt.Errorf("catalog: %s: duplicate level %d", name, l.Number)
			}
			seenLvl[l.Number] = true
			words, err := normalizeLevel(l.Words, maxLen)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s level %d: %w", name, l.Number, err)
			}
			cat.Levels = append(cat.Levels, Level{Number: l.Number, Words: words})
		}
		sort.Slice(cat.Levels, func(i, j int) bool { return cat.Levels[i].Number < cat.Levels[j].Number })
		out = append(out, cat)
	}
	return &Catalog{categories: out}, nil
}

func normalizeLevel(words []string, maxLen int) ([]string, error) {
	if len(words) == 0 {
		return nil, errors.New("no words")
	}
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		n, err := Normalize(w)
		if err != nil {
			return nil, err
		}
		if maxLen > 0 && len(n) > maxLen {
			return nil, fmt.Errorf("%w: %s is longer than %d letters", ErrInvalidWord, n, maxLen)
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate word %s", n)
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

func (c *Catalog) Categories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

// Category looks a category up by name, ignoring case.
func (c *Catalog) Category(ctx context.Context, name string) (Category, error) {
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
}

func (c *Catalog) Words(ctx context.Context, category string, level int) ([]string, error) {
	cat, err := c.Category(ctx, category)
	if err != nil {
		return nil, err
	}
	for _, l := range cat.Levels {
		if l.Number == level {
			return append([]string(nil), l.Words...), nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%d", ErrLevelNotFound, cat.Name, level)
}
