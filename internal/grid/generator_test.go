package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var animals = []string{"GATO", "PERRO", "CABALLO", "ELEFANTE", "JIRAFA", "TORTUGA", "CONEJO", "LEON"}

func TestGenerateFillsEveryCell(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := NewGenerator(Size, WithSeed(seed)).Generate(animals)
		require.Equal(t, Size, b.Size)
		require.Len(t, b.Cells, Size)
		for _, row := range b.Cells {
			require.Len(t, row, Size)
			for _, ch := range row {
				require.True(t, strings.ContainsRune(Alphabet, ch), "cell %q outside alphabet", ch)
			}
		}
		require.NoError(t, b.Validate())
	}
}

func TestPlacementsSpellWords(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewGenerator(Size, WithSeed(seed)).GenerateComplete(animals)
		require.Empty(t, b.Unplaced)
		require.Len(t, b.Positions, len(animals))

		for word, path := range b.Positions {
			require.Len(t, path, len(word))
			d := Direction{DR: path[1].Row - path[0].Row, DC: path[1].Col - path[0].Col}
			require.True(t, d.Valid(), "%s: bad step %v", word, d)

			var sb strings.Builder
			for i, c := range path {
				require.True(t, c.In(Size))
				require.Equal(t, path[0].Step(d, i), c)
				sb.WriteRune(b.At(c))
			}
			read := sb.String()
			require.True(t, read == word || string(reverse([]rune(read))) == word,
				"%s read as %s", word, read)
		}
	}
}

func TestCrossingsShareLetters(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewGenerator(Size, WithSeed(seed)).GenerateComplete(animals)

		need := map[Coord]rune{}
		for word, path := range b.Positions {
			letters := []rune(word)
			read := make([]rune, len(path))
			for i, c := range path {
				read[i] = b.At(c)
			}
			if string(read) != word {
				letters = reverse(letters)
			}
			for i, c := range path {
				if prev, ok := need[c]; ok {
					require.Equal(t, prev, letters[i], "crossing at %v disagrees", c)
				}
				need[c] = letters[i]
			}
		}
		for c, ch := range need {
			require.Equal(t, ch, b.At(c))
		}
	}
}

func TestGenerateIsRandomWithoutSeed(t *testing.T) {
	a := NewGenerator(Size).Generate(animals)
	b := NewGenerator(Size).Generate(animals)
	require.NotEqual(t, a.String(), b.String())
}

func TestSeededGenerationIsReproducible(t *testing.T) {
	a := NewGenerator(Size, WithSeed(42)).Generate(animals)
	b := NewGenerator(Size, WithSeed(42)).Generate(animals)
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Positions, b.Positions)
}

func TestUnplaceableWordIsReported(t *testing.T) {
	long := strings.Repeat("A", Size+1)
	b := NewGenerator(Size, WithSeed(7), WithLayouts(2)).GenerateComplete([]string{"GATO", long})
	require.Equal(t, []string{long}, b.Unplaced)
	require.True(t, b.Placed("GATO"))
	require.False(t, b.Placed(long))
	require.NoError(t, b.Validate())
}

func TestDuplicateWordPlacedOnce(t *testing.T) {
	b := NewGenerator(Size, WithSeed(5)).Generate([]string{"GATO", "GATO"})
	require.Len(t, b.Positions, 1)
	require.Empty(t, b.Unplaced)
}

func TestValidateRejectsBrokenPath(t *testing.T) {
	b := NewGenerator(4, WithSeed(1)).Generate(nil)
	b.Cells[0][0], b.Cells[0][1], b.Cells[1][2] = 'A', 'B', 'C'
	b.Positions["ABC"] = []Coord{C(0, 0), C(0, 1), C(1, 2)}
	require.ErrorIs(t, b.Validate(), ErrInvalidBoard)
}

func TestDirections(t *testing.T) {
	seen := map[Direction]bool{}
	for _, d := range Directions {
		require.True(t, d.Valid())
		seen[d] = true
	}
	require.Len(t, seen, 8)
	require.False(t, Direction{}.Valid())
	require.False(t, Direction{DR: 2}.Valid())
}
