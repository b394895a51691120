package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsearch/internal/grid"
)

func TestUnitNormalisesDisplacement(t *testing.T) {
	cases := []struct {
		from, to grid.Coord
		want     grid.Direction
		ok       bool
	}{
		{grid.C(5, 5), grid.C(8, 5), grid.Direction{DR: 1}, true},
		{grid.C(5, 5), grid.C(5, 0), grid.Direction{DC: -1}, true},
		{grid.C(2, 2), grid.C(6, 6), grid.Direction{DR: 1, DC: 1}, true},
		{grid.C(6, 2), grid.C(2, 6), grid.Direction{DR: -1, DC: 1}, true},
		{grid.C(3, 3), grid.C(3, 3), grid.Direction{}, true},
		{grid.C(0, 0), grid.C(1, 2), grid.Direction{}, false},
		{grid.C(0, 0), grid.C(2, 4), grid.Direction{}, false},
	}
	for _, tc := range cases {
		d, ok := Unit(tc.from, tc.to)
		require.Equal(t, tc.ok, ok, "%v -> %v", tc.from, tc.to)
		if ok {
			require.Equal(t, tc.want, d)
		}
	}
}

func TestLine(t *testing.T) {
	run, ok := Line(grid.C(5, 5), grid.C(8, 5))
	require.True(t, ok)
	require.Equal(t, []grid.Coord{grid.C(5, 5), grid.C(6, 5), grid.C(7, 5), grid.C(8, 5)}, run)

	run, ok = Line(grid.C(4, 4), grid.C(2, 2))
	require.True(t, ok)
	require.Equal(t, []grid.Coord{grid.C(4, 4), grid.C(3, 3), grid.C(2, 2)}, run)

	run, ok = Line(grid.C(1, 1), grid.C(1, 1))
	require.True(t, ok)
	require.Equal(t, []grid.Coord{grid.C(1, 1)}, run)

	_, ok = Line(grid.C(0, 0), grid.C(1, 2))
	require.False(t, ok)
}

func TestDragNonCollinearExtendIsNoop(t *testing.T) {
	d := Drag{Size: grid.Size}
	require.True(t, d.Begin(grid.C(0, 0)))
	require.False(t, d.Extend(grid.C(1, 2)))
	require.Equal(t, []grid.Coord{grid.C(0, 0)}, d.Run)
}

func TestDragVerticalExtend(t *testing.T) {
	d := Drag{Size: grid.Size}
	d.Begin(grid.C(5, 5))
	require.True(t, d.Extend(grid.C(8, 5)))
	require.Equal(t, []grid.Coord{grid.C(5, 5), grid.C(6, 5), grid.C(7, 5), grid.C(8, 5)}, d.Run)

	// Moving back along another line replaces the run entirely.
	require.True(t, d.Extend(grid.C(5, 3)))
	require.Equal(t, []grid.Coord{grid.C(5, 5), grid.C(5, 4), grid.C(5, 3)}, d.Run)
}

func TestDragIgnoresOffBoardAndInactive(t *testing.T) {
	d := Drag{Size: 4}
	require.False(t, d.Extend(grid.C(1, 1)))
	require.False(t, d.Begin(grid.C(-1, 0)))
	require.False(t, d.Active)

	d.Begin(grid.C(0, 0))
	require.False(t, d.Extend(grid.C(4, 4)))
	require.Equal(t, []grid.Coord{grid.C(0, 0)}, d.Run)

	require.Equal(t, []grid.Coord{grid.C(0, 0)}, d.Finish())
	require.False(t, d.Active)
	require.Nil(t, d.Run)
	require.Nil(t, d.Finish())
}

func TestMatchEitherOrder(t *testing.T) {
	positions := map[string][]grid.Coord{
		"CAT": {grid.C(0, 0), grid.C(0, 1), grid.C(0, 2)},
		"DOG": {grid.C(3, 3), grid.C(2, 2), grid.C(1, 1)},
	}
	words := []string{"CAT", "DOG", "EMU"}

	w, ok := Match([]grid.Coord{grid.C(0, 2), grid.C(0, 1), grid.C(0, 0)}, words, positions, nil)
	require.True(t, ok)
	require.Equal(t, "CAT", w)

	w, ok = Match([]grid.Coord{grid.C(3, 3), grid.C(2, 2), grid.C(1, 1)}, words, positions, nil)
	require.True(t, ok)
	require.Equal(t, "DOG", w)

	_, ok = Match([]grid.Coord{grid.C(0, 0), grid.C(0, 1)}, words, positions, nil)
	require.False(t, ok)

	skipCat := func(w string) bool { return w == "CAT" }
	_, ok = Match([]grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(0, 2)}, words, positions, skipCat)
	require.False(t, ok)
}
