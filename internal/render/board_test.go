package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
)

func TestDimensionMatchesBrowserBoard(t *testing.T) {
	require.Equal(t, 18*42+10+16, DefaultOptions().Dimension(grid.Size))
}

func TestWritePNG(t *testing.T) {
	s := game.New(game.Config{Seed: 9, Seeded: true}, "Animales", 1, []string{"GATO", "PERRO"})
	path := s.Board.Positions["GATO"]
	s.Begin(path[0].Row, path[0].Col)
	s.Extend(path[len(path)-1].Row, path[len(path)-1].Col)
	s.End()
	s.Begin(0, 0)
	s.Extend(0, 3)

	var buf bytes.Buffer
	opts := DefaultOptions()
	require.NoError(t, WritePNG(&buf, s.Snapshot(), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	dim := opts.Dimension(grid.Size)
	require.Equal(t, dim, img.Bounds().Dx())
	require.Equal(t, dim, img.Bounds().Dy())
}

func TestBoardHighlightsConfirmedCells(t *testing.T) {
	s := game.New(game.Config{Seed: 4, Seeded: true}, "Animales", 1, []string{"LEON"})
	path := s.Board.Positions["LEON"]
	s.Begin(path[0].Row, path[0].Col)
	s.Extend(path[len(path)-1].Row, path[len(path)-1].Col)
	require.True(t, s.End().Found)

	opts := DefaultOptions()
	img, err := Board(s.Snapshot(), opts)
	require.NoError(t, err)

	// Sample just inside the left edge of a confirmed cell, clear of the glyph.
	x, y := opts.center(path[0])
	r, g, b, _ := img.At(int(x-opts.CellSize/2+3), int(y)).RGBA()
	require.Equal(t, uint32(0xA8), r>>8)
	require.Equal(t, uint32(0x88), g>>8)
	require.Equal(t, uint32(0xB5), b>>8)
}
