// internal/render/board.go
//
// PNG rendering of a word-search board.
//
// Layout mirrors the browser board: a pink rounded panel, round letter cells
// on a fixed pitch, a thick round-capped stroke over every found word and one
// over the live selection.

package render

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
)

const (
	panelColor     = "#f1bece"
	highlightColor = "#A888B5"
	letterColor    = "#001858"
	invertedColor  = "#FFF7F3"
)

// Options controls the pixel geometry.
type Options struct {
	CellSize float64
	Gap      float64
	Padding  float64
}

// DefaultOptions matches the browser board: 32px cells, 10px gaps, 8px padding.
func DefaultOptions() Options {
	return Options{CellSize: 32, Gap: 10, Padding: 8}
}

// Dimension is the width and height in pixels of an n×n board.
func (o Options) Dimension(n int) int {
	return int(float64(n)*(o.CellSize+o.Gap) + o.Gap + o.Padding*2)
}

// center returns the pixel centre of c.
func (o Options) center(c grid.Coord) (float64, float64) {
	x := o.Padding + float64(c.Col)*(o.CellSize+o.Gap) + o.CellSize/2
	y := o.Padding + float64(c.Row)*(o.CellSize+o.Gap) + o.CellSize/2
	return x, y
}

var (
	fontOnce sync.Once
	boldFont *truetype.Font
	fontErr  error
)

func face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", fontErr)
	}
	return truetype.NewFace(boldFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Board draws snap.
func Board(snap game.Snapshot, o Options) (image.Image, error) {
	dc, err := draw(snap, o)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG encodes the rendered board as PNG into w.
func WritePNG(w io.Writer, snap game.Snapshot, o Options) error {
	dc, err := draw(snap, o)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func draw(snap game.Snapshot, o Options) (*gg.Context, error) {
	dim := o.Dimension(snap.Size)
	dc := gg.NewContext(dim, dim)

	dc.SetHexColor(panelColor)
	dc.DrawRoundedRectangle(0, 0, float64(dim), float64(dim), 8)
	dc.Fill()

	// Strokes first so letters stay on top.
	dc.SetHexColor(highlightColor)
	dc.SetLineWidth(o.CellSize)
	dc.SetLineCapRound()
	for _, w := range snap.Found {
		strokeRun(dc, o, snap.Lines[w])
	}
	strokeRun(dc, o, snap.Selection)

	highlighted := make(map[grid.Coord]bool, len(snap.Confirmed)+len(snap.Selection))
	for _, c := range snap.Confirmed {
		highlighted[c] = true
	}
	for _, c := range snap.Selection {
		highlighted[c] = true
	}

	f, err := face(18)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(f)
	for r, row := range snap.Rows {
		for col, ch := range []rune(row) {
			c := grid.C(r, col)
			x, y := o.center(c)
			if highlighted[c] {
				dc.SetHexColor(highlightColor)
				dc.DrawCircle(x, y, o.CellSize/2)
				dc.Fill()
				dc.SetHexColor(invertedColor)
			} else {
				dc.SetHexColor(letterColor)
			}
			dc.DrawStringAnchored(string(ch), x, y, 0.5, 0.5)
		}
	}
	return dc, nil
}

// strokeRun draws a single capsule from the first to the last cell of run.
func strokeRun(dc *gg.Context, o Options, run []grid.Coord) {
	if len(run) < 2 {
		return
	}
	x1, y1 := o.center(run[0])
	x2, y2 := o.center(run[len(run)-1])
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}
