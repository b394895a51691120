// Command wordsearch-tui plays word-search boards in the terminal.
// Letters are selected by dragging the mouse across the grid.
//
// Environment:
//
//	CATALOG_FILE        HCL catalog to load instead of the embedded one.
//	PLACEMENT_ATTEMPTS  Random tries per spelling (default 100).
//	WORDSEARCH_LOG      File to append JSON logs to; logging is off when unset.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
)

func main() {
	_ = godotenv.Load()

	// The alt screen owns stdout, so logs go to a file or nowhere.
	log.Logger = zerolog.Nop()
	if path := os.Getenv("WORDSEARCH_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	cat, err := catalog.Load(os.Getenv("CATALOG_FILE"), grid.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}
	cats, err := cat.Categories(context.Background())
	if err != nil || len(cats) == 0 {
		fmt.Fprintln(os.Stderr, "catalog has no categories")
		os.Exit(1)
	}

	attempts, _ := strconv.Atoi(os.Getenv("PLACEMENT_ATTEMPTS"))
	m := newModel(cats, game.Config{Size: grid.Size, Attempts: attempts})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("tui exited")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
