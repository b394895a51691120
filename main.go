package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/grid"
	"github.com/robalobadob/wordsearch/internal/httpserver"
	"github.com/robalobadob/wordsearch/internal/store"
	"github.com/robalobadob/wordsearch/internal/token"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}
	defer closeCatalog()

	srv := httpserver.New(
		store.NewMemoryStore(),
		src,
		token.NewIssuer(cfg.TokenSecret, cfg.TokenTTL),
		httpserver.Options{
			Game:       game.Config{Size: grid.Size, Attempts: cfg.Attempts},
			DailySalt:  cfg.DailySalt,
			Origin:     cfg.Origin,
			Secure:     cfg.Production,
			SessionTTL: cfg.SessionTTL,
		},
	)
	log.Info().Str("port", cfg.Port).Msg("starting wordsearch server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openCatalog loads the HCL catalog and, when CATALOG_DB is set, serves it
// from SQLite instead, seeding an empty database from the HCL data first.
func openCatalog(ctx context.Context, cfg config) (catalog.Source, func(), error) {
	hcl, err := catalog.Load(cfg.CatalogFile, grid.Size)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CatalogDB == "" {
		return hcl, func() {}, nil
	}

	db, err := catalog.OpenSQLite(cfg.CatalogDB)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close catalog db")
		}
	}
	empty, err := db.Empty(ctx)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	if empty {
		if err := db.Import(ctx, hcl); err != nil {
			closeDB()
			return nil, nil, err
		}
	}
	log.Info().Str("db", cfg.CatalogDB).Msg("serving catalog from sqlite")
	return db, closeDB, nil
}
