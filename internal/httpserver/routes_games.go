// internal/httpserver/routes_games.go
//
// HTTP routes for playing a board. Pointer events from the browser map onto
// the selection engine one-to-one:
//   - POST   /games                 → create a session (optionally the daily board)
//   - GET    /games/{id}            → current snapshot
//   - POST   /games/{id}/begin      → pointer down on {row, col}
//   - POST   /games/{id}/extend     → pointer entered {row, col}
//   - POST   /games/{id}/end        → pointer up on the board
//   - POST   /games/{id}/cancel     → pointer up outside the board
//   - POST   /games/{id}/reset      → new layout, progress cleared
//   - GET    /games/{id}/board.png  → rendered board
//   - DELETE /games/{id}            → drop the session
//
// Everything under /games/{id} requires the token returned at creation.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/daily"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/render"
	"github.com/robalobadob/wordsearch/internal/store"
)

func (s *Server) mountGames() {
	s.r.Post("/games", s.handleNewGame)
	s.r.Route("/games/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleState)
		r.Delete("/", s.handleDelete)
		r.Post("/begin", s.handlePointer(func(g *game.Session, p pointerReq) { g.Begin(p.Row, p.Col) }))
		r.Post("/extend", s.handlePointer(func(g *game.Session, p pointerReq) { g.Extend(p.Row, p.Col) }))
		r.Post("/end", s.handleEnd)
		r.Post("/cancel", s.handleCancel)
		r.Post("/reset", s.handleReset)
		r.Get("/board.png", s.handleBoardPNG)
	})
}

// ------------------------------ create -------------------------------------

// newGameReq/Res payloads for POST /games.
type newGameReq struct {
	Category string `json:"category"`
	Level    int    `json:"level"`
	Daily    bool   `json:"daily"`
}
type newGameRes struct {
	GameID    string        `json:"gameId"`
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expiresAt"`
	State     game.Snapshot `json:"state"`
}

// handleNewGame looks the word list up, generates a board and hands back a
// token bound to the new session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" || req.Level <= 0 {
		writeError(w, http.StatusBadRequest, "category_and_level_required")
		return
	}

	words, err := s.catalog.Words(r.Context(), req.Category, req.Level)
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "category_not_found")
		return
	case errors.Is(err, catalog.ErrLevelNotFound):
		writeError(w, http.StatusNotFound, "level_not_found")
		return
	case err != nil:
		log.Error().Err(err).Msg("load words")
		writeError(w, http.StatusInternalServerError, "catalog_unavailable")
		return
	}

	cfg := s.opts.Game
	if req.Daily {
		cfg.Seed = daily.Seed(s.now(), s.opts.DailySalt, req.Category, req.Level)
		cfg.Seeded = true
	}
	g := game.New(cfg, req.Category, req.Level, words)
	if len(g.Board.Unplaced) > 0 {
		log.Warn().Str("gameId", g.ID).Strs("unplaced", g.Board.Unplaced).Msg("words left off the board")
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.tokens.Issue(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("issue token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setTokenCookie(w, g.ID, tok, exp)

	log.Info().Str("gameId", g.ID).Str("category", req.Category).Int("level", req.Level).
		Bool("daily", req.Daily).Msg("game created")
	writeJSON(w, http.StatusCreated, newGameRes{
		GameID:    g.ID,
		Token:     tok,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
		State:     g.Snapshot(),
	})
}

// ------------------------------ play ---------------------------------------

// pointerReq is the payload for begin/extend.
type pointerReq struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// endRes is the payload returned by POST /games/{id}/end.
type endRes struct {
	game.Outcome
	Celebrate bool          `json:"celebrate"` // play the win cue; true once per board
	State     game.Snapshot `json:"state"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		snap = g.Snapshot()
		return nil
	})
	if s.storeError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handlePointer decodes {row, col} and applies fn. Off-board coordinates are
// accepted and simply leave the selection unchanged.
func (s *Server) handlePointer(fn func(*game.Session, pointerReq)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p pointerReq
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
		snap, err := s.update(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) { fn(g, p) })
		if s.storeError(w, err) {
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var out game.Outcome
	snap, err := s.update(r.Context(), id, func(g *game.Session) { out = g.End() })
	if s.storeError(w, err) {
		return
	}
	if out.Found {
		log.Info().Str("gameId", id).Str("word", out.Word).Msg("word found")
	}
	if out.Completed {
		log.Info().Str("gameId", id).Int("words", snap.Target).Msg("puzzle complete")
	}
	writeJSON(w, http.StatusOK, endRes{Outcome: out, Celebrate: out.Completed, State: snap})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	snap, err := s.update(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) { g.Cancel() })
	if s.storeError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.update(r.Context(), id, func(g *game.Session) { g.Reset() })
	if s.storeError(w, err) {
		return
	}
	log.Info().Str("gameId", id).Msg("game reset")
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	s.clearTokenCookie(w, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBoardPNG(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		snap = g.Snapshot()
		return nil
	})
	if s.storeError(w, err) {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := render.WritePNG(w, snap, render.DefaultOptions()); err != nil {
		log.Error().Err(err).Msg("render board")
	}
}

// update applies fn under the store lock and returns the resulting snapshot.
func (s *Server) update(ctx context.Context, id string, fn func(*game.Session)) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.store.Update(ctx, id, func(g *game.Session) error {
		fn(g)
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

// storeError writes the HTTP error for err and reports whether it did.
func (s *Server) storeError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		log.Error().Err(err).Msg("session store")
		writeError(w, http.StatusInternalServerError, "store_failed")
	}
	return true
}
