// internal/httpserver/routes_catalog.go
//
// Read-only catalog endpoints backing the category menu and level selector:
//   - GET /categories        → every category with its level numbers
//   - GET /categories/{name} → one category's levels and word counts

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
)

func (s *Server) mountCatalog() {
	s.r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.handleCategories)
		r.Get("/{name}", s.handleCategory)
	})
}

type categoryRes struct {
	Name   string `json:"name"`
	Levels []int  `json:"levels"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list categories")
		writeError(w, http.StatusInternalServerError, "catalog_unavailable")
		return
	}
	out := make([]categoryRes, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryRes{Name: c.Name, Levels: c.LevelNumbers()})
	}
	writeJSON(w, http.StatusOK, out)
}

type levelRes struct {
	Number int `json:"number"`
	Words  int `json:"words"`
}

type categoryDetailRes struct {
	Name   string     `json:"name"`
	Levels []levelRes `json:"levels"`
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.Category(r.Context(), chi.URLParam(r, "name"))
	if errors.Is(err, catalog.ErrCategoryNotFound) {
		writeError(w, http.StatusNotFound, "category_not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get category")
		writeError(w, http.StatusInternalServerError, "catalog_unavailable")
		return
	}
	out := categoryDetailRes{Name: c.Name, Levels: make([]levelRes, 0, len(c.Levels))}
	for _, l := range c.Levels {
		out.Levels = append(out.Levels, levelRes{Number: l.Number, Words: len(l.Words)})
	}
	writeJSON(w, http.StatusOK, out)
}
