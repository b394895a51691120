// internal/httpserver/auth.go
//
// Session token handling for /games/{id} routes.
//   - Tokens are read from "Authorization: Bearer" or the token cookie.
//   - The token's game ID must equal the {id} path parameter.
//   - Cookies are scoped to /games/{id} so several boards can be open at once.

package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// requireGameToken rejects requests whose token does not belong to {id}.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := s.bearerOrCookie(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		gameID, err := s.tokens.Verify(tokenStr)
		if err != nil || gameID != chi.URLParam(r, "id") {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or token cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// setTokenCookie writes the session token cookie with appropriate security attributes.
func (s *Server) setTokenCookie(w http.ResponseWriter, gameID, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/games/" + gameID,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

// clearTokenCookie deletes the session token cookie.
func (s *Server) clearTokenCookie(w http.ResponseWriter, gameID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    "",
		Path:     "/games/" + gameID,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

func (s *Server) sameSite() http.SameSite {
	if s.opts.Secure {
		return http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	return http.SameSiteLaxMode
}
