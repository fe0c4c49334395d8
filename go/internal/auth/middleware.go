package auth

import (
	"net/http"
	"slices"

	"github.com/gorilla/sessions"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Guard attaches sessions to requests and rejects the ones without access.
type Guard struct {
	app   *App
	store sessions.Store
	clock clockwork.Clock
}

// NewGuard creates a Guard over the cookie store.
func NewGuard(app *App, store sessions.Store, clock clockwork.Clock) *Guard {
	return &Guard{app: app, store: store, clock: clock}
}

// RequireAuth answers 401 unless the request carries a valid session. An
// expired or rejected session cookie is cleared.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := load(g.store, r)
		if !ok {
			httpapi.WriteError(w, r, apperr.ErrUnauthenticated)
			return
		}

		s, refreshed, err := g.app.Restore(r.Context(), s, g.clock.Now())
		if err != nil {
			if cerr := drop(g.store, w, r); cerr != nil {
				log.Error().Err(cerr).Msg("failed to clear session")
			}
			httpapi.WriteError(w, r, err)
			return
		}
		if refreshed {
			if err := save(g.store, w, r, s); err != nil {
				log.Error().Err(err).Msg("failed to refresh session")
			}
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// RequireRole answers 403 unless the session user has one of roles. It must
// run after RequireAuth.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := FromContext(r.Context())
			if !ok {
				httpapi.WriteError(w, r, apperr.ErrUnauthenticated)
				return
			}
			if !slices.Contains(roles, s.User.Role) {
				httpapi.WriteError(w, r, apperr.Forbidden("role %q may not access this page", s.User.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Scoped builds a value bound to the token of the request's session, usually
// an API client.
func Scoped[T any](r *http.Request, forToken func(token string) T) (T, error) {
	s, ok := FromContext(r.Context())
	if !ok {
		var zero T
		return zero, apperr.ErrUnauthenticated
	}
	return forToken(s.Token), nil
}
