package auth

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Service serves sign-in and sign-out
type Service struct {
	app     *App
	guard   *Guard
	limiter *LoginLimiter
}

// NewService creates a new auth HTTP service. limiter may be nil.
func NewService(app *App, guard *Guard, limiter *LoginLimiter) *Service {
	return &Service{app: app, guard: guard, limiter: limiter}
}

// RegisterRoutes mounts the auth routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", s.Login)
	r.Post("/auth/logout", s.Logout)
	r.With(s.guard.RequireAuth).Get("/auth/me", s.Me)
}

type userResponse struct {
	User models.User `json:"user"`
}

func (s *Service) Login(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(r) {
		httpapi.WriteError(w, r, fmt.Errorf("%w: wait before trying to sign in again", apperr.ErrRateLimited))
		return
	}

	var creds models.Credentials
	if err := httpapi.DecodeJSON(w, r, &creds); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	sess, err := s.app.Login(r.Context(), creds, s.guard.clock.Now())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	if err := save(s.guard.store, w, r, sess); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, userResponse{User: sess.User})
}

func (s *Service) Logout(w http.ResponseWriter, r *http.Request) {
	if err := drop(s.guard.store, w, r); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) Me(w http.ResponseWriter, r *http.Request) {
	sess, _ := FromContext(r.Context())
	httpapi.WriteJSON(w, http.StatusOK, userResponse{User: sess.User})
}
