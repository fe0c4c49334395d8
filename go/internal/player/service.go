package player

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Service serves the players tab of the admin dashboard
type Service struct {
	forToken func(token string) PlayersAPI
}

// NewService creates a new player HTTP service
func NewService(forToken func(token string) PlayersAPI) *Service {
	return &Service{forToken: forToken}
}

// RegisterRoutes mounts the player management routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/players", s.ListPlayers)
	r.Post("/players", s.CreatePlayer)
	r.Put("/players/{playerID}", s.UpdatePlayer)
	r.Delete("/players/{playerID}", s.DeletePlayer)
}

func (s *Service) app(r *http.Request) (*App, error) {
	api, err := auth.Scoped(r, s.forToken)
	if err != nil {
		return nil, err
	}
	return NewApp(api), nil
}

func (s *Service) ListPlayers(w http.ResponseWriter, r *http.Request) {
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	rows, err := app.ListPlayers(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, rows)
}

func (s *Service) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var in models.PlayerInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	p, err := app.CreatePlayer(r.Context(), in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, p)
}

func (s *Service) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("player id", chi.URLParam(r, "playerID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	var in models.PlayerInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	p, err := app.UpdatePlayer(r.Context(), id, in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
}

func (s *Service) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("player id", chi.URLParam(r, "playerID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	if err := app.DeletePlayer(r.Context(), id); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.Ack(w, "Player deleted")
}
