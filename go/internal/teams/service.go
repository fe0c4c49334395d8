package teams

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Service serves the teams tab of the admin dashboard
type Service struct {
	forToken func(token string) TeamsAPI
}

// NewService creates a new teams HTTP service. forToken returns the league
// API as seen by the signed-in admin.
func NewService(forToken func(token string) TeamsAPI) *Service {
	return &Service{
		forToken: forToken,
	}
}

// RegisterRoutes mounts the team management routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/teams", s.ListTeams)
	r.Post("/teams", s.CreateTeam)
	r.Put("/teams/{teamID}", s.UpdateTeam)
	r.Delete("/teams/{teamID}", s.DeleteTeam)
}

func (s *Service) app(r *http.Request) (*App, error) {
	api, err := auth.Scoped(r, s.forToken)
	if err != nil {
		return nil, err
	}
	return NewApp(api), nil
}

// ListTeams lists every team
func (s *Service) ListTeams(w http.ResponseWriter, r *http.Request) {
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	teams, err := app.ListTeams(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, teams)
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var in models.TeamInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	team, err := app.CreateTeam(r.Context(), in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, team)
}

// UpdateTeam updates an existing team
func (s *Service) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("team id", chi.URLParam(r, "teamID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	var in models.TeamInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	team, err := app.UpdateTeam(r.Context(), id, in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, team)
}

// DeleteTeam deletes a team
func (s *Service) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("team id", chi.URLParam(r, "teamID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	if err := app.DeleteTeam(r.Context(), id); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.Ack(w, "Team deleted")
}
