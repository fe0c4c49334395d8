package teamdash

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
)

// Service serves the team dashboard. Every route expects a team session.
type Service struct {
	forToken func(token string) TeamAPI
	clock    clockwork.Clock
}

// NewService creates a new team dashboard HTTP service
func NewService(forToken func(token string) TeamAPI, clock clockwork.Clock) *Service {
	return &Service{forToken: forToken, clock: clock}
}

// RegisterRoutes mounts the team dashboard routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/", s.GetDashboard)
	r.Put("/fixtures/{fixtureID}/score", s.ReportScore)
	r.Post("/fixtures/{fixtureID}/goals", s.AddScorer)
}

// app binds the App to the session's team.
func (s *Service) app(r *http.Request) (*App, error) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}
	if sess.User.TeamID == nil || *sess.User.TeamID == "" {
		return nil, apperr.Forbidden("user %s is not linked to a team", sess.User.Username)
	}
	return NewApp(s.forToken(sess.Token), *sess.User.TeamID), nil
}

func (s *Service) GetDashboard(w http.ResponseWriter, r *http.Request) {
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	d, err := app.Dashboard(r.Context(), s.clock.Now())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, d)
}

func (s *Service) ReportScore(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("fixture id", chi.URLParam(r, "fixtureID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	var in ScoreReport
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	f, err := app.ReportScore(r.Context(), id, in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, f)
}

func (s *Service) AddScorer(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.ParseID("fixture id", chi.URLParam(r, "fixtureID"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	var in ScorerReport
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	app, err := s.app(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	if err := app.AddScorer(r.Context(), id, in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.Ack(w, "Goal scorer added")
}
