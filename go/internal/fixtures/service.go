package fixtures

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
)

// FixturesApp defines what the service layer needs from the fixtures application
type FixturesApp interface {
	FixturesPage(ctx context.Context, division int, week string, now time.Time) (*Page, error)
	LiveBoard(ctx context.Context, now time.Time) (*LiveBoard, error)
}

// Service serves the fixtures views over HTTP
type Service struct {
	app   FixturesApp
	clock clockwork.Clock
}

// NewService creates a new fixtures HTTP service
func NewService(app FixturesApp, clock clockwork.Clock) *Service {
	return &Service{app: app, clock: clock}
}

// RegisterRoutes mounts the public fixtures routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/fixtures", s.GetFixturesPage)
	r.Get("/fixtures/live", s.GetLiveBoard)
}

// GetFixturesPage serves the board for ?division=1|2&week=N|all. A failed
// upstream call still renders an empty board with a notice.
func (s *Service) GetFixturesPage(w http.ResponseWriter, r *http.Request) {
	division, err := httpapi.ParseDivision(r.URL.Query().Get("division"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	week := r.URL.Query().Get("week")
	if week == "" {
		week = AllWeeks
	}

	now := s.clock.Now()
	page, err := s.app.FixturesPage(r.Context(), division, week, now)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			httpapi.WriteError(w, r, err)
			return
		}
		log.Error().Err(err).Int("division", division).Msg("failed to load fixtures")
		httpapi.WriteJSON(w, http.StatusBadGateway, EmptyPage(division, week, now))
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, page)
}

// GetLiveBoard serves the fixtures currently in play.
func (s *Service) GetLiveBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.app.LiveBoard(r.Context(), s.clock.Now())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, board)
}
