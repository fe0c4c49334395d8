package standings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// StandingsApp defines what the service layer needs from the standings application
type StandingsApp interface {
	Standings(ctx context.Context, division int) (*Table, error)
	TopScorers(ctx context.Context) (*Scorers, error)
	CardsBoard(ctx context.Context) (*Cards, error)
}

// Service serves the tables over HTTP
type Service struct {
	app StandingsApp
}

// NewService creates a new standings HTTP service
func NewService(app StandingsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the public table routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/standings", s.GetStandings)
	r.Get("/top-scorers", s.GetTopScorers)
	r.Get("/cards", s.GetCards)
}

func (s *Service) GetStandings(w http.ResponseWriter, r *http.Request) {
	division, err := httpapi.ParseDivision(r.URL.Query().Get("division"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	table, err := s.app.Standings(r.Context(), division)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			httpapi.WriteError(w, r, err)
			return
		}
		log.Error().Err(err).Int("division", division).Msg("failed to load standings")
		httpapi.WriteJSON(w, http.StatusBadGateway, &Table{
			Division: division,
			Rows:     []models.StandingsRow{},
			Notice:   "Failed to load standings",
		})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, table)
}

func (s *Service) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	scorers, err := s.app.TopScorers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load top scorers")
		httpapi.WriteJSON(w, http.StatusBadGateway, &Scorers{
			Division1: []models.TopScorer{},
			Division2: []models.TopScorer{},
			Notice:    "Failed to load top scorers",
		})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, scorers)
}

func (s *Service) GetCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.app.CardsBoard(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load cards")
		httpapi.WriteJSON(w, http.StatusBadGateway, &Cards{
			Division1: []models.PlayerCards{},
			Division2: []models.PlayerCards{},
			Notice:    "Failed to load cards",
		})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, cards)
}
