package sanctions

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
)

// SanctionsApp defines what the public service needs from the sanctions application
type SanctionsApp interface {
	Page(ctx context.Context) (*Page, error)
}

// Service serves the public sanctions view
type Service struct {
	app SanctionsApp
}

// NewService creates a new sanctions HTTP service
func NewService(app SanctionsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the public sanctions route
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/sanctions", s.GetSanctions)
}

func (s *Service) GetSanctions(w http.ResponseWriter, r *http.Request) {
	page, err := s.app.Page(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load sanctions")
		httpapi.WriteJSON(w, http.StatusBadGateway, EmptyPage())
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, page)
}
