package copa

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

// CopaApp defines what the service layer needs from the copa application
type CopaApp interface {
	Page(ctx context.Context, group, jornada string, now time.Time) (*Page, error)
}

// Service serves the public Copa view
type Service struct {
	app   CopaApp
	clock clockwork.Clock
}

// NewService creates a new copa HTTP service
func NewService(app CopaApp, clock clockwork.Clock) *Service {
	return &Service{app: app, clock: clock}
}

// RegisterRoutes mounts the public Copa route
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/copa", s.GetPage)
}

// GetPage serves the Copa view for ?group=A..D|all&jornada=1..5|all.
func (s *Service) GetPage(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	jornada := r.URL.Query().Get("jornada")

	page, err := s.app.Page(r.Context(), group, jornada, s.clock.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			httpapi.WriteError(w, r, err)
			return
		}
		log.Error().Err(err).Msg("failed to load copa page")
		httpapi.WriteJSON(w, http.StatusBadGateway, EmptyPage(group, jornada))
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, page)
}
