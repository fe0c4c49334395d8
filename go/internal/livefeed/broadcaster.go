// Package livefeed pushes the live match clock of fixtures in play to
// WebSocket clients.
package livefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
)

// fetchTimeout bounds one refresh of the live board.
const fetchTimeout = 20 * time.Second

// BoardSource builds the live board at a point in time.
type BoardSource interface {
	LiveBoard(ctx context.Context, now time.Time) (*fixtures.LiveBoard, error)
}

// Broadcaster re-evaluates the live board every refresh period and pushes it
// to every client. A failed refresh keeps the previous board.
type Broadcaster struct {
	source    BoardSource
	manager   *ConnectionManager
	refresher *matchclock.Refresher

	mu   sync.RWMutex
	last []byte
}

// NewBroadcaster creates a Broadcaster
func NewBroadcaster(source BoardSource, manager *ConnectionManager, refresher *matchclock.Refresher) *Broadcaster {
	return &Broadcaster{source: source, manager: manager, refresher: refresher}
}

// Run refreshes the board until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Info().Dur("period", matchclock.RefreshPeriod).Msg("live feed broadcaster started")
	b.refresher.Run(ctx, func(now time.Time) {
		b.Refresh(ctx, now)
	})
	log.Info().Msg("live feed broadcaster stopped")
}

// Refresh rebuilds the board at now and broadcasts it. It reports whether a
// new board was published.
func (b *Broadcaster) Refresh(ctx context.Context, now time.Time) bool {
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	board, err := b.source.LiveBoard(fctx, now)
	if err != nil {
		boardRefreshes.WithLabelValues("error").Inc()
		log.Warn().Err(err).Msg("failed to refresh live board, keeping previous board")
		return false
	}

	event, err := NewEvent(EventLiveBoard, board, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to build live board event")
		return false
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal live board event")
		return false
	}

	b.mu.Lock()
	b.last = data
	b.mu.Unlock()

	b.manager.Broadcast(event)
	boardRefreshes.WithLabelValues("ok").Inc()
	liveFixturesGauge.Set(float64(len(board.Fixtures)))
	log.Debug().Int("live_fixtures", len(board.Fixtures)).Msg("live board refreshed")
	return true
}

// Snapshot returns the last published event, or nil before the first
// successful refresh.
func (b *Broadcaster) Snapshot() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last
}

// RegisterRoutes mounts the WebSocket endpoint
func (b *Broadcaster) RegisterRoutes(r chi.Router) {
	r.Get("/ws/live", b.ServeWS)
}

// ServeWS upgrades the request and sends the current board right away.
func (b *Broadcaster) ServeWS(w http.ResponseWriter, r *http.Request) {
	if err := b.manager.UpgradeConnection(w, r, b.Snapshot()); err != nil {
		// The upgrader has already written the HTTP error.
		log.Warn().Err(err).Str("remote_addr", r.RemoteAddr).Msg("failed to open live feed")
	}
}
