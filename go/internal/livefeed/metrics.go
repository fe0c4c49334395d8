package livefeed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var connectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "ligaveteranos_livefeed_connections",
	Help: "Number of open live board WebSocket connections",
})

var boardRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ligaveteranos_livefeed_refreshes_total",
	Help: "Live board refreshes by outcome",
}, []string{"status"})

var liveFixturesGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "ligaveteranos_livefeed_live_fixtures",
	Help: "Fixtures on the last published live board",
})

var droppedMessages = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ligaveteranos_livefeed_dropped_messages_total",
	Help: "Broadcasts dropped because a queue was full",
})
