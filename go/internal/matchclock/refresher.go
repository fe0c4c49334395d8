package matchclock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// RefreshPeriod is how often live labels are re-evaluated. The estimate only
// changes on whole minutes.
const RefreshPeriod = time.Minute

// Refresher re-evaluates a view on a fixed period until the view goes away.
type Refresher struct {
	clock clockwork.Clock
}

// NewRefresher creates a Refresher driven by clock.
func NewRefresher(clock clockwork.Clock) *Refresher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Refresher{clock: clock}
}

// Now returns the current time of the underlying clock.
func (r *Refresher) Now() time.Time {
	return r.clock.Now()
}

// Run calls render immediately and then once per RefreshPeriod. It returns when
// ctx is cancelled, stopping the ticker.
func (r *Refresher) Run(ctx context.Context, render func(now time.Time)) {
	render(r.clock.Now())

	ticker := r.clock.NewTicker(RefreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.Chan():
			render(now)
		}
	}
}
