package matchclock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresherRendersEveryMinuteUntilCancelled(t *testing.T) {
	clock := clockwork.NewFakeClockAt(kickoff)
	r := NewRefresher(clock)

	var mu sync.Mutex
	var labels []string
	rendered := make(chan struct{}, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, func(now time.Time) {
			mu.Lock()
			labels = append(labels, Estimate(kickoff, now).Label())
			mu.Unlock()
			rendered <- struct{}{}
		})
		close(done)
	}()

	<-rendered
	for i := 0; i < 2; i++ {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(RefreshPeriod)
		<-rendered
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"0'", "1'", "2'"}, labels)
}

func TestNewRefresherDefaultsToRealClock(t *testing.T) {
	r := NewRefresher(nil)
	assert.WithinDuration(t, time.Now(), r.Now(), time.Second)
}
