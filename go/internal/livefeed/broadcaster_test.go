package livefeed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
)

var kickoff = time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
	ids   []string
}

func (f *fakeSource) LiveBoard(ctx context.Context, now time.Time) (*fixtures.LiveBoard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	if f.err != nil {
		return nil, f.err
	}
	board := &fixtures.LiveBoard{Fixtures: []fixtures.Row{}, GeneratedAt: now}
	for _, id := range f.ids {
		board.Fixtures = append(board.Fixtures, fixtures.Row{ID: id})
	}
	return board, nil
}

func (f *fakeSource) set(err error, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	f.ids = ids
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func decodeBoard(t *testing.T, raw []byte) (*Event, fixtures.LiveBoard) {
	t.Helper()
	var ev Event
	require.NoError(t, json.Unmarshal(raw, &ev))
	var board fixtures.LiveBoard
	require.NoError(t, json.Unmarshal(ev.Data, &board))
	return &ev, board
}

func TestRefreshKeepsPreviousBoardOnFailure(t *testing.T) {
	src := &fakeSource{ids: []string{"f1"}}
	b := NewBroadcaster(src, NewConnectionManager(DefaultConnectionConfig()), matchclock.NewRefresher(clockwork.NewFakeClockAt(kickoff)))

	assert.Nil(t, b.Snapshot())
	require.True(t, b.Refresh(context.Background(), kickoff))
	first := b.Snapshot()
	require.NotNil(t, first)

	src.set(errors.New("backend down"))
	assert.False(t, b.Refresh(context.Background(), kickoff.Add(time.Minute)))
	assert.Equal(t, first, b.Snapshot())

	ev, board := decodeBoard(t, b.Snapshot())
	assert.Equal(t, EventLiveBoard, ev.Type)
	require.Len(t, board.Fixtures, 1)
	assert.Equal(t, "f1", board.Fixtures[0].ID)
}

func TestRunRefreshesEveryPeriod(t *testing.T) {
	clock := clockwork.NewFakeClockAt(kickoff)
	src := &fakeSource{}
	b := NewBroadcaster(src, NewConnectionManager(DefaultConnectionConfig()), matchclock.NewRefresher(clock))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return src.callCount() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(matchclock.RefreshPeriod)
	require.Eventually(t, func() bool { return src.callCount() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcaster did not stop after cancel")
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, kickoff.Add(matchclock.RefreshPeriod), src.calls[1])
}

func TestServeWSSendsSnapshotThenUpdates(t *testing.T) {
	src := &fakeSource{ids: []string{"f1"}}
	manager := NewConnectionManager(DefaultConnectionConfig())
	b := NewBroadcaster(src, manager, matchclock.NewRefresher(clockwork.NewFakeClockAt(kickoff)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Start(ctx)
	require.True(t, b.Refresh(ctx, kickoff))

	r := chi.NewRouter()
	b.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/live", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	_, board := decodeBoard(t, msg)
	require.Len(t, board.Fixtures, 1)
	assert.Equal(t, "f1", board.Fixtures[0].ID)

	require.Eventually(t, func() bool { return manager.Count() == 1 }, time.Second, 5*time.Millisecond)
	src.set(nil, "f1", "f2")
	require.True(t, b.Refresh(ctx, kickoff.Add(time.Minute)))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	ev, board := decodeBoard(t, msg)
	assert.Equal(t, EventLiveBoard, ev.Type)
	assert.Len(t, board.Fixtures, 2)
}
