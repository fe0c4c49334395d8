package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"naive seconds are league time", "2024-10-05T10:00:00", time.Date(2024, 10, 5, 8, 0, 0, 0, time.UTC)},
		{"naive form value", "2024-10-05T10:00", time.Date(2024, 10, 5, 8, 0, 0, 0, time.UTC)},
		{"naive winter time", "2025-01-18 10:00:00", time.Date(2025, 1, 18, 9, 0, 0, 0, time.UTC)},
		{"offset is kept", "2024-10-05T12:00:00+02:00", time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)},
		{"zulu is kept", "2024-10-05T10:00:00Z", time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.in)
			require.NoError(t, err)
			assert.True(t, ts.Equal(tc.want), "got %s", ts.Time)
		})
	}

	ts, err := ParseTimestamp("2024-10-05T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, madrid.String(), ts.Location().String())

	_, err = ParseTimestamp("sábado")
	assert.Error(t, err)
}

func TestSetLeagueLocation(t *testing.T) {
	t.Cleanup(func() { SetLeagueLocation(nil) })

	SetLeagueLocation(time.UTC)
	ts, err := ParseTimestamp("2024-10-05T10:00:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)))

	SetLeagueLocation(nil)
	assert.Equal(t, DefaultLeagueTimezone, LeagueLocation().String())
}

func TestTimestampJSON(t *testing.T) {
	var f Fixture
	require.NoError(t, json.Unmarshal([]byte(`{"match_date":"2024-10-05T10:00:00"}`), &f))

	raw, err := json.Marshal(f.MatchDate)
	require.NoError(t, err)
	assert.Equal(t, `"2024-10-05T08:00:00Z"`, string(raw))

	var empty Timestamp
	require.NoError(t, json.Unmarshal([]byte("null"), &empty))
	assert.True(t, empty.IsZero())
}
