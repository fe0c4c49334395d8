package matchclock

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

var kickoff = time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)

func TestEstimateBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		offset  time.Duration
		want    Clock
		wantLbl string
	}{
		{"one minute before kickoff", -time.Minute, Clock{State: StateNotStarted}, ""},
		{"thirty seconds before kickoff", -30 * time.Second, Clock{State: StateNotStarted}, ""},
		{"kickoff", 0, Clock{State: StateLive, Minute: 0}, "0'"},
		{"end of first half", 45 * time.Minute, Clock{State: StateLive, Minute: 45}, "45'"},
		{"first half seconds are floored", 45*time.Minute + 59*time.Second, Clock{State: StateLive, Minute: 45}, "45'"},
		{"start of break", 46 * time.Minute, Clock{State: StateHalfTime}, "HT"},
		{"end of break", 60 * time.Minute, Clock{State: StateHalfTime}, "HT"},
		{"second half resumes at 46", 61 * time.Minute, Clock{State: StateLive, Minute: 46}, "46'"},
		{"end of second half", 105 * time.Minute, Clock{State: StateLive, Minute: 90}, "90'"},
		{"full time", 106 * time.Minute, Clock{State: StateFullTime}, "FT"},
		{"long after", 24 * time.Hour, Clock{State: StateFullTime}, "FT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Estimate(kickoff, kickoff.Add(tc.offset))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLbl, got.Label())
		})
	}
}

func TestEstimateIsPure(t *testing.T) {
	now := kickoff.Add(73 * time.Minute)
	first := Estimate(kickoff, now)
	second := Estimate(kickoff, now)
	assert.Equal(t, first, second)
	assert.Equal(t, Clock{State: StateLive, Minute: 58}, first)
}

func TestEstimateMinutesAreMonotonic(t *testing.T) {
	prev := -1
	for m := 0; m <= 105; m++ {
		c := Estimate(kickoff, kickoff.Add(time.Duration(m)*time.Minute))
		if c.State != StateLive {
			continue
		}
		assert.Greater(t, c.Minute, prev, "minute %d", m)
		prev = c.Minute
	}
	assert.Equal(t, 90, prev)
}

func TestDescribeCompletedOverridesEstimate(t *testing.T) {
	home, away := 3, 1
	offsets := []time.Duration{-time.Hour, 0, 20 * time.Minute, 50 * time.Minute, 80 * time.Minute, 3 * time.Hour}

	for _, off := range offsets {
		d := Describe(models.FixtureStatusCompleted, kickoff, &home, &away, kickoff.Add(off))
		assert.True(t, d.Final)
		assert.False(t, d.Live)
		assert.Equal(t, "3 - 1", d.Score)
		assert.Equal(t, "FT", d.Label)
	}
}

func TestDescribeScheduled(t *testing.T) {
	cases := []struct {
		name   string
		offset time.Duration
		label  string
		live   bool
	}{
		{"before kickoff", -10 * time.Minute, "scheduled", false},
		{"first half", 12 * time.Minute, "12'", true},
		{"half time", 50 * time.Minute, "HT", true},
		{"second half", 100 * time.Minute, "85'", true},
		{"past full time without result", 2 * time.Hour, "FT", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Describe(models.FixtureStatusScheduled, kickoff, nil, nil, kickoff.Add(tc.offset))
			assert.Equal(t, tc.label, d.Label)
			assert.Equal(t, tc.live, d.Live)
			assert.False(t, d.Final)
			assert.Empty(t, d.Score)
		})
	}
}

func TestDescribeFixture(t *testing.T) {
	f := models.Fixture{
		Status:    models.FixtureStatusScheduled,
		MatchDate: models.Timestamp{Time: kickoff},
	}
	d := DescribeFixture(f, kickoff.Add(30*time.Minute))
	assert.Equal(t, "30'", d.Label)
}

func TestDescribeFixtureNaiveKickoffIsLeagueTime(t *testing.T) {
	var f models.Fixture
	require.NoError(t, json.Unmarshal([]byte(`{"status":"scheduled","match_date":"2024-10-05T10:00:00"}`), &f))

	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	now := time.Date(2024, 10, 5, 10, 5, 0, 0, madrid)

	d := DescribeFixture(f, now)
	assert.Equal(t, Clock{State: StateLive, Minute: 5}, d.Clock)
	assert.Equal(t, "5'", d.Label)
	assert.True(t, d.Live)
}

func TestClockJSONKeepsMinuteZero(t *testing.T) {
	raw, err := json.Marshal(Clock{State: StateLive, Minute: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"live","minute":0}`, string(raw))
}
