// Package matchclock approximates the progress of a match from its scheduled
// kickoff. There is no referee feed: the label is derived from wall-clock time
// alone, assuming two 45 minute halves separated by a 15 minute break and no
// added time.
package matchclock

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const (
	halfLength     = 45
	halfTimeLength = 15

	firstHalfEnd  = halfLength                    // 45
	secondHalfOn  = firstHalfEnd + halfTimeLength // 60
	secondHalfEnd = secondHalfOn + halfLength     // 105
)

// State is the phase of a match as seen from the stands.
type State string

const (
	StateNotStarted State = "not_started"
	StateLive       State = "live"
	StateHalfTime   State = "half_time"
	StateFullTime   State = "full_time"
)

// Clock is the estimated match progress. Minute is only meaningful when
// State is StateLive.
type Clock struct {
	State  State `json:"state"`
	Minute int   `json:"minute"`
}

// Estimate maps the elapsed whole minutes since kickoff onto the match phases.
func Estimate(kickoff, now time.Time) Clock {
	elapsed := elapsedMinutes(kickoff, now)

	switch {
	case elapsed < 0:
		return Clock{State: StateNotStarted}
	case elapsed <= firstHalfEnd:
		return Clock{State: StateLive, Minute: elapsed}
	case elapsed <= secondHalfOn:
		return Clock{State: StateHalfTime}
	case elapsed <= secondHalfEnd:
		return Clock{State: StateLive, Minute: elapsed - halfTimeLength}
	default:
		return Clock{State: StateFullTime}
	}
}

// elapsedMinutes floors toward negative infinity so that the seconds before
// kickoff count as minute -1.
func elapsedMinutes(kickoff, now time.Time) int {
	d := now.Sub(kickoff)
	m := d / time.Minute
	if d < 0 && d%time.Minute != 0 {
		m--
	}
	return int(m)
}

// Label renders the clock the way the fixtures board shows it.
func (c Clock) Label() string {
	switch c.State {
	case StateLive:
		return strconv.Itoa(c.Minute) + "'"
	case StateHalfTime:
		return "HT"
	case StateFullTime:
		return "FT"
	}
	return ""
}

// Running reports whether the match is in play or at the break.
func (c Clock) Running() bool {
	return c.State == StateLive || c.State == StateHalfTime
}

// Display is what a fixture row shows in the middle column.
type Display struct {
	Clock     Clock  `json:"clock"`
	Label     string `json:"label"`
	Live      bool   `json:"live"`
	Final     bool   `json:"final"`
	HomeScore *int   `json:"home_score,omitempty"`
	AwayScore *int   `json:"away_score,omitempty"`
	Score     string `json:"score,omitempty"`
}

// Describe derives the display of a fixture. A completed status from the
// backend always wins over the estimate and shows the final score.
func Describe(status models.FixtureStatus, kickoff time.Time, home, away *int, now time.Time) Display {
	if status == models.FixtureStatusCompleted {
		d := Display{
			Clock:     Clock{State: StateFullTime},
			Label:     "FT",
			Final:     true,
			HomeScore: home,
			AwayScore: away,
		}
		d.Score = formatScore(home, away)
		return d
	}

	c := Estimate(kickoff, now)
	label := c.Label()
	if c.State == StateNotStarted {
		label = string(models.FixtureStatusScheduled)
	}
	return Display{
		Clock: c,
		Label: label,
		Live:  c.Running(),
	}
}

// DescribeFixture is Describe for a league fixture.
func DescribeFixture(f models.Fixture, now time.Time) Display {
	return Describe(f.Status, f.MatchDate.Time, f.HomeScore, f.AwayScore, now)
}

func formatScore(home, away *int) string {
	return fmt.Sprintf("%s - %s", scoreText(home), scoreText(away))
}

func scoreText(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}

// Unscheduled is the display of a match without a kickoff time yet.
func Unscheduled() Display {
	return Display{
		Clock: Clock{State: StateNotStarted},
		Label: string(models.FixtureStatusScheduled),
	}
}
