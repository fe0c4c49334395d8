package models

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"
	_ "time/tzdata"
)

// DefaultLeagueTimezone is where the league plays. Kickoffs entered in the
// dashboards carry no offset and are wall-clock times there.
const DefaultLeagueTimezone = "Europe/Madrid"

var leagueLocation atomic.Pointer[time.Location]

func init() {
	loc, err := time.LoadLocation(DefaultLeagueTimezone)
	if err != nil {
		loc = time.UTC
	}
	leagueLocation.Store(loc)
}

// SetLeagueLocation sets the zone used for timestamps without an offset. Pass
// nil to reset to DefaultLeagueTimezone.
func SetLeagueLocation(loc *time.Location) {
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation(DefaultLeagueTimezone); err != nil {
			loc = time.UTC
		}
	}
	leagueLocation.Store(loc)
}

// LeagueLocation returns the zone used for timestamps without an offset.
func LeagueLocation() *time.Location {
	return leagueLocation.Load()
}

// Timestamp is an instant as the league API serializes it. The API emits
// ISO-8601 with or without a zone offset; values without one are wall-clock
// times in the league location.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the layouts the API and the dashboard forms produce.
// An explicit offset is kept; otherwise the league location applies.
func ParseTimestamp(s string) (Timestamp, error) {
	loc := LeagueLocation()
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
