package copa

import (
	"time"

	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// GroupNames are the Copa group-stage groups.
var GroupNames = []string{"A", "B", "C", "D"}

const (
	// AllFilter disables a group or jornada filter.
	AllFilter = "all"
	// MaxJornada is the number of group-stage matchdays.
	MaxJornada = 5
	// QualifyingPositions advance from each group to the knockout rounds.
	QualifyingPositions = 2
)

// StandingRow is a group table line.
type StandingRow struct {
	models.StandingsRow
	Logo      *string `json:"logo,omitempty"`
	Qualified bool    `json:"qualified"`
}

// Group is a group with its table.
type Group struct {
	Name      string        `json:"name"`
	TeamIDs   []string      `json:"team_ids"`
	Standings []StandingRow `json:"standings"`
}

// FixtureRow is a group-stage match as the Copa page renders it.
type FixtureRow struct {
	ID        string             `json:"id"`
	GroupName string             `json:"group_name"`
	Jornada   int                `json:"jornada"`
	HomeTeam  string             `json:"home_team"`
	AwayTeam  string             `json:"away_team"`
	HomeLogo  *string            `json:"home_logo,omitempty"`
	AwayLogo  *string            `json:"away_logo,omitempty"`
	MatchDate time.Time          `json:"match_date"`
	Display   matchclock.Display `json:"display"`
	models.MatchEvents
}

// BracketMatch is a knockout match with resolved team names.
type BracketMatch struct {
	ID            string             `json:"id"`
	MatchPosition int                `json:"match_position"`
	HomeTeam      string             `json:"home_team,omitempty"`
	AwayTeam      string             `json:"away_team,omitempty"`
	Winner        string             `json:"winner,omitempty"`
	MatchDate     *time.Time         `json:"match_date,omitempty"`
	Display       matchclock.Display `json:"display"`
}

// Round is one knockout round in bracket order.
type Round struct {
	RoundType models.RoundType `json:"round_type"`
	Matches   []BracketMatch   `json:"matches"`
}

// Page is the Copa view.
type Page struct {
	Groups          []Group      `json:"groups"`
	SelectedGroup   string       `json:"selected_group"`
	SelectedJornada string       `json:"selected_jornada"`
	Fixtures        []FixtureRow `json:"fixtures"`
	Rounds          []Round      `json:"rounds"`
	Champion        string       `json:"champion,omitempty"`
	Notice          string       `json:"notice,omitempty"`
}

// EmptyPage is the fallback view when loading failed.
func EmptyPage(group, jornada string) *Page {
	return &Page{
		Groups:          []Group{},
		SelectedGroup:   group,
		SelectedJornada: jornada,
		Fixtures:        []FixtureRow{},
		Rounds:          []Round{},
		Notice:          "Failed to load Copa data",
	}
}
