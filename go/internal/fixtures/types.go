package fixtures

import (
	"time"

	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// AllWeeks selects every matchday.
const AllWeeks = "all"

// LoadFailedNotice is shown when the fixtures could not be fetched.
const LoadFailedNotice = "Failed to load fixtures"

// Row is a fixture as the board renders it.
type Row struct {
	ID         string             `json:"id"`
	Division   int                `json:"division"`
	WeekNumber int                `json:"week_number"`
	HomeTeamID string             `json:"home_team_id"`
	AwayTeamID string             `json:"away_team_id"`
	HomeTeam   string             `json:"home_team"`
	AwayTeam   string             `json:"away_team"`
	HomeLogo   *string            `json:"home_logo,omitempty"`
	AwayLogo   *string            `json:"away_logo,omitempty"`
	MatchDate  time.Time          `json:"match_date"`
	Display    matchclock.Display `json:"display"`
	models.MatchEvents
}

// Week groups the fixtures of one matchday.
type Week struct {
	Number   int   `json:"number"`
	Fixtures []Row `json:"fixtures"`
}

// Page is the fixtures board of one division.
type Page struct {
	Division       int       `json:"division"`
	SelectedWeek   string    `json:"selected_week"`
	AvailableWeeks []int     `json:"available_weeks"`
	Weeks          []Week    `json:"weeks"`
	GeneratedAt    time.Time `json:"generated_at"`
	Notice         string    `json:"notice,omitempty"`
}

// EmptyPage is the fallback view when loading failed.
func EmptyPage(division int, week string, now time.Time) *Page {
	return &Page{
		Division:       division,
		SelectedWeek:   week,
		AvailableWeeks: []int{},
		Weeks:          []Week{},
		GeneratedAt:    now,
		Notice:         LoadFailedNotice,
	}
}

// LiveBoard lists the fixtures currently in play across both divisions.
type LiveBoard struct {
	Fixtures    []Row     `json:"fixtures"`
	GeneratedAt time.Time `json:"generated_at"`
}
