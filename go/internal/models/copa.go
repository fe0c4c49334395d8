package models

// CopaGroup is one of the four Copa group-stage groups.
type CopaGroup struct {
	ID        string    `json:"id"`
	GroupName string    `json:"group_name"`
	TeamIDs   []string  `json:"team_ids"`
	CreatedAt Timestamp `json:"created_at"`
}

// CopaGroupInput creates or replaces a group.
type CopaGroupInput struct {
	GroupName string   `json:"group_name"`
	TeamIDs   []string `json:"team_ids"`
}

// CopaFixture is a group-stage match on a given jornada.
type CopaFixture struct {
	ID         string        `json:"id"`
	GroupName  string        `json:"group_name"`
	Jornada    int           `json:"jornada"`
	HomeTeamID string        `json:"home_team_id"`
	AwayTeamID string        `json:"away_team_id"`
	HomeScore  *int          `json:"home_score"`
	AwayScore  *int          `json:"away_score"`
	MatchDate  Timestamp     `json:"match_date"`
	Status     FixtureStatus `json:"status"`
	MatchEvents
	UpdatedAt Timestamp `json:"updated_at"`
}

// CopaFixtureInput creates a group-stage match.
type CopaFixtureInput struct {
	GroupName  string `json:"group_name"`
	Jornada    int    `json:"jornada"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	MatchDate  string `json:"match_date"`
}

// CopaFixtureUpdate edits a group-stage match.
type CopaFixtureUpdate struct {
	HomeScore *int           `json:"home_score,omitempty"`
	AwayScore *int           `json:"away_score,omitempty"`
	Status    *FixtureStatus `json:"status,omitempty"`
	Jornada   *int           `json:"jornada,omitempty"`
	MatchDate *string        `json:"match_date,omitempty"`
}

// RoundType is a knockout round.
type RoundType string

const (
	RoundOf16    RoundType = "round_of_16"
	QuarterFinal RoundType = "quarter_final"
	SemiFinal    RoundType = "semi_final"
	Final        RoundType = "final"
)

// KnockoutRounds lists the rounds in bracket order.
var KnockoutRounds = []RoundType{RoundOf16, QuarterFinal, SemiFinal, Final}

// Slots is the number of matches in the round.
func (r RoundType) Slots() int {
	switch r {
	case RoundOf16:
		return 8
	case QuarterFinal:
		return 4
	case SemiFinal:
		return 2
	case Final:
		return 1
	}
	return 0
}

// CopaBracket is a knockout match. Teams stay empty until the previous round
// is decided.
type CopaBracket struct {
	ID            string        `json:"id"`
	RoundType     RoundType     `json:"round_type"`
	MatchPosition int           `json:"match_position"`
	HomeTeamID    *string       `json:"home_team_id"`
	AwayTeamID    *string       `json:"away_team_id"`
	HomeScore     *int          `json:"home_score"`
	AwayScore     *int          `json:"away_score"`
	MatchDate     *Timestamp    `json:"match_date"`
	Status        FixtureStatus `json:"status"`
	WinnerTeamID  *string       `json:"winner_team_id"`
	MatchEvents
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// CopaBracketInput creates a knockout match.
type CopaBracketInput struct {
	RoundType     RoundType `json:"round_type"`
	MatchPosition int       `json:"match_position"`
	HomeTeamID    *string   `json:"home_team_id,omitempty"`
	AwayTeamID    *string   `json:"away_team_id,omitempty"`
	MatchDate     *string   `json:"match_date,omitempty"`
}

// CopaBracketUpdate edits a knockout match.
type CopaBracketUpdate struct {
	HomeTeamID   *string        `json:"home_team_id,omitempty"`
	AwayTeamID   *string        `json:"away_team_id,omitempty"`
	HomeScore    *int           `json:"home_score,omitempty"`
	AwayScore    *int           `json:"away_score,omitempty"`
	Status       *FixtureStatus `json:"status,omitempty"`
	MatchDate    *string        `json:"match_date,omitempty"`
	WinnerTeamID *string        `json:"winner_team_id,omitempty"`
}
