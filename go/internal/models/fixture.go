package models

// FixtureStatus is the authoritative match status set by the backend.
type FixtureStatus string

const (
	FixtureStatusScheduled FixtureStatus = "scheduled"
	FixtureStatusLive      FixtureStatus = "live"
	FixtureStatusHalftime  FixtureStatus = "halftime"
	FixtureStatusCompleted FixtureStatus = "completed"
)

// TeamSide selects the home or away half of a fixture.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// Valid reports whether s is home or away.
func (s TeamSide) Valid() bool {
	return s == SideHome || s == SideAway
}

// CardType is the colour of a disciplinary card.
type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

// Valid reports whether c is yellow or red.
func (c CardType) Valid() bool {
	return c == CardYellow || c == CardRed
}

// GoalScorer is one goal recorded on a fixture.
type GoalScorer struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Minute     *int   `json:"minute,omitempty"`
}

// Card is one card recorded on a fixture.
type Card struct {
	ID         string   `json:"id"`
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	CardType   CardType `json:"card_type"`
	Minute     *int     `json:"minute,omitempty"`
}

// MatchEvents holds the goals and cards shared by league and Copa fixtures.
type MatchEvents struct {
	HomeScorers []GoalScorer `json:"home_scorers"`
	AwayScorers []GoalScorer `json:"away_scorers"`
	HomeCards   []Card       `json:"home_cards"`
	AwayCards   []Card       `json:"away_cards"`
}

// Fixture is a league match between two teams of the same division.
type Fixture struct {
	ID         string        `json:"id"`
	Division   int           `json:"division"`
	WeekNumber int           `json:"week_number"`
	HomeTeamID string        `json:"home_team_id"`
	AwayTeamID string        `json:"away_team_id"`
	HomeScore  *int          `json:"home_score"`
	AwayScore  *int          `json:"away_score"`
	MatchDate  Timestamp     `json:"match_date"`
	Status     FixtureStatus `json:"status"`
	MatchEvents
	UpdatedAt Timestamp `json:"updated_at"`
}

// Involves reports whether the team plays in the fixture.
func (f Fixture) Involves(teamID string) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// SideOf returns the side the team plays on.
func (f Fixture) SideOf(teamID string) (TeamSide, bool) {
	switch teamID {
	case f.HomeTeamID:
		return SideHome, true
	case f.AwayTeamID:
		return SideAway, true
	}
	return "", false
}

// FixtureInput creates a single fixture.
type FixtureInput struct {
	Division   int    `json:"division"`
	WeekNumber int    `json:"week_number"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	MatchDate  string `json:"match_date"`
}

// BulkFixture is one pairing inside a bulk create.
type BulkFixture struct {
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	MatchDate  string `json:"match_date"`
}

// BulkFixtureInput creates a whole matchday at once.
type BulkFixtureInput struct {
	Division   int           `json:"division"`
	WeekNumber int           `json:"week_number"`
	Fixtures   []BulkFixture `json:"fixtures"`
}

// FixtureUpdate edits score, status or scheduling. Nil fields are left alone.
type FixtureUpdate struct {
	HomeScore  *int           `json:"home_score,omitempty"`
	AwayScore  *int           `json:"away_score,omitempty"`
	Status     *FixtureStatus `json:"status,omitempty"`
	WeekNumber *int           `json:"week_number,omitempty"`
	MatchDate  *string        `json:"match_date,omitempty"`
}

// AddGoal records a goal scorer on one side.
type AddGoal struct {
	PlayerID string   `json:"player_id"`
	TeamSide TeamSide `json:"team_side"`
	Minute   *int     `json:"minute,omitempty"`
}

// AddCard records a card on one side.
type AddCard struct {
	PlayerID string   `json:"player_id"`
	TeamSide TeamSide `json:"team_side"`
	CardType CardType `json:"card_type"`
	Minute   *int     `json:"minute,omitempty"`
}

// RemoveGoal deletes a recorded goal.
type RemoveGoal struct {
	GoalID   string   `json:"goal_id"`
	TeamSide TeamSide `json:"team_side"`
}

// RemoveCard deletes a recorded card.
type RemoveCard struct {
	CardID   string   `json:"card_id"`
	TeamSide TeamSide `json:"team_side"`
}
