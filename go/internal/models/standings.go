package models

// StandingsRow is one line of a league or Copa group table.
type StandingsRow struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	GamesPlayed    int    `json:"games_played"`
	GamesWon       int    `json:"games_won"`
	GamesDraw      int    `json:"games_draw"`
	GamesLost      int    `json:"games_lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// TopScorer is a player with at least one goal.
type TopScorer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Division   int    `json:"division,omitempty"`
	Goals      int    `json:"goals"`
}

// PlayerCards is the card tally of a player.
type PlayerCards struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}
