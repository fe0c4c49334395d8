package models

// Sanction is the disciplinary record of a player, with the suspension the
// league committee attached to it.
type Sanction struct {
	ID                 string  `json:"id"`
	PlayerID           string  `json:"player_id"`
	PlayerName         string  `json:"player_name"`
	TeamID             string  `json:"team_id"`
	TeamName           string  `json:"team_name"`
	Division           int     `json:"division"`
	TotalYellowCards   int     `json:"total_yellow_cards"`
	TotalRedCards      int     `json:"total_red_cards"`
	SuspensionGames    *int    `json:"suspension_games"`
	SuspensionFromWeek *int    `json:"suspension_from_week"`
	SuspensionToWeek   *int    `json:"suspension_to_week"`
	Notes              *string `json:"notes"`
}

// SanctionUpdate sets or clears the suspension of a player.
type SanctionUpdate struct {
	SuspensionGames    *int    `json:"suspension_games"`
	SuspensionFromWeek *int    `json:"suspension_from_week"`
	SuspensionToWeek   *int    `json:"suspension_to_week"`
	Notes              *string `json:"notes"`
}
