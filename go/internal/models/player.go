package models

// Player is a registered squad member.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TeamID       string    `json:"team_id"`
	JerseyNumber *int      `json:"jersey_number,omitempty"`
	GoalsScored  int       `json:"goals_scored"`
	YellowCards  int       `json:"yellow_cards"`
	RedCards     int       `json:"red_cards"`
	CreatedAt    Timestamp `json:"created_at"`
}

// PlayerInput is the body of player create and update calls.
type PlayerInput struct {
	Name         string `json:"name"`
	TeamID       string `json:"team_id"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`
}

// FilterPlayersByTeam returns the players registered to any of the given teams.
func FilterPlayersByTeam(players []Player, teamIDs ...string) []Player {
	out := make([]Player, 0)
	for _, p := range players {
		for _, id := range teamIDs {
			if p.TeamID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
