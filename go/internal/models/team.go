package models

// Team is a club registered in one of the two league divisions.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Division  int       `json:"division"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

// TeamInput is the body of team create and update calls.
type TeamInput struct {
	Name     string  `json:"name"`
	Division int     `json:"division"`
	LogoURL  *string `json:"logo_url,omitempty"`
}

// TeamIndex maps team IDs to teams.
type TeamIndex map[string]Team

// IndexTeams builds a lookup table for resolving fixture team IDs.
func IndexTeams(teams []Team) TeamIndex {
	idx := make(TeamIndex, len(teams))
	for _, t := range teams {
		idx[t.ID] = t
	}
	return idx
}

// Name returns the team name or "Unknown" for IDs the API no longer knows.
func (idx TeamIndex) Name(id string) string {
	if t, ok := idx[id]; ok {
		return t.Name
	}
	return "Unknown"
}

// Logo returns the team logo URL, if any.
func (idx TeamIndex) Logo(id string) *string {
	if t, ok := idx[id]; ok {
		return t.LogoURL
	}
	return nil
}
