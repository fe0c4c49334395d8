package models

// Role is the dashboard a user is allowed into.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleTeam  Role = "team"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeam
}

// User is a dashboard account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	TeamID    *string   `json:"team_id,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is the login response of the API.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// UserInput registers a new dashboard account.
type UserInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Role     Role    `json:"role"`
	TeamID   *string `json:"team_id,omitempty"`
}
