package liga_api_client

const (
	// API prefix appended to the backend URL
	APIPrefix = "/api"

	// Auth
	LoginEndpoint    = "/auth/login"
	MeEndpoint       = "/auth/me"
	RegisterEndpoint = "/auth/register"
	UsersEndpoint    = "/users"

	// League
	TeamsEndpoint           = "/teams"
	PlayersEndpoint         = "/players"
	FixturesEndpoint        = "/fixtures"
	StandingsEndpoint       = "/standings/division"
	TopScorersEndpoint      = "/top-scorers"
	CardsStatisticsEndpoint = "/cards-statistics"
	SanctionsEndpoint       = "/sanctions"

	// Content
	InstagramPostsEndpoint = "/instagram-posts"
	SubscriptionsEndpoint  = "/subscriptions/create"

	// Copa
	CopaGroupsEndpoint    = "/copa/groups"
	CopaFixturesEndpoint  = "/copa/fixtures"
	CopaStandingsEndpoint = "/copa/standings"
	CopaBracketsEndpoint  = "/copa/brackets"

	// Headers
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)
