package models

// InstagramPost is an Instagram post featured on the home page.
type InstagramPost struct {
	ID           string    `json:"id"`
	InstagramURL string    `json:"instagram_url"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    Timestamp `json:"created_at"`
}

// InstagramPostInput adds a featured post.
type InstagramPostInput struct {
	InstagramURL string  `json:"instagram_url"`
	Description  *string `json:"description,omitempty"`
}

// Subscription is a supporter subscription for a season.
type Subscription struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PaymentStatus string    `json:"payment_status"`
	Amount        float64   `json:"amount"`
	Season        string    `json:"season"`
	ExpiresAt     Timestamp `json:"expires_at"`
	CreatedAt     Timestamp `json:"created_at"`
}

// SubscriptionInput requests a subscription.
type SubscriptionInput struct {
	Email  string `json:"email"`
	Season string `json:"season"`
}

// LeagueBranding is the league logo shown in the dashboards and navigation.
type LeagueBranding struct {
	LogoURL   string    `json:"logo_url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	UpdatedAt Timestamp `json:"updated_at"`
}
