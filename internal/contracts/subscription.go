package contracts

import "time"

// Subscription is one alert-subscription request
type Subscription struct {
	Email        string             `json:"email"`
	Countries    string             `json:"countries"` // "all" or comma-separated ISO2 codes
	Triggers     map[string]float64 `json:"triggers"`
	Frequency    string             `json:"frequency"`
	SubscribedAt time.Time          `json:"subscribed_at"`
}
