package response_models

import "vibevoyager/internal/models"

// ItineraryResponse is the current view of one itinerary session.
type ItineraryResponse struct {
	SessionID        string           `json:"session_id"`
	Destination      string           `json:"destination"`
	Vibe             string           `json:"vibe"`
	VibeDescription  string           `json:"vibeDescription"`
	Tastes           []string         `json:"tastes"`
	Days             []models.DayPlan `json:"days"`
	QlooDestinations []string         `json:"qlooDestinations,omitempty"`
	Extending        bool             `json:"extending"`
}
