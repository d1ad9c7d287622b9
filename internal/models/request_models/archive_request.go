package request_models

// SaveItineraryRequest archives the itinerary currently held by a session.
type SaveItineraryRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
