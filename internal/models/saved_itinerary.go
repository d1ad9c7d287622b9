package models

// SavedItinerary is an archival snapshot of a finished itinerary. Activities
// are flattened across all days; day boundaries are not preserved, only order.
// ID doubles as the uniqueness key (generation timestamp in unix millis).
type SavedItinerary struct {
	ID              string     `json:"id"`
	Timestamp       string     `json:"timestamp"` // RFC-3339
	Tastes          []string   `json:"tastes"`
	Vibe            string     `json:"vibe"`
	VibeDescription string     `json:"vibeDescription"`
	Destination     string     `json:"destination"`
	Activities      []Activity `json:"activities"`
}

// MaxSavedItineraries caps the archive; inserting beyond it evicts the oldest.
const MaxSavedItineraries = 10
