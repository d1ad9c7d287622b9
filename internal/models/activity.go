package models

// Activity is one bookable moment inside an itinerary. Produced by the
// generator and never mutated afterwards.
type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Time        string  `json:"time"`     // free-text label, e.g. "4 PM"
	Category    string  `json:"category"` // Food, Music, Art, Culture, Adventure, Nightlife, Lifestyle, ...
	Rating      float64 `json:"rating,omitempty"`
	Image       string  `json:"image,omitempty"`
	Location    string  `json:"location,omitempty"`
	Price       string  `json:"price,omitempty"`
	Duration    string  `json:"duration,omitempty"`
}
