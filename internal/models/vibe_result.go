package models

// VibeResult is the model's first-call output: the travel personality plus
// the Day-1 activities.
type VibeResult struct {
	Vibe             string     `json:"vibe"`
	VibeDescription  string     `json:"vibeDescription"`
	Destination      string     `json:"destination"`
	Activities       []Activity `json:"activities"`
	Reasoning        string     `json:"reasoning,omitempty"`
	CulturalInsights []string   `json:"culturalInsights,omitempty"`
	TasteProfile     []string   `json:"tasteProfile,omitempty"`
	QlooDestinations []string   `json:"qlooDestinations,omitempty"`
}
