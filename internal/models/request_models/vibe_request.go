package request_models

// GenerateVibeRequest carries the user's cultural tastes (2-3 entries).
type GenerateVibeRequest struct {
	Tastes []string `json:"tastes" binding:"required"`
}
