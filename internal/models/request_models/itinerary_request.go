package request_models

import "vibevoyager/internal/models"

// StartItineraryRequest seeds a viewing session from a generated vibe result.
type StartItineraryRequest struct {
	Tastes     []string          `json:"tastes" binding:"required"`
	VibeResult models.VibeResult `json:"vibe_result" binding:"required"`
}
