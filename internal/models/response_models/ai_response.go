package response_models

import "vibevoyager/internal/models"

// AIResponse is the tagged outcome of a generation call. Error is only set
// when Success is false; FallbackUsed tells the caller whether demo/offline
// messaging applies, QlooUsed whether cultural hints made it into the prompt.
type AIResponse struct {
	Success      bool               `json:"success"`
	Data         *models.VibeResult `json:"data,omitempty"`
	Error        string             `json:"error,omitempty"`
	QlooUsed     bool               `json:"qlooUsed"`
	FallbackUsed bool               `json:"fallbackUsed"`
}
