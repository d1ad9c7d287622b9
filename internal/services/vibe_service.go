package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"vibevoyager/internal/models"
	"vibevoyager/internal/models/response_models"
	"vibevoyager/pkg/utils"
)

// vibeSystemPrompt pins the shape of the first-call reply: one JSON object,
// three string fields, exactly four Day-1 activities. The day-extension path
// sends no system message at all because its expected shape differs.
const vibeSystemPrompt = `You are VibeVoyager, an AI travel expert that creates personalized travel recommendations based on cultural tastes.

Your task: analyse the user's cultural preferences and build an itinerary that contains
1. A unique "vibe" name
2. A short description of their travel style
3. A perfect destination
4. Exactly four activities for Day 1

You MUST respond with a single, valid JSON object - no prose before or after.

{
  "vibe": "...",
  "vibeDescription": "...",
  "destination": "...",
  "activities": [
    { "id":"1","title":"...","description":"...","time":"4 PM","category":"Art","rating":4.8 }
  ]
}`

// VibeServiceInterface orchestrates generation: the initial vibe call and the
// one-day-at-a-time extension call.
type VibeServiceInterface interface {
	GenerateVibe(ctx context.Context, tastes []string) response_models.AIResponse
	ExtendByOneDay(ctx context.Context, destination string, previous []models.DayPlan, tastes []string) ([]models.Activity, error)
	TestConnection(ctx context.Context) bool
}

type VibeService struct {
	chat   utils.ChatClient
	qloo   QlooServiceInterface
	logger *zap.Logger
}

func NewVibeService(chat utils.ChatClient, qloo QlooServiceInterface, logger *zap.Logger) VibeServiceInterface {
	return &VibeService{
		chat:   chat,
		qloo:   qloo,
		logger: logger,
	}
}

// ValidateTastes enforces the 2-3 taste selection rule.
func ValidateTastes(tastes []string) error {
	if len(tastes) < 2 || len(tastes) > 3 {
		return utils.ErrInvalidTasteCount
	}
	for _, t := range tastes {
		if strings.TrimSpace(t) == "" {
			return utils.ErrInvalidTasteCount
		}
	}
	return nil
}

// GenerateVibe runs the full initial-generation flow: best-effort cultural
// hints, prompt construction, model call, extraction, and structural
// validation. The outcome is a tagged result, never a raised error.
func (v *VibeService) GenerateVibe(ctx context.Context, tastes []string) response_models.AIResponse {
	v.logger.Info("generating vibe", zap.Strings("tastes", tastes))

	// Enrichment only; DestinationsFromVibes degrades to empty on any failure.
	hints := v.qloo.DestinationsFromVibes(ctx, tastes, 3)

	userPrompt := buildVibePrompt(tastes, hints)

	raw, err := v.chat.Complete(ctx, vibeSystemPrompt, userPrompt)
	if err != nil {
		v.logger.Error("model call failed", zap.Error(err))
		return response_models.AIResponse{Success: false, Error: err.Error()}
	}

	payload, err := utils.ExtractJSON(raw)
	if err != nil {
		v.logger.Error("could not extract JSON from model output", zap.Error(err))
		return response_models.AIResponse{Success: false, Error: err.Error()}
	}

	var result models.VibeResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		v.logger.Error("model output did not parse", zap.Error(err))
		return response_models.AIResponse{Success: false, Error: utils.ErrSchemaMismatch.Error()}
	}
	if result.Vibe == "" || result.VibeDescription == "" || result.Destination == "" ||
		len(result.Activities) != models.ActivitiesPerDay {
		// No partial repair, no field coercion: a wrong shape is a hard error.
		v.logger.Error("model output failed schema validation")
		return response_models.AIResponse{Success: false, Error: utils.ErrSchemaMismatch.Error()}
	}

	if len(hints) > 0 {
		names := make([]string, 0, len(hints))
		for _, h := range hints {
			names = append(names, h.Entity.Name)
		}
		result.QlooDestinations = names
	}

	return response_models.AIResponse{
		Success:  true,
		Data:     &result,
		QlooUsed: len(hints) > 0,
	}
}

// ExtendByOneDay asks the model for four brand-new activities for the next
// day. The reply must be a bare JSON array, so this path carries no system
// message. The parsed array is used as-is; activity count and duplicate
// titles are not enforced beyond what the prompt requests.
func (v *VibeService) ExtendByOneDay(ctx context.Context, destination string, previous []models.DayPlan, tastes []string) ([]models.Activity, error) {
	var summary strings.Builder
	for _, p := range previous {
		titles := make([]string, 0, len(p.Activities))
		for _, a := range p.Activities {
			titles = append(titles, a.Title)
		}
		fmt.Fprintf(&summary, "Day %d: %s\n", p.Day, strings.Join(titles, ", "))
	}

	userPrompt := fmt.Sprintf(`We already have this itinerary for %s:
%s
Create four brand-new activities for Day %d
(no duplicates), still matching these tastes: %s.
Respond ONLY with the JSON array of activities in the earlier schema.`,
		destination, summary.String(), len(previous)+1, strings.Join(tastes, ", "))

	raw, err := v.chat.Complete(ctx, "", userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	payload, err := utils.ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var activities []models.Activity
	if err := json.Unmarshal([]byte(payload), &activities); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	return activities, nil
}

func (v *VibeService) TestConnection(ctx context.Context) bool {
	return v.chat.Ping(ctx)
}

func buildVibePrompt(tastes []string, hints []models.QlooInsight) string {
	base := fmt.Sprintf("Analyse these tastes: %s.\n\n", strings.Join(tastes, ", "))
	if len(hints) == 0 {
		return base + "Create a personalised recommendation that matches their tastes."
	}

	names := make([]string, 0, len(hints))
	for _, h := range hints {
		names = append(names, h.Entity.Name)
	}
	return base +
		fmt.Sprintf("Destinations that match: %s.\n\n", strings.Join(names, ", ")) +
		"Create a personalised recommendation using these insights."
}
