package utils

import "errors"

var (
	ErrInvalidTasteCount   = errors.New("between 2 and 3 tastes are required")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrSchemaMismatch      = errors.New("schema mismatch")
	ErrItineraryFull       = errors.New("itinerary already has the maximum number of days")
	ErrExtensionInProgress = errors.New("a day extension is already in flight")
	ErrSessionNotFound     = errors.New("itinerary session not found")
	ErrItineraryNotFound   = errors.New("saved itinerary not found")
	ErrStorageFailure      = errors.New("archive storage failure")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrEmptyModelResponse  = errors.New("model returned no content")
	ErrNoJSONPayload       = errors.New("no JSON payload found in model output")
)
