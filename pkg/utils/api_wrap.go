package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTasteCount):
		RespondError(c, http.StatusBadRequest, ErrInvalidTasteCount.Error())
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary session not found")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Saved itinerary not found")
	case errors.Is(err, ErrItineraryFull):
		RespondError(c, http.StatusConflict, "Itinerary already has 7 days")
	case errors.Is(err, ErrExtensionInProgress):
		RespondError(c, http.StatusConflict, "A day extension is already in progress")
	case errors.Is(err, ErrNothingToUndo):
		RespondError(c, http.StatusConflict, "Nothing to undo")
	case errors.Is(err, ErrSchemaMismatch), errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrNoJSONPayload), errors.Is(err, ErrEmptyModelResponse):
		RespondError(c, http.StatusBadGateway, "The model did not return a usable itinerary")
	case errors.Is(err, ErrStorageFailure):
		log.Printf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Could not persist the itinerary")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
