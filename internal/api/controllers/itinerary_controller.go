package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibevoyager/internal/models/request_models"
	"vibevoyager/internal/services"
	"vibevoyager/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) StartItineraryHandler(c *gin.Context) {
	var req request_models.StartItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := services.ValidateTastes(req.Tastes); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := i.itineraryService.StartSession(req.Tastes, req.VibeResult)
	utils.RespondSuccess(c, resp, "Itinerary session started")
}

func (i *ItineraryController) GetItineraryHandler(c *gin.Context) {
	resp, err := i.itineraryService.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (i *ItineraryController) AppendDayHandler(c *gin.Context) {
	day, err := i.itineraryService.AppendDay(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, day, "Day added")
}
