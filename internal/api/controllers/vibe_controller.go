package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibevoyager/internal/models/request_models"
	"vibevoyager/internal/services"
	"vibevoyager/pkg/utils"
)

type VibeController struct {
	vibeService services.VibeServiceInterface
}

func NewVibeController(vibeService services.VibeServiceInterface) *VibeController {
	return &VibeController{vibeService: vibeService}
}

func (v *VibeController) GenerateVibeHandler(c *gin.Context) {
	var req request_models.GenerateVibeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// The taste-count rule is enforced before any network call goes out.
	if err := services.ValidateTastes(req.Tastes); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := v.vibeService.GenerateVibe(c.Request.Context(), req.Tastes)
	if !resp.Success {
		utils.RespondError(c, http.StatusBadGateway, resp.Error)
		return
	}

	utils.RespondSuccess(c, resp, "Vibe generated")
}
