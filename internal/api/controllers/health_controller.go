package controllers

import (
	"github.com/gin-gonic/gin"

	"vibevoyager/internal/services"
	"vibevoyager/pkg/utils"
)

type HealthController struct {
	vibeService services.VibeServiceInterface
	qlooService services.QlooServiceInterface
}

func NewHealthController(vibeService services.VibeServiceInterface, qlooService services.QlooServiceInterface) *HealthController {
	return &HealthController{vibeService: vibeService, qlooService: qlooService}
}

func (h *HealthController) AIHealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"connected": h.vibeService.TestConnection(c.Request.Context())}, "")
}

func (h *HealthController) QlooHealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"connected": h.qlooService.TestConnection(c.Request.Context())}, "")
}
