package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibevoyager/internal/models/request_models"
	"vibevoyager/internal/services"
	"vibevoyager/pkg/utils"
)

type ArchiveController struct {
	archiveService services.ArchiveServiceInterface
}

func NewArchiveController(archiveService services.ArchiveServiceInterface) *ArchiveController {
	return &ArchiveController{archiveService: archiveService}
}

func (a *ArchiveController) ListArchiveHandler(c *gin.Context) {
	utils.RespondSuccess(c, a.archiveService.List(), "")
}

func (a *ArchiveController) SaveItineraryHandler(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	saved, err := a.archiveService.Save(req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Journey saved")
}

func (a *ArchiveController) DeleteItineraryHandler(c *gin.Context) {
	if err := a.archiveService.Delete(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary removed")
}

func (a *ArchiveController) UndoHandler(c *gin.Context) {
	if err := a.archiveService.Undo(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Last archive change undone")
}
