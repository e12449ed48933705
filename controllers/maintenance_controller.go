package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type MaintenancePayload struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	ReportedBy  string `json:"reportedBy"`
}

type MaintenanceController struct {
	Svc *services.MaintenanceService
}

func NewMaintenanceController(svc *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Svc: svc}
}

func (ctrl *MaintenanceController) OpenRequest(c *gin.Context) {
	var payload MaintenancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "roomId and title are required", err.Error())
		return
	}
	req, err := ctrl.Svc.Open(models.MaintenanceRequest{
		RoomID:      payload.RoomID,
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    payload.Priority,
		ReportedBy:  payload.ReportedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

func (ctrl *MaintenanceController) GetRequests(c *gin.Context) {
	reqs, err := ctrl.Svc.GetAll(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reqs)
}

func (ctrl *MaintenanceController) StartRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := ctrl.Svc.Start(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func (ctrl *MaintenanceController) ResolveRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := ctrl.Svc.Resolve(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}
