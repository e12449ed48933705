package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type HousekeepingPayload struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Assignee string `json:"assignee"`
	Notes    string `json:"notes"`
}

type AssigneePayload struct {
	Assignee string `json:"assignee"`
}

type HousekeepingController struct {
	Svc *services.HousekeepingService
}

func NewHousekeepingController(svc *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{Svc: svc}
}

func (ctrl *HousekeepingController) CreateTask(c *gin.Context) {
	var payload HousekeepingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "roomId and kind are required", err.Error())
		return
	}
	task, err := ctrl.Svc.Create(models.HousekeepingTask{
		RoomID:   payload.RoomID,
		Kind:     payload.Kind,
		Assignee: payload.Assignee,
		Notes:    payload.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, task)
}

func (ctrl *HousekeepingController) GetTasks(c *gin.Context) {
	tasks, err := ctrl.Svc.GetAll(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tasks)
}

func (ctrl *HousekeepingController) StartTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload AssigneePayload
	_ = c.ShouldBindJSON(&payload) // assignee is optional
	task, err := ctrl.Svc.Start(id, payload.Assignee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}

func (ctrl *HousekeepingController) CompleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := ctrl.Svc.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}
