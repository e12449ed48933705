package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type RolePermissionsPayload struct {
	Permissions []string `json:"permissions"`
}

type RoleController struct {
	RoleSvc *services.RoleService
}

func NewRoleController(svc *services.RoleService) *RoleController {
	return &RoleController{RoleSvc: svc}
}

func (ctrl *RoleController) GetRoles(c *gin.Context) {
	roles, err := ctrl.RoleSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}

func (ctrl *RoleController) SetRolePermissions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload RolePermissionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "permissions must be a string array", err.Error())
		return
	}
	role, err := ctrl.RoleSvc.SetPermissions(id, payload.Permissions)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, role)
}
