package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/models"
	"moonlight-backend/services"
	"moonlight-backend/utils"
)

type CustomerPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var payload CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "fullName is required", err.Error())
		return
	}
	customer, err := ctrl.CustomerSvc.Create(models.Customer{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}
