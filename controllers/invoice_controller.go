package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/services"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

type GenerateInvoicePayload struct {
	BookingID    uint              `json:"bookingId" binding:"required"`
	ExtraCharges []ExtraChargeItem `json:"extraCharges"`
}

type InvoiceController struct {
	InvoiceSvc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceSvc: svc}
}

func (ctrl *InvoiceController) GenerateInvoice(c *gin.Context) {
	var payload GenerateInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "bookingId is required", err.Error())
		return
	}

	charges, ok := parseExtraCharges(c, payload.ExtraCharges)
	if !ok {
		return
	}

	invoice, err := ctrl.InvoiceSvc.GenerateForBooking(payload.BookingID, charges)
	if err != nil {
		if !respondSchedulingError(c, err) {
			respondServiceError(c, err)
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	filter := services.InvoiceFilter{Status: c.Query("status")}
	if from, err := stay.ParseDate(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := stay.ParseDate(c.Query("to")); err == nil {
		filter.To = &to
	}

	invoices, err := ctrl.InvoiceSvc.GetAll(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

func (ctrl *InvoiceController) GetInvoiceByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := ctrl.InvoiceSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *InvoiceController) IssueInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := ctrl.InvoiceSvc.Issue(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *InvoiceController) PayInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := ctrl.InvoiceSvc.MarkPaid(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *InvoiceController) VoidInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := ctrl.InvoiceSvc.Void(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
