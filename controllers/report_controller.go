package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlight-backend/services"
	"moonlight-backend/stay"
	"moonlight-backend/utils"
)

type ReportController struct {
	ReportSvc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{ReportSvc: svc}
}

// reportWindow reads ?from=YYYY-MM-DD&to=YYYY-MM-DD; both are required.
func reportWindow(c *gin.Context) (stay.Date, stay.Date, bool) {
	from, err := stay.ParseDate(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "from must be formatted YYYY-MM-DD")
		return stay.Date{}, stay.Date{}, false
	}
	to, err := stay.ParseDate(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "to must be formatted YYYY-MM-DD")
		return stay.Date{}, stay.Date{}, false
	}
	return from, to, true
}

func (ctrl *ReportController) RevenueReport(c *gin.Context) {
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}
	summary, err := ctrl.ReportSvc.Revenue(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (ctrl *ReportController) OccupancyReport(c *gin.Context) {
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}
	report, err := ctrl.ReportSvc.Occupancy(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (ctrl *ReportController) BookingReport(c *gin.Context) {
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}
	breakdown, err := ctrl.ReportSvc.Bookings(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}
