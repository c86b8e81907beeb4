package controllers

import (
	"time"

	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// Dashboard returns today's summary for the landing page.
func (ctl *ReportController) Dashboard(c *gin.Context) {
	stats, err := ctl.Reports.DashboardStats(c.Request.Context(), middleware.HotelID(c), time.Now())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, stats)
}

// Occupancy returns the hotel-wide occupancy series over a window.
func (ctl *ReportController) Occupancy(c *gin.Context) {
	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	report, err := ctl.Reports.OccupancyReport(c.Request.Context(), middleware.HotelID(c), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, report)
}

// Revenue returns the daily revenue series plus an optional projection tail.
func (ctl *ReportController) Revenue(c *gin.Context) {
	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	forecastDays := queryInt(c, "forecastDays", 0)
	if forecastDays < 0 || forecastDays > 90 {
		forecastDays = 0
	}

	report, err := ctl.Reports.RevenueReport(c.Request.Context(), middleware.HotelID(c), from, to, forecastDays)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, report)
}
