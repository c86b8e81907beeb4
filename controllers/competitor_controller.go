package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

type CompetitorController struct {
	Competitors *services.CompetitorService
}

func NewCompetitorController(competitors *services.CompetitorService) *CompetitorController {
	return &CompetitorController{Competitors: competitors}
}

func (ctl *CompetitorController) List(c *gin.Context) {
	competitors, err := ctl.Competitors.List(c.Request.Context(), middleware.HotelID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, competitors)
}

func (ctl *CompetitorController) Create(c *gin.Context) {
	var req dto.CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	competitor, err := ctl.Competitors.Create(c.Request.Context(), middleware.HotelID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, competitor)
}

func (ctl *CompetitorController) Delete(c *gin.Context) {
	competitorID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Competitors.Delete(c.Request.Context(), middleware.HotelID(c), competitorID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

// IngestRates accepts a batch of scraped observations for one competitor.
func (ctl *CompetitorController) IngestRates(c *gin.Context) {
	competitorID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.IngestRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ingested, err := ctl.Competitors.IngestRates(c.Request.Context(), middleware.HotelID(c), competitorID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ingested": ingested})
}

// Comparison lines up own rates against competitors over a window.
func (ctl *CompetitorController) Comparison(c *gin.Context) {
	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	comparison, err := ctl.Competitors.Comparison(c.Request.Context(), middleware.HotelID(c), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, comparison)
}
