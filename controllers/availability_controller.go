package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/models"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: availability}
}

// Grid returns the per-room-type daily availability grid.
func (ctl *AvailabilityController) Grid(c *gin.Context) {
	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	grid, err := ctl.Availability.ComputeAvailability(c.Request.Context(), middleware.HotelID(c), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, grid)
}

// ListBlocks returns blocks for a room type intersecting a window.
func (ctl *AvailabilityController) ListBlocks(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	blocks, err := ctl.Availability.ListBlocks(c.Request.Context(), middleware.HotelID(c), roomTypeID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, blocks)
}

// CreateBlock withholds units from sale.
func (ctl *AvailabilityController) CreateBlock(c *gin.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	start, end, err := validator.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		handleError(c, err)
		return
	}

	block := models.RoomBlock{
		HotelID:      middleware.HotelID(c),
		RoomTypeID:   req.RoomTypeID,
		StartDate:    start,
		EndDate:      end,
		BlockedCount: req.BlockedCount,
		Reason:       req.Reason,
	}
	if err := ctl.Availability.CreateBlock(c.Request.Context(), &block); err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, block)
}

func (ctl *AvailabilityController) DeleteBlock(c *gin.Context) {
	blockID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Availability.DeleteBlock(c.Request.Context(), middleware.HotelID(c), blockID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
