package controllers

import (
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

// Get returns the authenticated tenant's property profile.
func (ctl *HotelController) Get(c *gin.Context) {
	hotel, err := ctl.Hotels.Get(c.Request.Context(), middleware.HotelID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, hotel)
}

// Update applies a partial update to the property profile.
func (ctl *HotelController) Update(c *gin.Context) {
	var req services.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	hotel, err := ctl.Hotels.Update(c.Request.Context(), middleware.HotelID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, hotel)
}
