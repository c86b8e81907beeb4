package controllers

import (
	"innpilot/dto"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

// SearchController serves the guest-facing booking search. It is public and
// tenant-scoped by hotel slug instead of a token.
type SearchController struct {
	Hotels  *services.HotelService
	Pricing *services.PricingService
}

func NewSearchController(hotels *services.HotelService, pricing *services.PricingService) *SearchController {
	return &SearchController{Hotels: hotels, Pricing: pricing}
}

// Search returns sellable room types with priced rate options for a stay.
func (ctl *SearchController) Search(c *gin.Context) {
	hotel, err := ctl.Hotels.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req dto.StaySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "checkIn and checkOut are required")
		return
	}

	checkIn, checkOut, err := validator.ValidateStay(req.CheckIn, req.CheckOut)
	if err != nil {
		handleError(c, err)
		return
	}
	guests := req.Guests
	if guests == 0 {
		guests = 1
	}
	if err := validator.ValidateGuests(guests); err != nil {
		handleError(c, err)
		return
	}

	results, err := ctl.Pricing.ResolvePricing(c.Request.Context(), hotel.ID, checkIn, checkOut, guests, req.PromoCode)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"hotel": hotel, "rooms": results})
}
