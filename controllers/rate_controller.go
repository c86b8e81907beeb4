package controllers

import (
	"innpilot/constants"
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/models"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	Rates *services.RateService
	Rooms *services.RoomService
}

func NewRateController(rates *services.RateService, rooms *services.RoomService) *RateController {
	return &RateController{Rates: rates, Rooms: rooms}
}

func rateKeyFromRequest(roomTypeID, ratePlanID uint) models.RateKey {
	if ratePlanID != 0 {
		return models.PlanRateKey(roomTypeID, ratePlanID)
	}
	return models.BaseRateKey(roomTypeID)
}

// SetRangePrice overrides the nightly price over an inclusive date range.
func (ctl *RateController) SetRangePrice(c *gin.Context) {
	var req dto.SetRangePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// room type must belong to the tenant before any rate mutation
	if _, err := ctl.Rooms.GetRoomType(c.Request.Context(), middleware.HotelID(c), req.RoomTypeID); err != nil {
		handleError(c, err)
		return
	}

	from, to, err := validator.ParseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		handleError(c, err)
		return
	}
	if err := validator.ValidatePrice(req.Price); err != nil {
		handleError(c, err)
		return
	}

	key := rateKeyFromRequest(req.RoomTypeID, req.RatePlanID)
	if err := ctl.Rates.SetRangePrice(c.Request.Context(), key, from, to, req.Price); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListRanges returns the stored override rows intersecting a window.
func (ctl *RateController) ListRanges(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if _, err := ctl.Rooms.GetRoomType(c.Request.Context(), middleware.HotelID(c), roomTypeID); err != nil {
		handleError(c, err)
		return
	}

	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	key := rateKeyFromRequest(roomTypeID, uint(queryInt(c, "ratePlanId", 0)))
	ranges, err := ctl.Rates.ListRanges(c.Request.Context(), key, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, ranges)
}

// DayGrid returns the day-expanded price series, overrides applied over the
// room type's base price.
func (ctl *RateController) DayGrid(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	rt, err := ctl.Rooms.GetRoomType(c.Request.Context(), middleware.HotelID(c), roomTypeID)
	if err != nil {
		handleError(c, err)
		return
	}

	from, to, err := validator.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		handleError(c, err)
		return
	}

	ratePlanID := uint(queryInt(c, "ratePlanId", 0))
	key := rateKeyFromRequest(roomTypeID, ratePlanID)
	priceByDay, err := ctl.Rates.BulkLookup(c.Request.Context(), key, from, to, rt.BasePrice)
	if err != nil {
		handleError(c, err)
		return
	}

	grid := dto.RateGrid{RoomTypeID: roomTypeID, RatePlanID: ratePlanID}
	for day := range services.DaysThrough(from, to) {
		grid.Days = append(grid.Days, dto.RateDay{
			Date:  day.Format(constants.DateLayout),
			Price: priceByDay[day],
		})
	}
	response.Success(c, grid)
}
