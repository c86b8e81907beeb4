package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// Create books a stay on behalf of a guest.
func (ctl *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID := middleware.UserID(c)
	var creator *uint
	if userID != 0 {
		creator = &userID
	}

	booking, err := ctl.Bookings.Create(c.Request.Context(), middleware.HotelID(c), creator, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, booking)
}

// List returns the hotel's bookings, filtered and paginated.
func (ctl *BookingController) List(c *gin.Context) {
	var filters dto.BookingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	bookings, total, err := ctl.Bookings.List(c.Request.Context(), middleware.HotelID(c), filters)
	if err != nil {
		handleError(c, err)
		return
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	response.SuccessWithPagination(c, bookings, page, limit, int(total))
}

func (ctl *BookingController) Get(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	booking, err := ctl.Bookings.GetByID(c.Request.Context(), middleware.HotelID(c), bookingID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, booking)
}

// ChangeStatus moves a booking along its lifecycle.
func (ctl *BookingController) ChangeStatus(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	booking, err := ctl.Bookings.ChangeStatus(c.Request.Context(), middleware.HotelID(c), bookingID, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, booking)
}
