package dto

// BookingRoomRequest selects one room of a given type, optionally under a
// specific rate plan.
type BookingRoomRequest struct {
	RoomTypeID uint `json:"roomTypeId" binding:"required"`
	RatePlanID uint `json:"ratePlanId"`
	GuestCount int  `json:"guestCount"`
}

type CreateBookingRequest struct {
	CheckIn    string               `json:"checkIn" binding:"required"`
	CheckOut   string               `json:"checkOut" binding:"required"`
	Rooms      []BookingRoomRequest `json:"rooms" binding:"required"`
	Adults     int                  `json:"adults"`
	Children   int                  `json:"children"`
	GuestName  string               `json:"guestName"`
	GuestEmail string               `json:"guestEmail"`
	GuestPhone string               `json:"guestPhone"`
	PromoCode  string               `json:"promoCode"`
	Notes      string               `json:"notes"`
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingFilters narrows booking lists.
type BookingFilters struct {
	Status   string `form:"status"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
