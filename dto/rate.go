package dto

// SetRangePriceRequest overrides the nightly price for a date range,
// either on the room type's base rate or on one rate plan.
type SetRangePriceRequest struct {
	RoomTypeID uint    `json:"roomTypeId" binding:"required"`
	RatePlanID uint    `json:"ratePlanId"`
	DateFrom   string  `json:"dateFrom" binding:"required"`
	DateTo     string  `json:"dateTo" binding:"required"`
	Price      float64 `json:"price"`
}

// RateDay is one cell of the expanded daily price grid.
type RateDay struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// RateGrid is the day-expanded price series for one rate key.
type RateGrid struct {
	RoomTypeID uint      `json:"roomTypeId"`
	RatePlanID uint      `json:"ratePlanId,omitempty"`
	Days       []RateDay `json:"days"`
}
