package dto

// RateOption is one priced plan variant for a room type and stay.
type RateOption struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	MealPlanCode  string   `json:"mealPlanCode"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalPrice    float64  `json:"totalPrice"`
	Inclusions    []string `json:"inclusions"`
	SavingsText   string   `json:"savingsText,omitempty"`
}

// RoomSearchResult is a sellable room type with its ranked rate options.
// Room types with zero options are never returned.
type RoomSearchResult struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	BedType         string       `json:"bedType"`
	MaxOccupancy    int          `json:"maxOccupancy"`
	BaseOccupancy   int          `json:"baseOccupancy"`
	PriceStartingAt float64      `json:"priceStartingAt"`
	AvailableRooms  int          `json:"availableRooms"`
	RateOptions     []RateOption `json:"rateOptions"`
}

// StaySearchRequest is the booking-search input.
type StaySearchRequest struct {
	CheckIn   string `form:"checkIn" json:"checkIn" binding:"required"`
	CheckOut  string `form:"checkOut" json:"checkOut" binding:"required"`
	Guests    int    `form:"guests" json:"guests"`
	PromoCode string `form:"promoCode" json:"promoCode"`
}
