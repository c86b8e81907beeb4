package dto

import "encoding/json"

type CreateRoomTypeRequest struct {
	Name             string          `json:"name" binding:"required"`
	Description      string          `json:"description"`
	BasePrice        float64         `json:"basePrice" binding:"required"`
	TotalInventory   int             `json:"totalInventory" binding:"required"`
	BaseOccupancy    int             `json:"baseOccupancy"`
	MaxOccupancy     int             `json:"maxOccupancy"`
	MaxChildren      int             `json:"maxChildren"`
	ExtraBedAllowed  bool            `json:"extraBedAllowed"`
	ExtraPersonPrice float64         `json:"extraPersonPrice"`
	BedType          string          `json:"bedType"`
	RoomSize         int             `json:"roomSize"`
	Photos           json.RawMessage `json:"photos"`
	Amenities        json.RawMessage `json:"amenities"`
}

// UpdateRoomTypeRequest uses pointers so absent fields stay untouched.
type UpdateRoomTypeRequest struct {
	Name             *string         `json:"name"`
	Description      *string         `json:"description"`
	BasePrice        *float64        `json:"basePrice"`
	TotalInventory   *int            `json:"totalInventory"`
	BaseOccupancy    *int            `json:"baseOccupancy"`
	MaxOccupancy     *int            `json:"maxOccupancy"`
	MaxChildren      *int            `json:"maxChildren"`
	ExtraBedAllowed  *bool           `json:"extraBedAllowed"`
	ExtraPersonPrice *float64        `json:"extraPersonPrice"`
	BedType          *string         `json:"bedType"`
	RoomSize         *int            `json:"roomSize"`
	IsActive         *bool           `json:"isActive"`
	Photos           json.RawMessage `json:"photos"`
	Amenities        json.RawMessage `json:"amenities"`
}

type CreateRatePlanRequest struct {
	Name                string   `json:"name" binding:"required"`
	MealPlan            string   `json:"mealPlan"`
	PriceAdjustment     float64  `json:"priceAdjustment"`
	MinLOS              int      `json:"minLos"`
	AdvancePurchaseDays int      `json:"advancePurchaseDays"`
	Inclusions          []string `json:"inclusions"`
}

type UpdateRatePlanRequest struct {
	Name                *string  `json:"name"`
	MealPlan            *string  `json:"mealPlan"`
	PriceAdjustment     *float64 `json:"priceAdjustment"`
	MinLOS              *int     `json:"minLos"`
	AdvancePurchaseDays *int     `json:"advancePurchaseDays"`
	Inclusions          []string `json:"inclusions"`
	IsActive            *bool    `json:"isActive"`
}
