package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type RatePlan struct {
	ID                  uint                        `json:"id" gorm:"primaryKey"`
	HotelID             uint                        `json:"hotelId" gorm:"index"`
	Name                string                      `json:"name"`
	MealPlan            string                      `json:"mealPlan" gorm:"default:RO"`
	PriceAdjustment     float64                     `json:"priceAdjustment"`
	MinLOS              int                         `json:"minLos" gorm:"column:min_los;default:1"`
	AdvancePurchaseDays int                         `json:"advancePurchaseDays" gorm:"default:0"`
	Inclusions          datatypes.JSONSlice[string] `json:"inclusions"`
	IsActive            bool                        `json:"isActive" gorm:"default:true"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *RatePlan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("rate plan name must not be empty")
	}
	switch p.MealPlan {
	case "RO", "CP", "MAP", "AP", "BB", "HB", "FB":
	default:
		return fmt.Errorf("invalid meal plan code: %s", p.MealPlan)
	}
	if p.MinLOS < 1 {
		return fmt.Errorf("min length of stay must be at least 1")
	}
	return nil
}
