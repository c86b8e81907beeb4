package models

import (
	"fmt"
	"time"
)

type PromoCode struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	HotelID       uint       `json:"hotelId" gorm:"index"`
	Code          string     `json:"code" gorm:"index"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType" gorm:"default:percentage"`
	DiscountValue float64    `json:"discountValue"`
	StartDate     *time.Time `json:"startDate" gorm:"type:date"`
	EndDate       *time.Time `json:"endDate" gorm:"type:date"`
	MaxUsage      *int       `json:"maxUsage"`
	CurrentUsage  int        `json:"currentUsage" gorm:"default:0"`
	IsActive      bool       `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *PromoCode) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("promo code must not be empty")
	}
	if p.DiscountType != "percentage" && p.DiscountType != "fixed_amount" {
		return fmt.Errorf("invalid discount type: %s", p.DiscountType)
	}
	if p.DiscountValue < 0 {
		return fmt.Errorf("discount value must be non-negative")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return fmt.Errorf("promo start date must not be after end date")
	}
	return nil
}
