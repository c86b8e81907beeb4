package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type RoomType struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	HotelID          uint            `json:"hotelId" gorm:"index"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BasePrice        float64         `json:"basePrice"`
	TotalInventory   int             `json:"totalInventory" gorm:"default:1"`
	BaseOccupancy    int             `json:"baseOccupancy" gorm:"default:2"`
	MaxOccupancy     int             `json:"maxOccupancy" gorm:"default:3"`
	MaxChildren      int             `json:"maxChildren" gorm:"default:1"`
	ExtraBedAllowed  bool            `json:"extraBedAllowed" gorm:"default:false"`
	ExtraPersonPrice float64         `json:"extraPersonPrice"`
	BedType          string          `json:"bedType" gorm:"default:Queen"`
	RoomSize         int             `json:"roomSize"`
	IsActive         bool            `json:"isActive" gorm:"default:true"`
	Photos           json.RawMessage `json:"photos" gorm:"type:json"`
	Amenities        json.RawMessage `json:"amenities" gorm:"type:json"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (rt *RoomType) Validate() error {
	if rt.Name == "" {
		return fmt.Errorf("room type name must not be empty")
	}
	if rt.BasePrice < 0 {
		return fmt.Errorf("base price must be non-negative")
	}
	if rt.TotalInventory < 0 {
		return fmt.Errorf("total inventory must be non-negative")
	}
	if rt.BaseOccupancy < 1 || rt.MaxOccupancy < rt.BaseOccupancy {
		return fmt.Errorf("invalid occupancy limits: base %d, max %d", rt.BaseOccupancy, rt.MaxOccupancy)
	}
	return nil
}
