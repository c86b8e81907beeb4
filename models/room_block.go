package models

import (
	"time"
)

// RoomBlock withholds inventory from sale for a date range, independent of
// guest bookings. StartDate and EndDate are both inclusive.
type RoomBlock struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelID      uint      `json:"hotelId" gorm:"index"`
	RoomTypeID   uint      `json:"roomTypeId" gorm:"index"`
	StartDate    time.Time `json:"startDate" gorm:"type:date"`
	EndDate      time.Time `json:"endDate" gorm:"type:date"`
	BlockedCount int       `json:"blockedCount" gorm:"default:1"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
