package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// RoomSelection is one embedded entry in a booking's room list. Each entry
// contributes exactly one unit of the named room type to availability.
type RoomSelection struct {
	RoomTypeID uint    `json:"room_type_id"`
	RatePlanID uint    `json:"rate_plan_id,omitempty"`
	GuestCount int     `json:"guest_count,omitempty"`
	RoomPrice  float64 `json:"room_price,omitempty"`
}

// Booking occupies nights CheckIn..CheckOut-1: check-in is inclusive,
// check-out exclusive. Rate and block ranges elsewhere are
// inclusive-inclusive; conversions happen at the query sites, never here.
type Booking struct {
	ID            uint                               `json:"id" gorm:"primaryKey"`
	HotelID       uint                               `json:"hotelId" gorm:"index"`
	UserID        *uint                              `json:"userId"`
	ReferenceCode string                             `json:"referenceCode" gorm:"uniqueIndex;size:20"`
	CheckIn       time.Time                          `json:"checkIn" gorm:"type:date"`
	CheckOut      time.Time                          `json:"checkOut" gorm:"type:date"`
	Status        string                             `json:"status" gorm:"size:20;default:pending"`
	Rooms         datatypes.JSONSlice[RoomSelection] `json:"rooms"`
	Adults        int                                `json:"adults" gorm:"default:1"`
	Children      int                                `json:"children" gorm:"default:0"`
	GuestName     string                             `json:"guestName,omitempty"`
	GuestEmail    string                             `json:"guestEmail,omitempty"`
	GuestPhone    string                             `json:"guestPhone,omitempty"`
	RoomPrice     float64                            `json:"roomPrice"`
	DiscountPrice float64                            `json:"discountPrice"`
	TotalPrice    float64                            `json:"totalPrice"`
	PromoCode     string                             `json:"promoCode,omitempty"`
	Notes         string                             `json:"notes,omitempty"`
	CreatedAt     time.Time                          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                          `gorm:"autoUpdateTime" json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (b *Booking) ValidateStatus() error {
	switch b.Status {
	case "pending", "confirmed", "checked_in", "checked_out", "cancelled":
		return nil
	}
	return fmt.Errorf("invalid booking status: %s", b.Status)
}

// Nights returns the number of occupied nights.
func (b *Booking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
