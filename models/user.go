package models

import (
	"fmt"
	"time"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotelId" gorm:"index"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role" gorm:"default:3"`
	Status      int       `json:"status" gorm:"default:1"`
	Avatar      string    `json:"avatar"`
	IsVerified  bool      `json:"isVerified" gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (u *User) ValidateRole() error {
	if u.Role < 1 || u.Role > 3 {
		return fmt.Errorf("invalid role: %d, must be between 1 and 3", u.Role)
	}
	return nil
}
