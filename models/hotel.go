package models

import (
	"encoding/json"
	"time"
)

type Hotel struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug" gorm:"uniqueIndex"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Currency    string          `json:"currency" gorm:"default:INR"`
	CheckInHour int             `json:"checkInHour" gorm:"default:14"`
	Photos      json.RawMessage `json:"photos" gorm:"type:json"`
	IsActive    bool            `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
