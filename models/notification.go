package models

import "time"

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Type      string    `json:"type" gorm:"size:40"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// ChatMessage is one turn of an agent conversation, kept for context replay.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender" gorm:"size:10"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
