package models

import (
	"time"
)

type Competitor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	LastSeen  *time.Time `json:"lastSeen"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// CompetitorRate is one scraped nightly price for a competitor, keyed by
// (competitor, check-in date, room type label). Re-ingesting the same key
// overwrites the previous observation.
type CompetitorRate struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompetitorID uint      `json:"competitorId" gorm:"index:idx_comp_rates,unique"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"type:date;index:idx_comp_rates,unique"`
	RoomType     string    `json:"roomType" gorm:"size:80;default:Standard;index:idx_comp_rates,unique"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency" gorm:"size:8;default:INR"`
	IsSoldOut    bool      `json:"isSoldOut" gorm:"default:false"`
	ScrapedAt    time.Time `json:"scrapedAt" gorm:"autoUpdateTime"`
}
