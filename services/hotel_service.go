package services

import (
	"context"
	"encoding/json"
	"fmt"

	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"gorm.io/gorm"
)

// HotelService manages the property profile. One hotel per tenant; the slug
// is the public handle used by the guest-facing search endpoint.
type HotelService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewHotelService(db *gorm.DB, log logger.Logger) *HotelService {
	return &HotelService{DB: db, Logger: log}
}

func (s *HotelService) Get(ctx context.Context, hotelID uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return hotel, errors.NewAppError(errors.ErrCodeDBNotFound, "hotel not found", errors.ErrHotelNotFound)
		}
		return hotel, errors.NewAppError(errors.ErrCodeDBError, "failed to load hotel", err)
	}
	return hotel, nil
}

// GetBySlug resolves the public handle. Only active properties are exposed.
func (s *HotelService) GetBySlug(ctx context.Context, slug string) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&hotel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return hotel, errors.NewAppError(errors.ErrCodeDBNotFound, "hotel not found", errors.ErrHotelNotFound)
		}
		return hotel, errors.NewAppError(errors.ErrCodeDBError, "failed to load hotel", err)
	}
	return hotel, nil
}

// UpdateHotelRequest uses pointers so absent fields stay untouched.
type UpdateHotelRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Address     *string         `json:"address"`
	City        *string         `json:"city"`
	Country     *string         `json:"country"`
	Phone       *string         `json:"phone"`
	Email       *string         `json:"email"`
	Currency    *string         `json:"currency"`
	CheckInHour *int            `json:"checkInHour"`
	Photos      json.RawMessage `json:"photos"`
}

func (s *HotelService) Update(ctx context.Context, hotelID uint, req UpdateHotelRequest) (models.Hotel, error) {
	hotel, err := s.Get(ctx, hotelID)
	if err != nil {
		return hotel, err
	}

	if req.Name != nil && *req.Name != hotel.Name {
		hotel.Name = *req.Name
		hotel.Slug = s.uniqueSlug(ctx, *req.Name, hotel.ID)
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Country != nil {
		hotel.Country = *req.Country
	}
	if req.Phone != nil {
		hotel.Phone = *req.Phone
	}
	if req.Email != nil {
		hotel.Email = *req.Email
	}
	if req.Currency != nil {
		hotel.Currency = *req.Currency
	}
	if req.CheckInHour != nil {
		hotel.CheckInHour = *req.CheckInHour
	}
	if req.Photos != nil {
		hotel.Photos = req.Photos
	}

	if err := s.DB.WithContext(ctx).Save(&hotel).Error; err != nil {
		return hotel, errors.NewAppError(errors.ErrCodeDBError, "failed to update hotel", err)
	}
	return hotel, nil
}

// uniqueSlug keeps the slug readable while avoiding the unique index.
func (s *HotelService) uniqueSlug(ctx context.Context, name string, selfID uint) string {
	base := Slugify(name)
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).
			Where("slug = ? AND id <> ?", slug, selfID).Count(&count).Error; err != nil || count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
