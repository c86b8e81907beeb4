package services

import (
	"context"
	"fmt"
	"time"

	"innpilot/constants"
	"innpilot/dto"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompetitorService tracks competitor properties and their scraped nightly
// rates, and lines them up against the hotel's own pricing.
type CompetitorService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Rates    *RateService
	Logger   logger.Logger
	CacheTTL time.Duration
}

func NewCompetitorService(db *gorm.DB, rdb *redis.Client, rates *RateService, log logger.Logger, cacheTTL time.Duration) *CompetitorService {
	return &CompetitorService{DB: db, Redis: rdb, Rates: rates, Logger: log, CacheTTL: cacheTTL}
}

func (s *CompetitorService) List(ctx context.Context, hotelID uint) ([]models.Competitor, error) {
	var competitors []models.Competitor
	if err := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("name asc").Find(&competitors).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list competitors", err)
	}
	return competitors, nil
}

func (s *CompetitorService) Create(ctx context.Context, hotelID uint, req dto.CreateCompetitorRequest) (models.Competitor, error) {
	competitor := models.Competitor{
		HotelID:   hotelID,
		Name:      req.Name,
		SourceURL: req.SourceURL,
		IsActive:  true,
	}
	if err := s.DB.WithContext(ctx).Create(&competitor).Error; err != nil {
		return competitor, errors.NewAppError(errors.ErrCodeDBError, "failed to create competitor", err)
	}
	return competitor, nil
}

func (s *CompetitorService) Delete(ctx context.Context, hotelID, competitorID uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND hotel_id = ?", competitorID, hotelID).Delete(&models.Competitor{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("competitor_id = ?", competitorID).Delete(&models.CompetitorRate{}).Error
	})
	if err == gorm.ErrRecordNotFound {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "competitor not found", nil)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete competitor", err)
	}
	s.invalidateComparison(ctx, hotelID)
	return nil
}

// IngestRates upserts a batch of scraped observations for one competitor.
// The (competitor, check-in date, room label) key makes re-scrapes overwrite
// rather than accumulate.
func (s *CompetitorService) IngestRates(ctx context.Context, hotelID, competitorID uint, req dto.IngestRatesRequest) (int, error) {
	var competitor models.Competitor
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", competitorID, hotelID).First(&competitor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.NewAppError(errors.ErrCodeDBNotFound, "competitor not found", nil)
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load competitor", err)
	}

	ingested := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, obs := range req.Rates {
			day, err := time.Parse(constants.DateLayout, obs.CheckInDate)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidDate, "invalid check-in date: "+obs.CheckInDate, err)
			}
			if obs.Price < 0 {
				return errors.NewAppError(errors.ErrCodeInvalidPrice, "price must be non-negative", errors.ErrNegativePrice)
			}
			roomType := obs.RoomType
			if roomType == "" {
				roomType = "Standard"
			}
			currency := obs.Currency
			if currency == "" {
				currency = "INR"
			}

			var existing models.CompetitorRate
			err = tx.Where("competitor_id = ? AND check_in_date = ? AND room_type = ?",
				competitorID, DateOnly(day), roomType).First(&existing).Error
			switch err {
			case nil:
				existing.Price = obs.Price
				existing.Currency = currency
				existing.IsSoldOut = obs.IsSoldOut
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case gorm.ErrRecordNotFound:
				rate := models.CompetitorRate{
					CompetitorID: competitorID,
					CheckInDate:  DateOnly(day),
					RoomType:     roomType,
					Price:        obs.Price,
					Currency:     currency,
					IsSoldOut:    obs.IsSoldOut,
				}
				if err := tx.Create(&rate).Error; err != nil {
					return err
				}
			default:
				return err
			}
			ingested++
		}

		now := time.Now()
		return tx.Model(&competitor).Update("last_seen", &now).Error
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return 0, appErr
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to ingest competitor rates", err)
	}

	s.invalidateComparison(ctx, hotelID)
	s.Logger.Info("ingested %d competitor rate(s) for %s", ingested, competitor.Name)
	return ingested, nil
}

// position classifies the hotel's own price against observed competitor
// prices for one day. Sold-out observations carry no price signal.
func position(own float64, competitors []dto.CompetitorDayRate) string {
	lowest, highest := 0.0, 0.0
	seen := false
	for _, c := range competitors {
		if c.IsSoldOut {
			continue
		}
		if !seen || c.Price < lowest {
			lowest = c.Price
		}
		if !seen || c.Price > highest {
			highest = c.Price
		}
		seen = true
	}
	switch {
	case !seen:
		return "no_data"
	case own < lowest:
		return "cheapest"
	case own > highest:
		return "premium"
	default:
		return "competitive"
	}
}

// Comparison builds the own-vs-competitors grid per room type over the
// inclusive window. Competitor room labels are free text and are mapped onto
// the hotel's room types by fuzzy name match; labels that match nothing are
// grouped under the first (cheapest-base) room type so they stay visible.
func (s *CompetitorService) Comparison(ctx context.Context, hotelID uint, from, to time.Time) ([]dto.RateComparison, error) {
	if from.After(to) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}

	cacheKey := fmt.Sprintf("comparison:%d:%s:%s",
		hotelID, DateOnly(from).Format(constants.DateLayout), DateOnly(to).Format(constants.DateLayout))
	if s.Redis != nil {
		var cached []dto.RateComparison
		if hit, err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var roomTypes []models.RoomType
	if err := s.DB.WithContext(ctx).Where("hotel_id = ? AND is_active = ?", hotelID, true).
		Order("base_price asc").Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room types", err)
	}
	if len(roomTypes) == 0 {
		return []dto.RateComparison{}, nil
	}

	competitors, err := s.List(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[uint]string, len(competitors))
	competitorIDs := make([]uint, 0, len(competitors))
	for _, c := range competitors {
		if !c.IsActive {
			continue
		}
		nameByID[c.ID] = c.Name
		competitorIDs = append(competitorIDs, c.ID)
	}

	var observations []models.CompetitorRate
	if len(competitorIDs) > 0 {
		if err := s.DB.WithContext(ctx).
			Where("competitor_id IN ? AND check_in_date >= ? AND check_in_date <= ?",
				competitorIDs, DateOnly(from), DateOnly(to)).
			Find(&observations).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load competitor rates", err)
		}
	}

	names := make([]string, len(roomTypes))
	indexByName := make(map[string]int, len(roomTypes))
	for i, rt := range roomTypes {
		names[i] = rt.Name
		indexByName[rt.Name] = i
	}
	matcher := NewNameMatcher(names)

	// observations bucketed by (room type index, day)
	type dayKey struct {
		idx int
		day time.Time
	}
	buckets := map[dayKey][]dto.CompetitorDayRate{}
	for _, obs := range observations {
		idx := 0
		if matched, ok := matcher.Match(obs.RoomType); ok {
			idx = indexByName[matched]
		}
		key := dayKey{idx: idx, day: DateOnly(obs.CheckInDate)}
		buckets[key] = append(buckets[key], dto.CompetitorDayRate{
			CompetitorID:   obs.CompetitorID,
			CompetitorName: nameByID[obs.CompetitorID],
			RoomType:       obs.RoomType,
			Price:          obs.Price,
			IsSoldOut:      obs.IsSoldOut,
		})
	}

	result := make([]dto.RateComparison, 0, len(roomTypes))
	for i, rt := range roomTypes {
		ownByDay, err := s.Rates.BulkLookup(ctx, models.BaseRateKey(rt.ID), DateOnly(from), DateOnly(to), rt.BasePrice)
		if err != nil {
			return nil, err
		}
		comparison := dto.RateComparison{RoomTypeID: rt.ID, RoomTypeName: rt.Name}
		for day := range DaysThrough(from, to) {
			rates := buckets[dayKey{idx: i, day: day}]
			comparison.Days = append(comparison.Days, dto.RateComparisonDay{
				Date:        day.Format(constants.DateLayout),
				OwnPrice:    ownByDay[day],
				Competitors: rates,
				Position:    position(ownByDay[day], rates),
			})
		}
		result = append(result, comparison)
	}

	if s.Redis != nil {
		if err := SetToRedis(ctx, s.Redis, cacheKey, result, s.CacheTTL); err != nil {
			s.Logger.Error("failed to cache rate comparison: %v", err)
		}
	}
	return result, nil
}

func (s *CompetitorService) invalidateComparison(ctx context.Context, hotelID uint) {
	if s.Redis == nil {
		return
	}
	keys, err := s.Redis.Keys(ctx, fmt.Sprintf("comparison:%d:*", hotelID)).Result()
	if err != nil {
		s.Logger.Error("failed to scan comparison cache keys: %v", err)
		return
	}
	if err := DeleteFromRedis(ctx, s.Redis, keys...); err != nil {
		s.Logger.Error("failed to invalidate comparison cache: %v", err)
	}
}

// RefreshComparisonCache recomputes the next-14-days grid for every hotel
// with active competitors. Run from cron so the dashboard hits warm cache.
func (s *CompetitorService) RefreshComparisonCache(ctx context.Context) error {
	var hotelIDs []uint
	if err := s.DB.WithContext(ctx).Model(&models.Competitor{}).
		Where("is_active = ?", true).Distinct("hotel_id").Pluck("hotel_id", &hotelIDs).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to list hotels with competitors", err)
	}

	today := DateOnly(time.Now())
	for _, hotelID := range hotelIDs {
		s.invalidateComparison(ctx, hotelID)
		if _, err := s.Comparison(ctx, hotelID, today, today.AddDate(0, 0, 13)); err != nil {
			s.Logger.Error("failed to refresh comparison for hotel %d: %v", hotelID, err)
		}
	}
	return nil
}
