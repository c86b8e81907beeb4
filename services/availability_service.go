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

// AvailabilityService computes remaining sellable inventory per room type.
//
// Writes are not serialized against reads: the tally is a presentation-path
// query and tolerates stale data. Nothing here prevents overselling at write
// time; oversold days are clamped to zero at read time instead.
type AvailabilityService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   logger.Logger
	CacheTTL time.Duration
}

func NewAvailabilityService(db *gorm.DB, rdb *redis.Client, log logger.Logger, cacheTTL time.Duration) *AvailabilityService {
	return &AvailabilityService{DB: db, Redis: rdb, Logger: log, CacheTTL: cacheTTL}
}

// countBooked counts non-cancelled bookings occupying day for the room type,
// one unit per matching room-selection entry. Check-out day is exclusive.
func countBooked(bookings []models.Booking, roomTypeID uint, day time.Time) int {
	count := 0
	for _, booking := range bookings {
		if booking.Status == constants.BookingStatusCancelled {
			continue
		}
		if day.Before(DateOnly(booking.CheckIn)) || !day.Before(DateOnly(booking.CheckOut)) {
			continue
		}
		for _, sel := range booking.Rooms {
			if sel.RoomTypeID == roomTypeID {
				count++
			}
		}
	}
	return count
}

// countBlocked sums blocked units whose inclusive range contains day.
func countBlocked(blocks []models.RoomBlock, roomTypeID uint, day time.Time) int {
	count := 0
	for _, block := range blocks {
		if block.RoomTypeID != roomTypeID {
			continue
		}
		if !day.Before(DateOnly(block.StartDate)) && !day.After(DateOnly(block.EndDate)) {
			count += block.BlockedCount
		}
	}
	return count
}

// tallyDay produces one grid cell. Oversold days (booked+blocked beyond
// inventory) clamp available to zero rather than erroring: a display-safety
// choice, not a consistency guarantee. IsBlocked is set either when block
// counts alone exhaust inventory or when nothing is left to sell.
func tallyDay(rt models.RoomType, day time.Time, bookings []models.Booking, blocks []models.RoomBlock) dto.DayAvailability {
	booked := countBooked(bookings, rt.ID, day)
	blocked := countBlocked(blocks, rt.ID, day)

	available := rt.TotalInventory - booked - blocked
	if available < 0 {
		available = 0
	}
	fullyBlocked := blocked >= rt.TotalInventory

	return dto.DayAvailability{
		Date:           day.Format(constants.DateLayout),
		TotalRooms:     rt.TotalInventory,
		BookedRooms:    booked,
		BlockedRooms:   blocked,
		AvailableRooms: available,
		IsBlocked:      fullyBlocked || available == 0,
	}
}

// tallyRange runs tallyDay over the inclusive window. O(days x bookings);
// fine at small-hotel scale, revisit before multi-property portfolios.
func tallyRange(rt models.RoomType, from, to time.Time, bookings []models.Booking, blocks []models.RoomBlock) []dto.DayAvailability {
	var days []dto.DayAvailability
	for day := range DaysThrough(from, to) {
		days = append(days, tallyDay(rt, day, bookings, blocks))
	}
	return days
}

// loadWindow fetches everything overlapping the inclusive window [from, to]
// for one hotel. Booking check-out is exclusive, so the overlap test there
// uses check_out > from rather than >=.
func (s *AvailabilityService) loadWindow(ctx context.Context, hotelID uint, from, to time.Time) ([]models.RoomType, []models.Booking, []models.RoomBlock, error) {
	db := s.DB.WithContext(ctx)

	var roomTypes []models.RoomType
	if err := db.Where("hotel_id = ?", hotelID).Order("id asc").Find(&roomTypes).Error; err != nil {
		return nil, nil, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room types", err)
	}

	var bookings []models.Booking
	if err := db.Where("hotel_id = ? AND status <> ? AND check_in <= ? AND check_out > ?",
		hotelID, constants.BookingStatusCancelled, DateOnly(to), DateOnly(from)).
		Find(&bookings).Error; err != nil {
		return nil, nil, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings", err)
	}

	var blocks []models.RoomBlock
	if err := db.Where("hotel_id = ? AND start_date <= ? AND end_date >= ?",
		hotelID, DateOnly(to), DateOnly(from)).
		Find(&blocks).Error; err != nil {
		return nil, nil, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room blocks", err)
	}

	return roomTypes, bookings, blocks, nil
}

// ComputeAvailability builds the daily inventory grid for every room type of
// the hotel over the inclusive window [dateFrom, dateTo].
func (s *AvailabilityService) ComputeAvailability(ctx context.Context, hotelID uint, dateFrom, dateTo time.Time) ([]dto.RoomTypeAvailability, error) {
	if dateFrom.After(dateTo) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}

	cacheKey := fmt.Sprintf("availability:%d:%s:%s",
		hotelID, DateOnly(dateFrom).Format(constants.DateLayout), DateOnly(dateTo).Format(constants.DateLayout))
	if s.Redis != nil {
		var cached []dto.RoomTypeAvailability
		if hit, err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	roomTypes, bookings, blocks, err := s.loadWindow(ctx, hotelID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	grid := make([]dto.RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		grid = append(grid, dto.RoomTypeAvailability{
			ID:             rt.ID,
			Name:           rt.Name,
			TotalInventory: rt.TotalInventory,
			Availability:   tallyRange(rt, dateFrom, dateTo, bookings, blocks),
		})
	}

	if s.Redis != nil {
		if err := SetToRedis(ctx, s.Redis, cacheKey, grid, s.CacheTTL); err != nil {
			s.Logger.Error("failed to cache availability grid: %v", err)
		}
	}
	return grid, nil
}

// AvailableUnits returns the binding constraint across the whole stay: the
// minimum single-night availability over nights checkIn..checkOut-1.
func (s *AvailabilityService) AvailableUnits(ctx context.Context, hotelID, roomTypeID uint, checkIn, checkOut time.Time) (int, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", roomTypeID, hotelID).First(&rt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}

	lastNight := DateOnly(checkOut).AddDate(0, 0, -1)
	if lastNight.Before(DateOnly(checkIn)) {
		lastNight = DateOnly(checkIn)
	}
	_, bookings, blocks, err := s.loadWindow(ctx, hotelID, DateOnly(checkIn), lastNight)
	if err != nil {
		return 0, err
	}

	return minAvailableUnits(rt, checkIn, checkOut, bookings, blocks), nil
}

func minAvailableUnits(rt models.RoomType, checkIn, checkOut time.Time, bookings []models.Booking, blocks []models.RoomBlock) int {
	minUnits := rt.TotalInventory
	for day := range DaysBetween(checkIn, checkOut) {
		cell := tallyDay(rt, day, bookings, blocks)
		if cell.AvailableRooms < minUnits {
			minUnits = cell.AvailableRooms
		}
	}
	if minUnits < 0 {
		return 0
	}
	return minUnits
}

// InvalidateCache drops every cached availability grid for the hotel.
func (s *AvailabilityService) InvalidateCache(ctx context.Context, hotelID uint) {
	if s.Redis == nil {
		return
	}
	pattern := fmt.Sprintf("availability:%d:*", hotelID)
	keys, err := s.Redis.Keys(ctx, pattern).Result()
	if err != nil {
		s.Logger.Error("failed to scan availability cache keys: %v", err)
		return
	}
	if err := DeleteFromRedis(ctx, s.Redis, keys...); err != nil {
		s.Logger.Error("failed to invalidate availability cache: %v", err)
	}
}

// ListBlocks returns blocks for a room type overlapping the inclusive window.
func (s *AvailabilityService) ListBlocks(ctx context.Context, hotelID, roomTypeID uint, dateFrom, dateTo time.Time) ([]models.RoomBlock, error) {
	var blocks []models.RoomBlock
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND room_type_id = ? AND start_date <= ? AND end_date >= ?",
			hotelID, roomTypeID, DateOnly(dateTo), DateOnly(dateFrom)).
		Order("start_date asc").
		Find(&blocks).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list room blocks", err)
	}
	return blocks, nil
}

// CreateBlock withholds units for an inclusive date range.
func (s *AvailabilityService) CreateBlock(ctx context.Context, block *models.RoomBlock) error {
	if block.StartDate.After(block.EndDate) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "start date must not be after end date", errors.ErrInvalidDateRange)
	}
	if block.BlockedCount < 1 {
		block.BlockedCount = 1
	}
	block.StartDate = DateOnly(block.StartDate)
	block.EndDate = DateOnly(block.EndDate)

	var rt models.RoomType
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", block.RoomTypeID, block.HotelID).First(&rt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}

	if err := s.DB.WithContext(ctx).Create(block).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to create room block", err)
	}
	s.InvalidateCache(ctx, block.HotelID)
	return nil
}

// DeleteBlock removes a block belonging to the hotel.
func (s *AvailabilityService) DeleteBlock(ctx context.Context, hotelID, blockID uint) error {
	result := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", blockID, hotelID).Delete(&models.RoomBlock{})
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete room block", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "room block not found", errors.ErrBlockNotFound)
	}
	s.InvalidateCache(ctx, hotelID)
	return nil
}
