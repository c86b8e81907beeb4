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

// ReportService builds dashboard and reporting views on top of the booking
// and availability data. Reports are read paths and cache aggressively.
type ReportService struct {
	DB           *gorm.DB
	Redis        *redis.Client
	Availability *AvailabilityService
	Bookings     *BookingService
	Logger       logger.Logger
	CacheTTL     time.Duration
}

func NewReportService(db *gorm.DB, rdb *redis.Client, availability *AvailabilityService,
	bookings *BookingService, log logger.Logger, cacheTTL time.Duration) *ReportService {
	return &ReportService{
		DB:           db,
		Redis:        rdb,
		Availability: availability,
		Bookings:     bookings,
		Logger:       log,
		CacheTTL:     cacheTTL,
	}
}

// nightlyRevenue spreads a booking's total evenly over its nights. Revenue is
// recognized per occupied night, not at creation time.
func nightlyRevenue(b models.Booking) float64 {
	return b.TotalPrice / float64(b.Nights())
}

// revenueByDay aggregates per-night revenue for the inclusive window.
func revenueByDay(bookings []models.Booking, from, to time.Time) (map[time.Time]float64, map[time.Time]int) {
	revenue := map[time.Time]float64{}
	counts := map[time.Time]int{}
	for _, b := range bookings {
		if b.Status == constants.BookingStatusCancelled {
			continue
		}
		perNight := nightlyRevenue(b)
		for night := range DaysBetween(b.CheckIn, b.CheckOut) {
			if night.Before(from) || night.After(to) {
				continue
			}
			revenue[night] += perNight
			counts[night]++
		}
	}
	return revenue, counts
}

// occupancyForDay folds the per-room-type grid into one hotel-wide row.
func occupancyForDay(grid []dto.RoomTypeAvailability, dayIndex int) dto.OccupancyDay {
	var row dto.OccupancyDay
	for _, rt := range grid {
		if dayIndex >= len(rt.Availability) {
			continue
		}
		cell := rt.Availability[dayIndex]
		row.Date = cell.Date
		row.TotalRooms += cell.TotalRooms
		row.OccupiedRooms += cell.BookedRooms
		row.BlockedRooms += cell.BlockedRooms
	}
	if row.TotalRooms > 0 {
		row.OccupancyPercent = float64(row.OccupiedRooms) / float64(row.TotalRooms) * 100
	}
	return row
}

// DashboardStats summarizes today for the hotel's landing page.
func (s *ReportService) DashboardStats(ctx context.Context, hotelID uint, now time.Time) (dto.DashboardStats, error) {
	today := DateOnly(now)
	stats := dto.DashboardStats{Date: today.Format(constants.DateLayout)}

	cacheKey := fmt.Sprintf("dashboard:%d:%s", hotelID, stats.Date)
	if s.Redis != nil {
		var cached dto.DashboardStats
		if hit, err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	arrivals, err := s.Bookings.ArrivalsOn(ctx, hotelID, today)
	if err != nil {
		return stats, err
	}
	departures, err := s.Bookings.DeparturesOn(ctx, hotelID, today)
	if err != nil {
		return stats, err
	}
	stats.ArrivalsToday = len(arrivals)
	stats.DeparturesToday = len(departures)

	var inHouse int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotelID, constants.BookingStatusCheckedIn).
		Count(&inHouse).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to count in-house bookings", err)
	}
	stats.InHouse = int(inHouse)

	var pending int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotelID, constants.BookingStatusPending).
		Count(&pending).Error; err != nil {
		return stats, errors.NewAppError(errors.ErrCodeDBError, "failed to count pending bookings", err)
	}
	stats.PendingBookings = int(pending)

	grid, err := s.Availability.ComputeAvailability(ctx, hotelID, today, today)
	if err != nil {
		return stats, err
	}
	occ := occupancyForDay(grid, 0)
	stats.TotalRooms = occ.TotalRooms
	stats.RoomsOccupied = occ.OccupiedRooms
	stats.OccupancyPercent = occ.OccupancyPercent

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	revenue, err := s.revenueWindow(ctx, hotelID, monthStart, monthEnd)
	if err != nil {
		return stats, err
	}
	byDay, _ := revenueByDay(revenue, monthStart, monthEnd)
	for day, amount := range byDay {
		if !day.After(today) {
			stats.RevenueThisMonth += amount
		}
	}

	if s.Redis != nil {
		if err := SetToRedis(ctx, s.Redis, cacheKey, stats, s.CacheTTL); err != nil {
			s.Logger.Error("failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}

// OccupancyReport returns one hotel-wide row per day of the inclusive window.
func (s *ReportService) OccupancyReport(ctx context.Context, hotelID uint, from, to time.Time) ([]dto.OccupancyDay, error) {
	if from.After(to) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}
	grid, err := s.Availability.ComputeAvailability(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}

	var report []dto.OccupancyDay
	i := 0
	for day := range DaysThrough(from, to) {
		row := occupancyForDay(grid, i)
		if row.Date == "" {
			row.Date = day.Format(constants.DateLayout)
		}
		report = append(report, row)
		i++
	}
	return report, nil
}

func (s *ReportService) revenueWindow(ctx context.Context, hotelID uint, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND status <> ? AND check_in <= ? AND check_out > ?",
			hotelID, constants.BookingStatusCancelled, DateOnly(to), DateOnly(from)).
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings for revenue", err)
	}
	return bookings, nil
}

// RevenueReport returns the daily revenue series for the inclusive window,
// followed by forecastDays of projection. The projection is a flat average of
// the realized series; it exists to draw a dotted line, not to plan budgets.
func (s *ReportService) RevenueReport(ctx context.Context, hotelID uint, from, to time.Time, forecastDays int) (dto.RevenueReport, error) {
	var report dto.RevenueReport
	if from.After(to) {
		return report, errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}

	cacheKey := fmt.Sprintf("revenue:%d:%s:%s:%d",
		hotelID, DateOnly(from).Format(constants.DateLayout), DateOnly(to).Format(constants.DateLayout), forecastDays)
	if s.Redis != nil {
		var cached dto.RevenueReport
		if hit, err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	bookings, err := s.revenueWindow(ctx, hotelID, from, to)
	if err != nil {
		return report, err
	}
	byDay, counts := revenueByDay(bookings, DateOnly(from), DateOnly(to))

	days := 0
	for day := range DaysThrough(from, to) {
		amount := byDay[day]
		report.Points = append(report.Points, dto.RevenuePoint{
			Date:     day.Format(constants.DateLayout),
			Revenue:  amount,
			Bookings: counts[day],
		})
		report.TotalRevenue += amount
		days++
	}
	if days > 0 {
		report.AveragePerDay = report.TotalRevenue / float64(days)
	}

	next := DateOnly(to)
	for i := 0; i < forecastDays; i++ {
		next = next.AddDate(0, 0, 1)
		report.Points = append(report.Points, dto.RevenuePoint{
			Date:      next.Format(constants.DateLayout),
			Revenue:   report.AveragePerDay,
			Projected: true,
		})
	}

	if s.Redis != nil {
		if err := SetToRedis(ctx, s.Redis, cacheKey, report, s.CacheTTL); err != nil {
			s.Logger.Error("failed to cache revenue report: %v", err)
		}
	}
	return report, nil
}
