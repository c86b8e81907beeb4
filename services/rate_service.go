package services

import (
	"context"
	"time"

	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"gorm.io/gorm"
)

// RateService is the daily rate store: it owns the non-overlapping
// date-range price records per (room type, base-or-plan) series.
type RateService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewRateService(db *gorm.DB, log logger.Logger) *RateService {
	return &RateService{DB: db, Logger: log}
}

// rangeRewrite is the set of row mutations that makes room for a new range.
type rangeRewrite struct {
	deleteIDs []uint
	updates   []models.RoomRate
	inserts   []models.RoomRate
}

// planRangeRewrite classifies every existing overlapping row against the new
// inclusive range [from, to] and produces the rewrite that keeps the series
// non-overlapping. Cases are evaluated in priority order so a row that fully
// encloses the new range is handled once, by the split branch:
//
//  1. row inside the new range            -> delete
//  2. row overlaps the start              -> trim its tail to from-1,
//     and if it also runs past the end      keep the remainder as a new
//     tail row starting at to+1
//  3. row overlaps only the end           -> move its start to to+1
func planRangeRewrite(existing []models.RoomRate, from, to time.Time, price float64, key models.RateKey) rangeRewrite {
	from = DateOnly(from)
	to = DateOnly(to)

	var rw rangeRewrite
	for _, row := range existing {
		rowFrom := DateOnly(row.DateFrom)
		rowTo := DateOnly(row.DateTo)

		if !RangesOverlap(rowFrom, rowTo, from, to) {
			continue
		}

		switch {
		case !rowFrom.Before(from) && !rowTo.After(to):
			// Fully contained. An exact duplicate of the new range lands
			// here too: deleted, then replaced by the insert below.
			rw.deleteIDs = append(rw.deleteIDs, row.ID)

		case rowFrom.Before(from):
			if rowTo.After(to) {
				// Row encloses the new range: keep its tail as a separate row.
				tail := row
				tail.ID = 0
				tail.DateFrom = to.AddDate(0, 0, 1)
				tail.DateTo = rowTo
				rw.inserts = append(rw.inserts, tail)
			}
			row.DateTo = from.AddDate(0, 0, -1)
			rw.updates = append(rw.updates, row)

		default:
			// Overlaps the end only.
			row.DateFrom = to.AddDate(0, 0, 1)
			rw.updates = append(rw.updates, row)
		}
	}

	rw.inserts = append(rw.inserts, models.RoomRate{
		RoomTypeID: key.RoomTypeID,
		RatePlanID: key.ColumnValue(),
		DateFrom:   from,
		DateTo:     to,
		Price:      price,
	})
	return rw
}

func scopeRateKey(tx *gorm.DB, key models.RateKey) *gorm.DB {
	tx = tx.Where("room_type_id = ?", key.RoomTypeID)
	if planID, ok := key.PlanID(); ok {
		return tx.Where("rate_plan_id = ?", planID)
	}
	return tx.Where("rate_plan_id IS NULL")
}

// SetRangePrice makes price authoritative for exactly [dateFrom, dateTo] in
// the series addressed by key. Existing overlapping rows are deleted, trimmed
// or split first; adjacent equal-price rows are left un-coalesced. The whole
// rewrite runs inside one transaction so a crash cannot persist overlapping
// rows. Last writer wins between concurrent calls on the same series.
func (s *RateService) SetRangePrice(ctx context.Context, key models.RateKey, dateFrom, dateTo time.Time, price float64) error {
	if dateFrom.After(dateTo) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "price must be non-negative", errors.ErrNegativePrice)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.RoomRate
		if err := scopeRateKey(tx, key).
			Where("date_from <= ? AND date_to >= ?", DateOnly(dateTo), DateOnly(dateFrom)).
			Find(&existing).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to load overlapping rate ranges", err)
		}

		rw := planRangeRewrite(existing, dateFrom, dateTo, price, key)

		if len(rw.deleteIDs) > 0 {
			if err := tx.Delete(&models.RoomRate{}, rw.deleteIDs).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "failed to delete enclosed rate ranges", err)
			}
		}
		for _, row := range rw.updates {
			if err := tx.Model(&models.RoomRate{}).Where("id = ?", row.ID).
				Updates(map[string]interface{}{"date_from": row.DateFrom, "date_to": row.DateTo}).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "failed to trim rate range", err)
			}
		}
		for i := range rw.inserts {
			if err := tx.Create(&rw.inserts[i]).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "failed to insert rate range", err)
			}
		}

		s.Logger.Debug("rate range set: room_type=%d [%s..%s] price=%.2f (deleted=%d trimmed=%d)",
			key.RoomTypeID, DateOnly(dateFrom).Format("2006-01-02"), DateOnly(dateTo).Format("2006-01-02"),
			price, len(rw.deleteIDs), len(rw.updates))
		return nil
	})
}

// resolveDayPrice picks the price covering day from rows, or defaultPrice
// when no range contains it.
func resolveDayPrice(rows []models.RoomRate, day time.Time, defaultPrice float64) float64 {
	day = DateOnly(day)
	for _, row := range rows {
		if !day.Before(DateOnly(row.DateFrom)) && !day.After(DateOnly(row.DateTo)) {
			return row.Price
		}
	}
	return defaultPrice
}

// expandRanges turns overlapping rows into a day-indexed price map over the
// inclusive window [from, to], filling gaps with defaultPrice.
func expandRanges(rows []models.RoomRate, from, to time.Time, defaultPrice float64) map[time.Time]float64 {
	prices := make(map[time.Time]float64)
	for day := range DaysThrough(from, to) {
		prices[day] = resolveDayPrice(rows, day, defaultPrice)
	}
	return prices
}

// LookupPrice returns the override price for the range containing date, or
// defaultPrice when no range covers it.
func (s *RateService) LookupPrice(ctx context.Context, key models.RateKey, date time.Time, defaultPrice float64) (float64, error) {
	var rows []models.RoomRate
	d := DateOnly(date)
	if err := scopeRateKey(s.DB.WithContext(ctx).Model(&models.RoomRate{}), key).
		Where("date_from <= ? AND date_to >= ?", d, d).
		Limit(1).Find(&rows).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to look up rate", err)
	}
	return resolveDayPrice(rows, d, defaultPrice), nil
}

// BulkLookup expands every range overlapping [dateFrom, dateTo] into a
// day-indexed map in one query, falling back to defaultPrice per day. The
// pricing resolver uses this to avoid a query per night.
func (s *RateService) BulkLookup(ctx context.Context, key models.RateKey, dateFrom, dateTo time.Time, defaultPrice float64) (map[time.Time]float64, error) {
	if dateFrom.After(dateTo) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "date_from must not be after date_to", errors.ErrInvalidDateRange)
	}
	var rows []models.RoomRate
	if err := scopeRateKey(s.DB.WithContext(ctx).Model(&models.RoomRate{}), key).
		Where("date_from <= ? AND date_to >= ?", DateOnly(dateTo), DateOnly(dateFrom)).
		Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load rate ranges", err)
	}
	return expandRanges(rows, dateFrom, dateTo, defaultPrice), nil
}

// ListRanges returns the stored ranges for a series overlapping the window,
// ordered by start date.
func (s *RateService) ListRanges(ctx context.Context, key models.RateKey, dateFrom, dateTo time.Time) ([]models.RoomRate, error) {
	var rows []models.RoomRate
	if err := scopeRateKey(s.DB.WithContext(ctx).Model(&models.RoomRate{}), key).
		Where("date_from <= ? AND date_to >= ?", DateOnly(dateTo), DateOnly(dateFrom)).
		Order("date_from asc").
		Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rate ranges", err)
	}
	return rows, nil
}

// DeleteForRoomType removes every rate row of a room type, both base and
// plan series. Used by the room-type cascade delete.
func (s *RateService) DeleteForRoomType(tx *gorm.DB, roomTypeID uint) error {
	return tx.Where("room_type_id = ?", roomTypeID).Delete(&models.RoomRate{}).Error
}
