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

	"gorm.io/gorm"
)

// PricingService turns a stay request into ranked rate options per room
// type, combining base/override nightly prices, plan markups, occupancy
// surcharges and promo discounts.
type PricingService struct {
	DB           *gorm.DB
	Rates        *RateService
	Availability *AvailabilityService
	Promos       *PromoService
	Logger       logger.Logger
}

func NewPricingService(db *gorm.DB, rates *RateService, availability *AvailabilityService, promos *PromoService, log logger.Logger) *PricingService {
	return &PricingService{DB: db, Rates: rates, Availability: availability, Promos: promos, Logger: log}
}

// planApplies filters a plan by its length-of-stay and advance-purchase
// restrictions.
func planApplies(plan models.RatePlan, nights, daysUntilCheckIn int) bool {
	if plan.MinLOS > 1 && nights < plan.MinLOS {
		return false
	}
	if plan.AdvancePurchaseDays > 0 && daysUntilCheckIn < plan.AdvancePurchaseDays {
		return false
	}
	return true
}

// buildRateOptions prices every applicable plan for one room type.
// priceByDay must cover every night of the stay (BulkLookup fills gaps with
// the base price, so lookups here never miss).
func buildRateOptions(rt models.RoomType, plans []models.RatePlan, priceByDay map[time.Time]float64,
	checkIn, checkOut time.Time, guests int, promo *models.PromoCode, now time.Time) []dto.RateOption {

	nights := Nights(checkIn, checkOut)
	daysUntilCheckIn := int(DateOnly(checkIn).Sub(DateOnly(now)).Hours() / 24)

	extraGuests := guests - rt.BaseOccupancy
	if extraGuests < 0 {
		extraGuests = 0
	}
	extraPersonPrice := rt.ExtraPersonPrice
	if extraPersonPrice == 0 {
		extraPersonPrice = constants.DefaultExtraPersonPrice
	}

	var options []dto.RateOption
	for _, plan := range plans {
		if !planApplies(plan, nights, daysUntilCheckIn) {
			continue
		}

		total := 0.0
		for night := range DaysBetween(checkIn, checkOut) {
			nightly := priceByDay[night] + plan.PriceAdjustment
			if extraGuests > 0 {
				nightly += float64(extraGuests) * extraPersonPrice
			}
			total += nightly
		}

		// Average nightly price is informational; the total is authoritative.
		perNight := total / float64(nights)

		savings := ""
		if promo != nil {
			discount := promoDiscount(*promo, total)
			if discount > 0 {
				total -= discount
				savings = fmt.Sprintf("Save INR %d with %s", int(discount), promo.Code)
			}
		}

		inclusions := []string{"Free Wi-Fi"}
		inclusions = append(inclusions, plan.Inclusions...)

		options = append(options, dto.RateOption{
			ID:            plan.ID,
			Name:          plan.Name,
			MealPlanCode:  plan.MealPlan,
			PricePerNight: perNight,
			TotalPrice:    total,
			Inclusions:    inclusions,
			SavingsText:   savings,
		})
	}
	return options
}

func startingPrice(options []dto.RateOption) float64 {
	lowest := options[0].TotalPrice
	for _, opt := range options[1:] {
		if opt.TotalPrice < lowest {
			lowest = opt.TotalPrice
		}
	}
	return lowest
}

// ResolvePricing produces the priced search results for a stay. Room types
// that are sold out, over occupancy, or without any applicable rate option
// are dropped entirely. When the hotel has no active rate plans every room
// type resolves to zero options: the property is deliberately not sellable
// until plans are configured, and base price is NOT substituted as a
// fallback. Do not "fix" this without a product decision.
func (s *PricingService) ResolvePricing(ctx context.Context, hotelID uint, checkIn, checkOut time.Time, guests int, promoCode string) ([]dto.RoomSearchResult, error) {
	if guests <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "guest count must be positive", errors.ErrInvalidInput)
	}
	if !DateOnly(checkIn).Before(DateOnly(checkOut)) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "check-out must be after check-in", errors.ErrInvalidDateRange)
	}

	db := s.DB.WithContext(ctx)

	var roomTypes []models.RoomType
	if err := db.Where("hotel_id = ? AND is_active = ?", hotelID, true).Order("base_price asc").Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room types", err)
	}

	var plans []models.RatePlan
	if err := db.Where("hotel_id = ? AND is_active = ?", hotelID, true).Find(&plans).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load rate plans", err)
	}

	promo, err := s.Promos.FindValid(ctx, hotelID, promoCode, time.Now())
	if err != nil {
		return nil, err
	}

	// One window load covers the availability check for every room type.
	lastNight := DateOnly(checkOut).AddDate(0, 0, -1)
	if lastNight.Before(DateOnly(checkIn)) {
		lastNight = DateOnly(checkIn)
	}
	_, bookings, blocks, err := s.Availability.loadWindow(ctx, hotelID, DateOnly(checkIn), lastNight)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var results []dto.RoomSearchResult
	for _, rt := range roomTypes {
		if rt.MaxOccupancy < guests {
			continue
		}
		available := minAvailableUnits(rt, checkIn, checkOut, bookings, blocks)
		if available <= 0 {
			continue
		}

		priceByDay, err := s.Rates.BulkLookup(ctx, models.BaseRateKey(rt.ID), DateOnly(checkIn), lastNight, rt.BasePrice)
		if err != nil {
			return nil, err
		}

		options := buildRateOptions(rt, plans, priceByDay, checkIn, checkOut, guests, promo, now)
		if len(options) == 0 {
			continue
		}

		results = append(results, dto.RoomSearchResult{
			ID:              rt.ID,
			Name:            rt.Name,
			Description:     rt.Description,
			BedType:         rt.BedType,
			MaxOccupancy:    rt.MaxOccupancy,
			BaseOccupancy:   rt.BaseOccupancy,
			PriceStartingAt: startingPrice(options),
			AvailableRooms:  available,
			RateOptions:     options,
		})
	}
	return results, nil
}
