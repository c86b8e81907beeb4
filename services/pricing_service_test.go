package services

import (
	"testing"
	"time"

	"innpilot/constants"
	"innpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPrices(from, to string, price float64) map[time.Time]float64 {
	prices := make(map[time.Time]float64)
	for d := range DaysThrough(day(from), day(to)) {
		prices[d] = price
	}
	return prices
}

func TestPlanApplies(t *testing.T) {
	tests := []struct {
		name             string
		plan             models.RatePlan
		nights           int
		daysUntilCheckIn int
		want             bool
	}{
		{"no restrictions", models.RatePlan{MinLOS: 1}, 1, 0, true},
		{"min stay met", models.RatePlan{MinLOS: 3}, 3, 0, true},
		{"min stay not met", models.RatePlan{MinLOS: 3}, 2, 0, false},
		{"advance purchase met", models.RatePlan{MinLOS: 1, AdvancePurchaseDays: 7}, 1, 10, true},
		{"advance purchase not met", models.RatePlan{MinLOS: 1, AdvancePurchaseDays: 7}, 1, 3, false},
		{"both restrictions fail on stay", models.RatePlan{MinLOS: 2, AdvancePurchaseDays: 1}, 1, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planApplies(tt.plan, tt.nights, tt.daysUntilCheckIn))
		})
	}
}

func TestBuildRateOptionsNoPlansNoOptions(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 3000}
	prices := flatPrices("2026-07-01", "2026-07-02", 3000)

	options := buildRateOptions(rt, nil, prices, day("2026-07-01"), day("2026-07-03"), 2, nil, day("2026-06-01"))
	assert.Empty(t, options)
}

func TestBuildRateOptionsPlanAdjustment(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 3000}
	plans := []models.RatePlan{
		{ID: 10, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1},
		{ID: 11, Name: "With Breakfast", MealPlan: constants.MealPlanBreakfast, MinLOS: 1, PriceAdjustment: 400},
	}
	prices := flatPrices("2026-07-01", "2026-07-02", 3000)

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-03"), 2, nil, day("2026-06-01"))
	require.Len(t, options, 2)

	assert.Equal(t, 6000.0, options[0].TotalPrice)
	assert.Equal(t, 3000.0, options[0].PricePerNight)
	assert.Equal(t, 6800.0, options[1].TotalPrice)
	assert.Equal(t, 3400.0, options[1].PricePerNight)
}

func TestBuildRateOptionsExtraGuestSurcharge(t *testing.T) {
	// no per-room-type extra person price configured, so the default applies
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 4, BasePrice: 3000}
	plans := []models.RatePlan{{ID: 10, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1}}
	prices := flatPrices("2026-07-01", "2026-07-01", 3000)

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-02"), 3, nil, day("2026-06-01"))
	require.Len(t, options, 1)
	assert.Equal(t, 3000+constants.DefaultExtraPersonPrice, options[0].TotalPrice)

	rt.ExtraPersonPrice = 800
	options = buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-02"), 4, nil, day("2026-06-01"))
	require.Len(t, options, 1)
	assert.Equal(t, 3000+2*800.0, options[0].TotalPrice)
}

func TestBuildRateOptionsGuestsWithinBaseOccupancy(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 3000, ExtraPersonPrice: 800}
	plans := []models.RatePlan{{ID: 10, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1}}
	prices := flatPrices("2026-07-01", "2026-07-01", 3000)

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-02"), 1, nil, day("2026-06-01"))
	require.Len(t, options, 1)
	assert.Equal(t, 3000.0, options[0].TotalPrice)
}

func TestBuildRateOptionsPromoDiscount(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 2000}
	plans := []models.RatePlan{{ID: 10, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1}}
	prices := flatPrices("2026-07-01", "2026-07-02", 2000)
	promo := &models.PromoCode{Code: "SUMMER10", IsActive: true, DiscountType: constants.DiscountTypePercentage, DiscountValue: 10}

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-03"), 2, promo, day("2026-06-01"))
	require.Len(t, options, 1)
	assert.Equal(t, 3600.0, options[0].TotalPrice)
	assert.Contains(t, options[0].SavingsText, "SUMMER10")
}

func TestBuildRateOptionsPromoNeverGoesNegative(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 1000}
	plans := []models.RatePlan{{ID: 10, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1}}
	prices := flatPrices("2026-07-01", "2026-07-01", 1000)
	promo := &models.PromoCode{Code: "BIGFIX", IsActive: true, DiscountType: constants.DiscountTypeFixedAmount, DiscountValue: 5000}

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-02"), 2, promo, day("2026-06-01"))
	require.Len(t, options, 1)
	assert.Equal(t, 0.0, options[0].TotalPrice)
}

func TestBuildRateOptionsFiltersRestrictedPlans(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 3000}
	plans := []models.RatePlan{
		{ID: 10, Name: "Flexible", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1},
		{ID: 11, Name: "Long Stay", MealPlan: constants.MealPlanRoomOnly, MinLOS: 5},
		{ID: 12, Name: "Early Bird", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1, AdvancePurchaseDays: 30},
	}
	prices := flatPrices("2026-07-01", "2026-07-02", 3000)

	// two nights, booked ten days out: only the flexible plan qualifies
	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-03"), 2, nil, day("2026-06-21"))
	require.Len(t, options, 1)
	assert.Equal(t, "Flexible", options[0].Name)
}

func TestStartingPricePicksLowestTotal(t *testing.T) {
	rt := models.RoomType{ID: 1, Name: "Deluxe", BaseOccupancy: 2, MaxOccupancy: 3, BasePrice: 3000}
	plans := []models.RatePlan{
		{ID: 10, Name: "With Breakfast", MealPlan: constants.MealPlanBreakfast, MinLOS: 1, PriceAdjustment: 500},
		{ID: 11, Name: "Room Only", MealPlan: constants.MealPlanRoomOnly, MinLOS: 1},
	}
	prices := flatPrices("2026-07-01", "2026-07-01", 3000)

	options := buildRateOptions(rt, plans, prices, day("2026-07-01"), day("2026-07-02"), 2, nil, day("2026-06-01"))
	require.Len(t, options, 2)
	assert.Equal(t, 3000.0, startingPrice(options))
}
