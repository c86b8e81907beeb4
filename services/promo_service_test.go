package services

import (
	"testing"
	"time"

	"innpilot/constants"
	"innpilot/models"

	"github.com/stretchr/testify/assert"
)

func datePtr(s string) *time.Time {
	d := day(s)
	return &d
}

func intPtr(n int) *int { return &n }

func TestPromoIsValid(t *testing.T) {
	tests := []struct {
		name  string
		promo models.PromoCode
		on    string
		want  bool
	}{
		{"active without window", models.PromoCode{IsActive: true}, "2026-07-15", true},
		{"inactive", models.PromoCode{IsActive: false}, "2026-07-15", false},
		{"inside window", models.PromoCode{IsActive: true, StartDate: datePtr("2026-07-01"), EndDate: datePtr("2026-07-31")}, "2026-07-15", true},
		{"before window", models.PromoCode{IsActive: true, StartDate: datePtr("2026-07-01")}, "2026-06-30", false},
		{"after window", models.PromoCode{IsActive: true, EndDate: datePtr("2026-07-31")}, "2026-08-01", false},
		{"window boundary start", models.PromoCode{IsActive: true, StartDate: datePtr("2026-07-01")}, "2026-07-01", true},
		{"window boundary end", models.PromoCode{IsActive: true, EndDate: datePtr("2026-07-31")}, "2026-07-31", true},
		{"under usage cap", models.PromoCode{IsActive: true, MaxUsage: intPtr(10), CurrentUsage: 9}, "2026-07-15", true},
		{"usage cap reached", models.PromoCode{IsActive: true, MaxUsage: intPtr(10), CurrentUsage: 10}, "2026-07-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promoIsValid(tt.promo, day(tt.on)))
		})
	}
}

func TestPromoDiscountPercentage(t *testing.T) {
	promo := models.PromoCode{DiscountType: constants.DiscountTypePercentage, DiscountValue: 15}
	assert.Equal(t, 1500.0, promoDiscount(promo, 10000))
}

func TestPromoDiscountFixedAmount(t *testing.T) {
	promo := models.PromoCode{DiscountType: constants.DiscountTypeFixedAmount, DiscountValue: 750}
	assert.Equal(t, 750.0, promoDiscount(promo, 10000))
}

func TestPromoDiscountCapsAtTotal(t *testing.T) {
	promo := models.PromoCode{DiscountType: constants.DiscountTypeFixedAmount, DiscountValue: 5000}
	assert.Equal(t, 2000.0, promoDiscount(promo, 2000))
}

func TestPromoDiscountUnknownTypeIsZero(t *testing.T) {
	promo := models.PromoCode{DiscountType: "loyalty_points", DiscountValue: 50}
	assert.Equal(t, 0.0, promoDiscount(promo, 2000))
}

func TestApplySkipsZeroDiscount(t *testing.T) {
	s := &PromoService{}

	discount, note := s.Apply(nil, 5000)
	assert.Equal(t, 0.0, discount)
	assert.Empty(t, note)

	promo := &models.PromoCode{Code: "WELCOME", DiscountType: constants.DiscountTypePercentage, DiscountValue: 0}
	discount, note = s.Apply(promo, 5000)
	assert.Equal(t, 0.0, discount)
	assert.Empty(t, note)

	promo.DiscountValue = 10
	discount, note = s.Apply(promo, 5000)
	assert.Equal(t, 500.0, discount)
	assert.Contains(t, note, "WELCOME")
}
