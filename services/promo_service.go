package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"innpilot/constants"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"gorm.io/gorm"
)

type PromoService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPromoService(db *gorm.DB, log logger.Logger) *PromoService {
	return &PromoService{DB: db, Logger: log}
}

// promoIsValid checks the active flag, the optional date window and the
// optional usage cap against the quote date.
func promoIsValid(p models.PromoCode, on time.Time) bool {
	if !p.IsActive {
		return false
	}
	day := DateOnly(on)
	if p.StartDate != nil && day.Before(DateOnly(*p.StartDate)) {
		return false
	}
	if p.EndDate != nil && day.After(DateOnly(*p.EndDate)) {
		return false
	}
	if p.MaxUsage != nil && p.CurrentUsage >= *p.MaxUsage {
		return false
	}
	return true
}

// promoDiscount computes the discount against total. The discount never
// exceeds what it is applied to, so the final price floors at zero.
func promoDiscount(p models.PromoCode, total float64) float64 {
	var discount float64
	switch p.DiscountType {
	case constants.DiscountTypePercentage:
		discount = total * p.DiscountValue / 100
	case constants.DiscountTypeFixedAmount:
		discount = p.DiscountValue
	}
	if discount > total {
		discount = total
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// FindValid resolves a code to a currently valid promo. A lookup miss or an
// invalid promo is "no promo applied", never an error.
func (s *PromoService) FindValid(ctx context.Context, hotelID uint, code string, on time.Time) (*models.PromoCode, error) {
	if code == "" {
		return nil, nil
	}
	var promo models.PromoCode
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND code = ?", hotelID, strings.ToUpper(strings.TrimSpace(code))).
		First(&promo).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to look up promo code", err)
	}
	if !promoIsValid(promo, on) {
		return nil, nil
	}
	return &promo, nil
}

// Apply returns the discount and a savings note for a stay total.
func (s *PromoService) Apply(promo *models.PromoCode, total float64) (float64, string) {
	if promo == nil {
		return 0, ""
	}
	discount := promoDiscount(*promo, total)
	if discount <= 0 {
		return 0, ""
	}
	return discount, fmt.Sprintf("Save INR %d with %s", int(discount), promo.Code)
}

// IncrementUsage bumps the usage counter inside the caller's transaction.
func (s *PromoService) IncrementUsage(tx *gorm.DB, promoID uint) error {
	return tx.Model(&models.PromoCode{}).Where("id = ?", promoID).
		UpdateColumn("current_usage", gorm.Expr("current_usage + 1")).Error
}

func (s *PromoService) List(ctx context.Context, hotelID uint) ([]models.PromoCode, error) {
	var promos []models.PromoCode
	if err := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("created_at desc").Find(&promos).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list promo codes", err)
	}
	return promos, nil
}

func (s *PromoService) Create(ctx context.Context, promo *models.PromoCode) error {
	if err := promo.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.PromoCode{}).
		Where("hotel_id = ? AND code = ?", promo.HotelID, promo.Code).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to check promo code uniqueness", err)
	}
	if count > 0 {
		return errors.NewAppError(errors.ErrCodeDBDuplicate, "promo code already exists", nil)
	}

	if err := s.DB.WithContext(ctx).Create(promo).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to create promo code", err)
	}
	return nil
}

func (s *PromoService) SetActive(ctx context.Context, hotelID, promoID uint, active bool) error {
	result := s.DB.WithContext(ctx).Model(&models.PromoCode{}).
		Where("id = ? AND hotel_id = ?", promoID, hotelID).
		Update("is_active", active)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to update promo code", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "promo code not found", errors.ErrPromoNotFound)
	}
	return nil
}

func (s *PromoService) Delete(ctx context.Context, hotelID, promoID uint) error {
	result := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", promoID, hotelID).Delete(&models.PromoCode{})
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete promo code", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "promo code not found", errors.ErrPromoNotFound)
	}
	return nil
}

// DeactivateExpired flips off promos whose window has passed. Run daily by
// the cron scheduler.
func (s *PromoService) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.DB.WithContext(ctx).Model(&models.PromoCode{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, DateOnly(now)).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to deactivate expired promos", result.Error)
	}
	return result.RowsAffected, nil
}
