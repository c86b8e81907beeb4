package services

import (
	"context"

	"innpilot/constants"
	"innpilot/dto"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"gorm.io/gorm"
)

// RoomService owns room-type and rate-plan CRUD. Deleting a room type also
// removes its rate overrides and blocks so orphaned ranges never shadow a
// future room type reusing the id.
type RoomService struct {
	DB           *gorm.DB
	Rates        *RateService
	Availability *AvailabilityService
	Logger       logger.Logger
}

func NewRoomService(db *gorm.DB, rates *RateService, availability *AvailabilityService, log logger.Logger) *RoomService {
	return &RoomService{DB: db, Rates: rates, Availability: availability, Logger: log}
}

func (s *RoomService) ListRoomTypes(ctx context.Context, hotelID uint, activeOnly bool) ([]models.RoomType, error) {
	query := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var roomTypes []models.RoomType
	if err := query.Order("base_price asc").Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list room types", err)
	}
	return roomTypes, nil
}

func (s *RoomService) GetRoomType(ctx context.Context, hotelID, roomTypeID uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", roomTypeID, hotelID).First(&rt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return rt, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
		}
		return rt, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}
	return rt, nil
}

func (s *RoomService) CreateRoomType(ctx context.Context, hotelID uint, req dto.CreateRoomTypeRequest) (models.RoomType, error) {
	rt := models.RoomType{
		HotelID:          hotelID,
		Name:             req.Name,
		Description:      req.Description,
		BasePrice:        req.BasePrice,
		TotalInventory:   req.TotalInventory,
		BaseOccupancy:    req.BaseOccupancy,
		MaxOccupancy:     req.MaxOccupancy,
		MaxChildren:      req.MaxChildren,
		ExtraBedAllowed:  req.ExtraBedAllowed,
		ExtraPersonPrice: req.ExtraPersonPrice,
		BedType:          req.BedType,
		RoomSize:         req.RoomSize,
		IsActive:         true,
		Photos:           req.Photos,
		Amenities:        req.Amenities,
	}
	if rt.BaseOccupancy == 0 {
		rt.BaseOccupancy = 2
	}
	if rt.MaxOccupancy == 0 {
		rt.MaxOccupancy = rt.BaseOccupancy + 1
	}
	if err := rt.Validate(); err != nil {
		return rt, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		return rt, errors.NewAppError(errors.ErrCodeDBError, "failed to create room type", err)
	}
	s.Availability.InvalidateCache(ctx, hotelID)
	return rt, nil
}

func (s *RoomService) UpdateRoomType(ctx context.Context, hotelID, roomTypeID uint, req dto.UpdateRoomTypeRequest) (models.RoomType, error) {
	rt, err := s.GetRoomType(ctx, hotelID, roomTypeID)
	if err != nil {
		return rt, err
	}

	if req.Name != nil {
		rt.Name = *req.Name
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if req.BasePrice != nil {
		rt.BasePrice = *req.BasePrice
	}
	if req.TotalInventory != nil {
		rt.TotalInventory = *req.TotalInventory
	}
	if req.BaseOccupancy != nil {
		rt.BaseOccupancy = *req.BaseOccupancy
	}
	if req.MaxOccupancy != nil {
		rt.MaxOccupancy = *req.MaxOccupancy
	}
	if req.MaxChildren != nil {
		rt.MaxChildren = *req.MaxChildren
	}
	if req.ExtraBedAllowed != nil {
		rt.ExtraBedAllowed = *req.ExtraBedAllowed
	}
	if req.ExtraPersonPrice != nil {
		rt.ExtraPersonPrice = *req.ExtraPersonPrice
	}
	if req.BedType != nil {
		rt.BedType = *req.BedType
	}
	if req.RoomSize != nil {
		rt.RoomSize = *req.RoomSize
	}
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}
	if req.Photos != nil {
		rt.Photos = req.Photos
	}
	if req.Amenities != nil {
		rt.Amenities = req.Amenities
	}

	if err := rt.Validate(); err != nil {
		return rt, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.DB.WithContext(ctx).Save(&rt).Error; err != nil {
		return rt, errors.NewAppError(errors.ErrCodeDBError, "failed to update room type", err)
	}
	s.Availability.InvalidateCache(ctx, hotelID)
	return rt, nil
}

// DeleteRoomType removes the room type together with its rate overrides and
// blocks, in one transaction. Bookings keep their embedded selections.
func (s *RoomService) DeleteRoomType(ctx context.Context, hotelID, roomTypeID uint) error {
	if _, err := s.GetRoomType(ctx, hotelID, roomTypeID); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Rates.DeleteForRoomType(tx, roomTypeID); err != nil {
			return err
		}
		if err := tx.Where("room_type_id = ?", roomTypeID).Delete(&models.RoomBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RoomType{}, roomTypeID).Error
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete room type", err)
	}
	s.Availability.InvalidateCache(ctx, hotelID)
	return nil
}

func (s *RoomService) ListRatePlans(ctx context.Context, hotelID uint, activeOnly bool) ([]models.RatePlan, error) {
	query := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var plans []models.RatePlan
	if err := query.Order("id asc").Find(&plans).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rate plans", err)
	}
	return plans, nil
}

func (s *RoomService) CreateRatePlan(ctx context.Context, hotelID uint, req dto.CreateRatePlanRequest) (models.RatePlan, error) {
	plan := models.RatePlan{
		HotelID:             hotelID,
		Name:                req.Name,
		MealPlan:            req.MealPlan,
		PriceAdjustment:     req.PriceAdjustment,
		MinLOS:              req.MinLOS,
		AdvancePurchaseDays: req.AdvancePurchaseDays,
		Inclusions:          req.Inclusions,
		IsActive:            true,
	}
	if plan.MealPlan == "" {
		plan.MealPlan = constants.MealPlanRoomOnly
	}
	if plan.MinLOS == 0 {
		plan.MinLOS = 1
	}
	if err := plan.Validate(); err != nil {
		return plan, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.DB.WithContext(ctx).Create(&plan).Error; err != nil {
		return plan, errors.NewAppError(errors.ErrCodeDBError, "failed to create rate plan", err)
	}
	return plan, nil
}

func (s *RoomService) UpdateRatePlan(ctx context.Context, hotelID, planID uint, req dto.UpdateRatePlanRequest) (models.RatePlan, error) {
	var plan models.RatePlan
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", planID, hotelID).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return plan, errors.NewAppError(errors.ErrCodeDBNotFound, "rate plan not found", errors.ErrRatePlanNotFound)
		}
		return plan, errors.NewAppError(errors.ErrCodeDBError, "failed to load rate plan", err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.MealPlan != nil {
		plan.MealPlan = *req.MealPlan
	}
	if req.PriceAdjustment != nil {
		plan.PriceAdjustment = *req.PriceAdjustment
	}
	if req.MinLOS != nil {
		plan.MinLOS = *req.MinLOS
	}
	if req.AdvancePurchaseDays != nil {
		plan.AdvancePurchaseDays = *req.AdvancePurchaseDays
	}
	if req.Inclusions != nil {
		plan.Inclusions = req.Inclusions
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := plan.Validate(); err != nil {
		return plan, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.DB.WithContext(ctx).Save(&plan).Error; err != nil {
		return plan, errors.NewAppError(errors.ErrCodeDBError, "failed to update rate plan", err)
	}
	return plan, nil
}

// DeleteRatePlan removes the plan and its per-plan rate overrides.
func (s *RoomService) DeleteRatePlan(ctx context.Context, hotelID, planID uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND hotel_id = ?", planID, hotelID).Delete(&models.RatePlan{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("rate_plan_id = ?", planID).Delete(&models.RoomRate{}).Error
	})
	if err == gorm.ErrRecordNotFound {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "rate plan not found", errors.ErrRatePlanNotFound)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete rate plan", err)
	}
	return nil
}
