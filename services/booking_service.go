package services

import (
	"context"
	"strings"
	"time"

	"innpilot/constants"
	"innpilot/dto"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle. Availability is checked at
// creation time but not locked; see AvailabilityService for the read-time
// clamp policy.
type BookingService struct {
	DB            *gorm.DB
	Rates         *RateService
	Availability  *AvailabilityService
	Promos        *PromoService
	Notifications *NotificationService
	Logger        logger.Logger
}

func NewBookingService(db *gorm.DB, rates *RateService, availability *AvailabilityService,
	promos *PromoService, notifications *NotificationService, log logger.Logger) *BookingService {
	return &BookingService{
		DB:            db,
		Rates:         rates,
		Availability:  availability,
		Promos:        promos,
		Notifications: notifications,
		Logger:        log,
	}
}

// allowedTransitions maps a status to the statuses it may move to.
// Cancellation is reachable from every pre-checked-out state.
var allowedTransitions = map[string][]string{
	constants.BookingStatusPending:   {constants.BookingStatusConfirmed, constants.BookingStatusCancelled},
	constants.BookingStatusConfirmed: {constants.BookingStatusCheckedIn, constants.BookingStatusCancelled},
	constants.BookingStatusCheckedIn: {constants.BookingStatusCheckedOut, constants.BookingStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create validates the stay, re-checks availability per requested room type,
// prices each selection and persists the booking (plus promo usage) in one
// transaction.
func (s *BookingService) Create(ctx context.Context, hotelID uint, userID *uint, req dto.CreateBookingRequest) (models.Booking, error) {
	var booking models.Booking

	checkIn, err := time.Parse(constants.DateLayout, req.CheckIn)
	if err != nil {
		return booking, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid check-in date", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, req.CheckOut)
	if err != nil {
		return booking, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid check-out date", err)
	}
	if !DateOnly(checkIn).Before(DateOnly(checkOut)) {
		return booking, errors.NewAppError(errors.ErrCodeInvalidRange, "check-out must be after check-in", errors.ErrInvalidDateRange)
	}
	if len(req.Rooms) == 0 {
		return booking, errors.NewAppError(errors.ErrCodeValidation, "at least one room must be selected", errors.ErrInvalidInput)
	}
	guests := req.Adults + req.Children
	if guests <= 0 {
		guests = 1
	}

	// Units requested per room type: each selection entry is one unit.
	unitsWanted := map[uint]int{}
	for _, sel := range req.Rooms {
		unitsWanted[sel.RoomTypeID]++
	}
	for roomTypeID, wanted := range unitsWanted {
		available, err := s.Availability.AvailableUnits(ctx, hotelID, roomTypeID, checkIn, checkOut)
		if err != nil {
			return booking, err
		}
		if available < wanted {
			return booking, errors.NewAppError(errors.ErrCodeNoAvailability,
				"not enough rooms available for the requested stay", errors.ErrNoAvailability)
		}
	}

	nights := Nights(checkIn, checkOut)
	lastNight := DateOnly(checkOut).AddDate(0, 0, -1)

	var selections []models.RoomSelection
	roomTotal := 0.0
	for _, sel := range req.Rooms {
		var rt models.RoomType
		if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", sel.RoomTypeID, hotelID).First(&rt).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return booking, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
			}
			return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
		}

		adjustment := 0.0
		if sel.RatePlanID != 0 {
			var plan models.RatePlan
			if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ? AND is_active = ?", sel.RatePlanID, hotelID, true).First(&plan).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return booking, errors.NewAppError(errors.ErrCodeDBNotFound, "rate plan not found", errors.ErrRatePlanNotFound)
				}
				return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to load rate plan", err)
			}
			adjustment = plan.PriceAdjustment
		}

		priceByDay, err := s.Rates.BulkLookup(ctx, models.BaseRateKey(rt.ID), DateOnly(checkIn), lastNight, rt.BasePrice)
		if err != nil {
			return booking, err
		}

		selGuests := sel.GuestCount
		if selGuests <= 0 {
			selGuests = rt.BaseOccupancy
		}
		extraGuests := selGuests - rt.BaseOccupancy
		if extraGuests < 0 {
			extraGuests = 0
		}
		extraPersonPrice := rt.ExtraPersonPrice
		if extraPersonPrice == 0 {
			extraPersonPrice = constants.DefaultExtraPersonPrice
		}

		selTotal := 0.0
		for night := range DaysBetween(checkIn, checkOut) {
			selTotal += priceByDay[night] + adjustment + float64(extraGuests)*extraPersonPrice
		}

		selections = append(selections, models.RoomSelection{
			RoomTypeID: rt.ID,
			RatePlanID: sel.RatePlanID,
			GuestCount: selGuests,
			RoomPrice:  selTotal,
		})
		roomTotal += selTotal
	}

	promo, err := s.Promos.FindValid(ctx, hotelID, req.PromoCode, time.Now())
	if err != nil {
		return booking, err
	}
	discount, _ := s.Promos.Apply(promo, roomTotal)

	booking = models.Booking{
		HotelID:       hotelID,
		UserID:        userID,
		ReferenceCode: newReferenceCode(),
		CheckIn:       DateOnly(checkIn),
		CheckOut:      DateOnly(checkOut),
		Status:        constants.BookingStatusPending,
		Rooms:         selections,
		Adults:        req.Adults,
		Children:      req.Children,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		RoomPrice:     roomTotal,
		DiscountPrice: discount,
		TotalPrice:    roomTotal - discount,
		Notes:         req.Notes,
	}
	if promo != nil {
		booking.PromoCode = promo.Code
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if promo != nil {
			return s.Promos.IncrementUsage(tx, promo.ID)
		}
		return nil
	})
	if err != nil {
		return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
	}

	s.Availability.InvalidateCache(ctx, hotelID)
	if s.Notifications != nil {
		s.Notifications.BookingCreated(ctx, booking)
	}
	s.Logger.Info("booking %s created: %d room(s), %d night(s), total %.2f",
		booking.ReferenceCode, len(selections), nights, booking.TotalPrice)
	return booking, nil
}

// ChangeStatus enforces the lifecycle state machine.
func (s *BookingService) ChangeStatus(ctx context.Context, hotelID, bookingID uint, newStatus string) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", bookingID, hotelID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return booking, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
		}
		return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}

	probe := models.Booking{Status: newStatus}
	if err := probe.ValidateStatus(); err != nil {
		return booking, errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}
	if !canTransition(booking.Status, newStatus) {
		return booking, errors.NewAppError(errors.ErrCodeInvalidOperation,
			"cannot move booking from "+booking.Status+" to "+newStatus, errors.ErrInvalidTransition)
	}

	if err := s.DB.WithContext(ctx).Model(&booking).Update("status", newStatus).Error; err != nil {
		return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to update booking status", err)
	}
	booking.Status = newStatus

	if newStatus == constants.BookingStatusCancelled {
		s.Availability.InvalidateCache(ctx, hotelID)
	}
	return booking, nil
}

// Cancel is a convenience wrapper used by the agent tools.
func (s *BookingService) Cancel(ctx context.Context, hotelID, bookingID uint) (models.Booking, error) {
	return s.ChangeStatus(ctx, hotelID, bookingID, constants.BookingStatusCancelled)
}

// List returns bookings for the hotel with optional filters, newest first.
func (s *BookingService) List(ctx context.Context, hotelID uint, filters dto.BookingFilters) ([]models.Booking, int64, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.DB.WithContext(ctx).Model(&models.Booking{}).Where("hotel_id = ?", hotelID)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("reference_code ILIKE ? OR guest_name ILIKE ? OR guest_email ILIKE ?", like, like, like)
	}
	if filters.DateFrom != "" {
		if from, err := time.Parse(constants.DateLayout, filters.DateFrom); err == nil {
			query = query.Where("check_out > ?", DateOnly(from))
		}
	}
	if filters.DateTo != "" {
		if to, err := time.Parse(constants.DateLayout, filters.DateTo); err == nil {
			query = query.Where("check_in <= ?", DateOnly(to))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count bookings", err)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list bookings", err)
	}
	return bookings, total, nil
}

// GetByID loads one booking scoped to the hotel.
func (s *BookingService) GetByID(ctx context.Context, hotelID, bookingID uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Where("id = ? AND hotel_id = ?", bookingID, hotelID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return booking, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
		}
		return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}
	return booking, nil
}

// GetByReference loads one booking by its reference code.
func (s *BookingService) GetByReference(ctx context.Context, hotelID uint, ref string) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND reference_code = ?", hotelID, strings.ToUpper(strings.TrimSpace(ref))).
		First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return booking, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
		}
		return booking, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}
	return booking, nil
}

// ArrivalsOn lists non-cancelled bookings checking in on the given day.
func (s *BookingService) ArrivalsOn(ctx context.Context, hotelID uint, day time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND check_in = ? AND status IN ?", hotelID, DateOnly(day),
			[]string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load arrivals", err)
	}
	return bookings, nil
}

// DeparturesOn lists in-house bookings checking out on the given day.
func (s *BookingService) DeparturesOn(ctx context.Context, hotelID uint, day time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND check_out = ? AND status = ?", hotelID, DateOnly(day), constants.BookingStatusCheckedIn).
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load departures", err)
	}
	return bookings, nil
}
