package validator

import (
	"regexp"
	"time"

	"innpilot/constants"
	"innpilot/errors"
	"innpilot/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateUser checks registration input before any write.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email must not be empty", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password must not be empty", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must be at least 6 characters", nil)
	}
	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeValidation, "phone number is not valid", nil)
	}
	if err := user.ValidateRole(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRole, err.Error(), nil)
	}
	return nil
}

// ParseDate parses a wire-format date and names the offending field on error.
func ParseDate(field, value string) (time.Time, error) {
	day, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, field+" must be a yyyy-mm-dd date", err)
	}
	return day, nil
}

// ParseDateRange parses and orders a from/to pair.
func ParseDateRange(fromValue, toValue string) (time.Time, time.Time, error) {
	from, err := ParseDate("date_from", fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate("date_to", toValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange,
			"date_from must not be after date_to", errors.ErrInvalidDateRange)
	}
	return from, to, nil
}

// ValidateStay parses a check-in/check-out pair and requires at least one night.
func ValidateStay(checkInValue, checkOutValue string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate("check_in", checkInValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := ParseDate("check_out", checkOutValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange,
			"check_out must be after check_in", errors.ErrInvalidDateRange)
	}
	return checkIn, checkOut, nil
}

// ValidatePrice rejects negative prices.
func ValidatePrice(price float64) error {
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "price must be non-negative", errors.ErrNegativePrice)
	}
	return nil
}

// ValidateGuests rejects non-positive guest counts.
func ValidateGuests(guests int) error {
	if guests < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "guest count must be at least 1", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
