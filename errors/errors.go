package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Input errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeInvalidRange  ErrorCode = "INVALID_RANGE"
	ErrCodeInvalidPrice  ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidGuests ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeNoAvailability   ErrorCode = "NO_AVAILABILITY"
)

// AppError carries a code and an optional wrapped cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Hotel / room errors
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRatePlanNotFound = errors.New("rate plan not found")
	ErrBlockNotFound    = errors.New("room block not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingCheckedOut = errors.New("booking already checked out")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNoAvailability    = errors.New("no availability for the requested stay")

	// Promo errors
	ErrPromoNotFound = errors.New("promo code not found")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("date_from must not be after date_to")
	ErrNegativePrice    = errors.New("price must be non-negative")
)
