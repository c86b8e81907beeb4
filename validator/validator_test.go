package validator

import (
	"testing"

	"innpilot/constants"
	"innpilot/errors"
	"innpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *models.User {
	return &models.User{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     constants.RoleReceptionist,
	}
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(validUser()))
}

func TestValidateUserRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.User)
		code   errors.ErrorCode
	}{
		{"empty email", func(u *models.User) { u.Email = "" }, errors.ErrCodeRequiredField},
		{"malformed email", func(u *models.User) { u.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"empty password", func(u *models.User) { u.Password = "" }, errors.ErrCodeRequiredField},
		{"short password", func(u *models.User) { u.Password = "abc" }, errors.ErrCodeValidation},
		{"bad phone", func(u *models.User) { u.PhoneNumber = "call me" }, errors.ErrCodeValidation},
		{"role out of range", func(u *models.User) { u.Role = 9 }, errors.ErrCodeInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := ValidateUser(u)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestValidateUserAcceptsOptionalPhone(t *testing.T) {
	u := validUser()
	u.PhoneNumber = ""
	assert.NoError(t, ValidateUser(u))

	u.PhoneNumber = "+919876543210"
	assert.NoError(t, ValidateUser(u))
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("check_in", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())

	_, err = ParseDate("check_in", "29/08/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check_in")
}

func TestParseDateRange(t *testing.T) {
	from, to, err := ParseDateRange("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, from.Before(to))

	_, _, err = ParseDateRange("2026-08-31", "2026-08-01")
	assert.Error(t, err)

	// equal endpoints are a valid single-day range
	_, _, err = ParseDateRange("2026-08-15", "2026-08-15")
	assert.NoError(t, err)
}

func TestValidateStay(t *testing.T) {
	_, _, err := ValidateStay("2026-08-01", "2026-08-03")
	assert.NoError(t, err)

	// zero-night stays are not sellable
	_, _, err = ValidateStay("2026-08-01", "2026-08-01")
	assert.Error(t, err)

	_, _, err = ValidateStay("2026-08-03", "2026-08-01")
	assert.Error(t, err)
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, ValidatePrice(0))
	assert.NoError(t, ValidatePrice(2500))
	assert.Error(t, ValidatePrice(-1))
}

func TestValidateGuests(t *testing.T) {
	assert.NoError(t, ValidateGuests(1))
	assert.Error(t, ValidateGuests(0))
	assert.Error(t, ValidateGuests(-3))
}
