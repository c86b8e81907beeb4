package services

import (
	"regexp"
	"testing"

	"innpilot/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{constants.BookingStatusPending, constants.BookingStatusConfirmed, true},
		{constants.BookingStatusPending, constants.BookingStatusCancelled, true},
		{constants.BookingStatusPending, constants.BookingStatusCheckedIn, false},
		{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusCancelled, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusCheckedOut, false},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut, true},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCancelled, true},
		{constants.BookingStatusCheckedIn, constants.BookingStatusPending, false},
		{constants.BookingStatusCheckedOut, constants.BookingStatusCancelled, false},
		{constants.BookingStatusCancelled, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusConfirmed, constants.BookingStatusConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestNewReferenceCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := newReferenceCode()
		assert.Regexp(t, pattern, ref)
		seen[ref] = true
	}
	// uuid-derived codes should not collide over a few draws
	assert.Greater(t, len(seen), 45)
}
