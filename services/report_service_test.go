package services

import (
	"testing"

	"innpilot/constants"
	"innpilot/dto"
	"innpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revenueBooking(status, checkIn, checkOut string, total float64) models.Booking {
	b := booking(status, checkIn, checkOut, 1)
	b.TotalPrice = total
	return b
}

func TestNightlyRevenue(t *testing.T) {
	b := revenueBooking(constants.BookingStatusConfirmed, "2026-08-01", "2026-08-05", 8000)
	assert.Equal(t, 2000.0, nightlyRevenue(b))
}

func TestRevenueByDaySpreadsOverNights(t *testing.T) {
	bookings := []models.Booking{
		revenueBooking(constants.BookingStatusConfirmed, "2026-08-01", "2026-08-03", 6000),
		revenueBooking(constants.BookingStatusCheckedIn, "2026-08-02", "2026-08-03", 2500),
	}

	revenue, counts := revenueByDay(bookings, day("2026-08-01"), day("2026-08-05"))

	assert.Equal(t, 3000.0, revenue[day("2026-08-01")])
	assert.Equal(t, 5500.0, revenue[day("2026-08-02")])
	assert.Zero(t, revenue[day("2026-08-03")])

	assert.Equal(t, 1, counts[day("2026-08-01")])
	assert.Equal(t, 2, counts[day("2026-08-02")])
}

func TestRevenueByDaySkipsCancelled(t *testing.T) {
	bookings := []models.Booking{
		revenueBooking(constants.BookingStatusCancelled, "2026-08-01", "2026-08-03", 6000),
	}

	revenue, counts := revenueByDay(bookings, day("2026-08-01"), day("2026-08-05"))
	assert.Empty(t, revenue)
	assert.Empty(t, counts)
}

// A stay straddling the report window only contributes the nights inside it.
func TestRevenueByDayClipsToWindow(t *testing.T) {
	bookings := []models.Booking{
		revenueBooking(constants.BookingStatusConfirmed, "2026-07-30", "2026-08-03", 4000),
	}

	revenue, _ := revenueByDay(bookings, day("2026-08-01"), day("2026-08-31"))

	require.Len(t, revenue, 2)
	assert.Equal(t, 1000.0, revenue[day("2026-08-01")])
	assert.Equal(t, 1000.0, revenue[day("2026-08-02")])
}

func TestOccupancyForDayFoldsRoomTypes(t *testing.T) {
	grid := []dto.RoomTypeAvailability{
		{
			ID: 1, Name: "Deluxe", TotalInventory: 10,
			Availability: []dto.DayAvailability{
				{Date: "2026-08-01", TotalRooms: 10, BookedRooms: 6, BlockedRooms: 1, AvailableRooms: 3},
			},
		},
		{
			ID: 2, Name: "Suite", TotalInventory: 5,
			Availability: []dto.DayAvailability{
				{Date: "2026-08-01", TotalRooms: 5, BookedRooms: 3, AvailableRooms: 2},
			},
		},
	}

	row := occupancyForDay(grid, 0)
	assert.Equal(t, "2026-08-01", row.Date)
	assert.Equal(t, 15, row.TotalRooms)
	assert.Equal(t, 9, row.OccupiedRooms)
	assert.Equal(t, 1, row.BlockedRooms)
	assert.Equal(t, 60.0, row.OccupancyPercent)
}

func TestOccupancyForDayEmptyGrid(t *testing.T) {
	row := occupancyForDay(nil, 0)
	assert.Zero(t, row.TotalRooms)
	assert.Zero(t, row.OccupancyPercent)
}

func TestOccupancyForDayIndexPastGrid(t *testing.T) {
	grid := []dto.RoomTypeAvailability{
		{ID: 1, Availability: []dto.DayAvailability{{Date: "2026-08-01", TotalRooms: 4}}},
	}
	row := occupancyForDay(grid, 5)
	assert.Zero(t, row.TotalRooms)
}
