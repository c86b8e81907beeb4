package services

import (
	"testing"

	"innpilot/constants"
	"innpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testRoomType(inventory int) models.RoomType {
	return models.RoomType{ID: 1, Name: "Deluxe King", TotalInventory: inventory}
}

func booking(status, checkIn, checkOut string, roomTypeIDs ...uint) models.Booking {
	var rooms datatypes.JSONSlice[models.RoomSelection]
	for _, id := range roomTypeIDs {
		rooms = append(rooms, models.RoomSelection{RoomTypeID: id})
	}
	return models.Booking{Status: status, CheckIn: day(checkIn), CheckOut: day(checkOut), Rooms: rooms}
}

func TestCountBookedCheckOutIsExclusive(t *testing.T) {
	bookings := []models.Booking{booking(constants.BookingStatusConfirmed, "2026-03-01", "2026-03-03", 1)}

	assert.Equal(t, 1, countBooked(bookings, 1, day("2026-03-01")))
	assert.Equal(t, 1, countBooked(bookings, 1, day("2026-03-02")))
	assert.Equal(t, 0, countBooked(bookings, 1, day("2026-03-03")))
	assert.Equal(t, 0, countBooked(bookings, 1, day("2026-02-28")))
}

func TestCountBookedSkipsCancelled(t *testing.T) {
	bookings := []models.Booking{booking(constants.BookingStatusCancelled, "2026-03-01", "2026-03-05", 1)}
	assert.Equal(t, 0, countBooked(bookings, 1, day("2026-03-02")))
}

func TestCountBookedOneUnitPerSelection(t *testing.T) {
	// two units of room type 1, one of room type 2, in a single booking
	bookings := []models.Booking{booking(constants.BookingStatusConfirmed, "2026-03-01", "2026-03-03", 1, 1, 2)}

	assert.Equal(t, 2, countBooked(bookings, 1, day("2026-03-01")))
	assert.Equal(t, 1, countBooked(bookings, 2, day("2026-03-01")))
}

func TestCountBlockedInclusiveRange(t *testing.T) {
	blocks := []models.RoomBlock{{RoomTypeID: 1, StartDate: day("2026-03-02"), EndDate: day("2026-03-04"), BlockedCount: 2}}

	assert.Equal(t, 0, countBlocked(blocks, 1, day("2026-03-01")))
	assert.Equal(t, 2, countBlocked(blocks, 1, day("2026-03-02")))
	assert.Equal(t, 2, countBlocked(blocks, 1, day("2026-03-04")))
	assert.Equal(t, 0, countBlocked(blocks, 1, day("2026-03-05")))
	assert.Equal(t, 0, countBlocked(blocks, 2, day("2026-03-03")))
}

func TestTallyDayClampsOversell(t *testing.T) {
	rt := testRoomType(2)
	bookings := []models.Booking{
		booking(constants.BookingStatusConfirmed, "2026-03-01", "2026-03-02", 1),
		booking(constants.BookingStatusConfirmed, "2026-03-01", "2026-03-02", 1),
		booking(constants.BookingStatusConfirmed, "2026-03-01", "2026-03-02", 1),
	}

	cell := tallyDay(rt, day("2026-03-01"), bookings, nil)
	assert.Equal(t, 3, cell.BookedRooms)
	assert.Equal(t, 0, cell.AvailableRooms)
	assert.True(t, cell.IsBlocked)
}

// Inventory 2, one booking over Apr 1-2 and a one-unit block on Apr 2:
// Apr 1 has one unit left, Apr 2 none, and the block alone never flags the
// day as fully blocked.
func TestTallyDayBookingPlusBlock(t *testing.T) {
	rt := testRoomType(2)
	bookings := []models.Booking{booking(constants.BookingStatusConfirmed, "2026-04-01", "2026-04-03", 1)}
	blocks := []models.RoomBlock{{RoomTypeID: 1, StartDate: day("2026-04-02"), EndDate: day("2026-04-02"), BlockedCount: 1}}

	apr1 := tallyDay(rt, day("2026-04-01"), bookings, blocks)
	assert.Equal(t, 1, apr1.AvailableRooms)
	assert.False(t, apr1.IsBlocked)

	apr2 := tallyDay(rt, day("2026-04-02"), bookings, blocks)
	assert.Equal(t, 1, apr2.BookedRooms)
	assert.Equal(t, 1, apr2.BlockedRooms)
	assert.Equal(t, 0, apr2.AvailableRooms)
	// unavailable because nothing is left, not because blocks exhaust inventory
	assert.True(t, apr2.IsBlocked)

	apr3 := tallyDay(rt, day("2026-04-03"), bookings, blocks)
	assert.Equal(t, 2, apr3.AvailableRooms)
}

func TestTallyDayFullyBlocked(t *testing.T) {
	rt := testRoomType(2)
	blocks := []models.RoomBlock{{RoomTypeID: 1, StartDate: day("2026-04-01"), EndDate: day("2026-04-05"), BlockedCount: 2}}

	cell := tallyDay(rt, day("2026-04-03"), nil, blocks)
	assert.True(t, cell.IsBlocked)
	assert.Equal(t, 0, cell.AvailableRooms)
}

func TestTallyRangeCoversInclusiveWindow(t *testing.T) {
	rt := testRoomType(3)
	days := tallyRange(rt, day("2026-05-01"), day("2026-05-03"), nil, nil)

	require.Len(t, days, 3)
	assert.Equal(t, "2026-05-01", days[0].Date)
	assert.Equal(t, "2026-05-03", days[2].Date)
	for _, cell := range days {
		assert.Equal(t, 3, cell.AvailableRooms)
	}
}

// The stay spans two nights with different loads; the sellable count is the
// minimum across those nights.
func TestMinAvailableUnits(t *testing.T) {
	rt := testRoomType(5)
	bookings := []models.Booking{
		booking(constants.BookingStatusConfirmed, "2026-06-01", "2026-06-02", 1, 1, 1, 1),
		booking(constants.BookingStatusConfirmed, "2026-06-02", "2026-06-03", 1),
	}

	units := minAvailableUnits(rt, day("2026-06-01"), day("2026-06-03"), bookings, nil)
	assert.Equal(t, 1, units)
}

func TestMinAvailableUnitsSoldOutNight(t *testing.T) {
	rt := testRoomType(1)
	bookings := []models.Booking{booking(constants.BookingStatusConfirmed, "2026-06-02", "2026-06-03", 1)}

	units := minAvailableUnits(rt, day("2026-06-01"), day("2026-06-04"), bookings, nil)
	assert.Equal(t, 0, units)
}
