package dto

// DayAvailability is one day of the inventory grid for a room type.
type DayAvailability struct {
	Date           string `json:"date"`
	TotalRooms     int    `json:"totalRooms"`
	BookedRooms    int    `json:"bookedRooms"`
	BlockedRooms   int    `json:"blockedRooms"`
	AvailableRooms int    `json:"availableRooms"`
	IsBlocked      bool   `json:"isBlocked"`
}

// RoomTypeAvailability is the per-room-type slice of the availability grid.
type RoomTypeAvailability struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	TotalInventory int               `json:"totalInventory"`
	Availability   []DayAvailability `json:"availability"`
}

// CreateBlockRequest withholds rooms from sale for an inclusive date range.
type CreateBlockRequest struct {
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	BlockedCount int    `json:"blockedCount"`
	Reason       string `json:"reason"`
}
