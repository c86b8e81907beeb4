package dto

// DashboardStats is the landing-page summary for one hotel.
type DashboardStats struct {
	Date             string  `json:"date"`
	ArrivalsToday    int     `json:"arrivalsToday"`
	DeparturesToday  int     `json:"departuresToday"`
	InHouse          int     `json:"inHouse"`
	PendingBookings  int     `json:"pendingBookings"`
	OccupancyPercent float64 `json:"occupancyPercent"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`
	TotalRooms       int     `json:"totalRooms"`
	RoomsOccupied    int     `json:"roomsOccupied"`
}

// OccupancyDay is one row of the occupancy report.
type OccupancyDay struct {
	Date             string  `json:"date"`
	TotalRooms       int     `json:"totalRooms"`
	OccupiedRooms    int     `json:"occupiedRooms"`
	BlockedRooms     int     `json:"blockedRooms"`
	OccupancyPercent float64 `json:"occupancyPercent"`
}

// RevenuePoint is one day of realized or projected revenue.
type RevenuePoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Bookings  int     `json:"bookings"`
	Projected bool    `json:"projected,omitempty"`
}

// RevenueReport bundles the realized series with a short projection tail.
type RevenueReport struct {
	Points       []RevenuePoint `json:"points"`
	TotalRevenue float64        `json:"totalRevenue"`
	AveragePerDay float64       `json:"averagePerDay"`
}
