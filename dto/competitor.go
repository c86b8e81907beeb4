package dto

// CreateCompetitorRequest registers a competitor property to track.
type CreateCompetitorRequest struct {
	Name      string `json:"name" binding:"required"`
	SourceURL string `json:"sourceUrl"`
}

// IngestRateRequest is one scraped observation. Re-posting the same
// (competitor, date, room type) overwrites the earlier price.
type IngestRateRequest struct {
	CheckInDate string  `json:"checkInDate" binding:"required"`
	RoomType    string  `json:"roomType"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	IsSoldOut   bool    `json:"isSoldOut"`
}

// IngestRatesRequest is a batch of observations for one competitor.
type IngestRatesRequest struct {
	Rates []IngestRateRequest `json:"rates" binding:"required"`
}

// CompetitorDayRate is one competitor's observed price for a day.
type CompetitorDayRate struct {
	CompetitorID   uint    `json:"competitorId"`
	CompetitorName string  `json:"competitorName"`
	RoomType       string  `json:"roomType"`
	Price          float64 `json:"price"`
	IsSoldOut      bool    `json:"isSoldOut"`
}

// RateComparisonDay lines up the hotel's own base rate against every tracked
// competitor for one date.
type RateComparisonDay struct {
	Date        string              `json:"date"`
	OwnPrice    float64             `json:"ownPrice"`
	Competitors []CompetitorDayRate `json:"competitors"`
	Position    string              `json:"position"`
}

// RateComparison is the comparison grid for one of the hotel's room types.
type RateComparison struct {
	RoomTypeID   uint                `json:"roomTypeId"`
	RoomTypeName string              `json:"roomTypeName"`
	Days         []RateComparisonDay `json:"days"`
}
