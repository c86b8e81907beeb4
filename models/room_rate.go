package models

import (
	"time"
)

// RoomRate is one non-overlapping date-range price record. DateFrom and
// DateTo are both inclusive. A nil RatePlanID row overrides the room type's
// base price; a non-nil one overrides the price for that plan only. Rows for
// the same key are kept non-overlapping by the rate store's rewrite logic.
type RoomRate struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index:idx_room_rates_lookup"`
	RatePlanID *uint     `json:"ratePlanId" gorm:"index:idx_room_rates_lookup"`
	DateFrom   time.Time `json:"dateFrom" gorm:"type:date;index:idx_room_rates_lookup"`
	DateTo     time.Time `json:"dateTo" gorm:"type:date;index:idx_room_rates_lookup"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RateKey identifies which price series a RoomRate row belongs to: the room
// type's base price, or one of its rate plans. It replaces the bare nullable
// foreign key at every API boundary; the null sentinel survives only in the
// column itself.
type RateKey struct {
	RoomTypeID uint
	planID     uint
	hasPlan    bool
}

// BaseRateKey addresses the base-price series of a room type.
func BaseRateKey(roomTypeID uint) RateKey {
	return RateKey{RoomTypeID: roomTypeID}
}

// PlanRateKey addresses the price series of one rate plan.
func PlanRateKey(roomTypeID, planID uint) RateKey {
	return RateKey{RoomTypeID: roomTypeID, planID: planID, hasPlan: true}
}

// PlanID returns the plan id and whether the key addresses a plan series.
func (k RateKey) PlanID() (uint, bool) {
	return k.planID, k.hasPlan
}

// ColumnValue returns the value stored in the rate_plan_id column.
func (k RateKey) ColumnValue() *uint {
	if !k.hasPlan {
		return nil
	}
	id := k.planID
	return &id
}

// Matches reports whether row belongs to this key's series.
func (k RateKey) Matches(row RoomRate) bool {
	if row.RoomTypeID != k.RoomTypeID {
		return false
	}
	if k.hasPlan {
		return row.RatePlanID != nil && *row.RatePlanID == k.planID
	}
	return row.RatePlanID == nil
}
