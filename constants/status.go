package constants

// User roles
const (
	RoleSuperAdmin   = 1
	RoleManager      = 2
	RoleReceptionist = 3
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status lifecycle: pending -> confirmed -> checked_in -> checked_out.
// Cancellation is allowed from any state before checked_out.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// Promo discount types
const (
	DiscountTypePercentage  = "percentage"
	DiscountTypeFixedAmount = "fixed_amount"
)

// Meal plan codes
const (
	MealPlanRoomOnly     = "RO"
	MealPlanBreakfast    = "CP"
	MealPlanHalfBoard    = "MAP"
	MealPlanFullBoard    = "AP"
)

// DefaultExtraPersonPrice is charged per extra guest per night when a room
// type has no extra-person price configured.
const DefaultExtraPersonPrice = 500.0

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"
