package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
)

const (
	RESERVATION_PENDING   = "PENDING"
	RESERVATION_CONFIRMED = "CONFIRMED"
	RESERVATION_CANCELLED = "CANCELLED"
	RESERVATION_COMPLETED = "COMPLETED"
	RESERVATION_EXPIRED   = "EXPIRED"
)

const (
	OFFER_ACTIVE   = "ACTIVE"
	OFFER_EXPIRED  = "EXPIRED"
	OFFER_INACTIVE = "INACTIVE"
)

const (
	ERROR_INPUT               = "Invalid input data"
	ERROR_INTERNAL_ERROR      = "Internal server error"
	ERROR_ADMIN_ONLY          = "Only admin is allowed"
	ERROR_MIGRATIONS_PENDING  = "Database schema not ready, run pending migrations"
	DATA_INPUT_IS_NOT_NUMBER  = "Input is not a number"
	ERROR_VENUE_NOT_FOUND     = "Venue not found"
	ERROR_DISCOUNT_NOT_FOUND  = "Discount not found for this venue"
	ERROR_DISCOUNT_SOLD_OUT   = "Discount is no longer available"
	ERROR_RESERVATION_MISSING = "Reservation not found"
)

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"
