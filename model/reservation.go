package model

import (
	"time"

	"bassik_backend/utils"
)

type Reservation struct {
	DTO
	PublicCode string `gorm:"unique;not null" json:"publicCode"`
	VenueId    uint   `gorm:"not null;index" json:"venueId"`
	Venue      Venue  `gorm:"foreignKey:VenueId" json:"venue,omitempty"`

	GuestName  string           `gorm:"not null" json:"guestName"`
	GuestPhone string           `gorm:"not null" json:"guestPhone"`
	GuestEmail string           `json:"guestEmail"`
	Date       utils.CustomDate `gorm:"type:date;not null;index" json:"date"`
	TimeSlot   string           `gorm:"size:5;not null" json:"timeSlot"` // "HH:MM"
	Men        int              `gorm:"default:0" json:"men"`
	Women      int              `gorm:"default:0" json:"women"`
	Note       string           `gorm:"type:text" json:"note"`

	Status      string     `gorm:"default:'PENDING';not null;index" json:"status"`
	ConfirmedAt *time.Time `json:"confirmedAt"`

	Discounts []ReservationDiscount `gorm:"foreignKey:ReservationId" json:"discounts,omitempty"`
}

// ReservationDiscount records one claimed slot against a discount's cap.
type ReservationDiscount struct {
	DTO
	ReservationId uint   `gorm:"not null;index" json:"reservationId"`
	Code          string `gorm:"not null" json:"code"`
	Title         string `json:"title"`
}

type CreateReservationInput struct {
	GuestName  string   `json:"guestName" validate:"required"`
	GuestPhone string   `json:"guestPhone" validate:"required,min=7"`
	GuestEmail string   `json:"guestEmail" validate:"omitempty,email"`
	Date       string   `json:"date" validate:"required"`
	TimeSlot   string   `json:"timeSlot" validate:"required,len=5"`
	Men        int      `json:"men" validate:"min=0"`
	Women      int      `json:"women" validate:"min=0"`
	Note       string   `json:"note"`
	Discounts  []string `json:"discounts"` // discount codes picked on the form
}

type ReservationFilter struct {
	Pagination
	Status *string `query:"status"`
	Date   *string `query:"date"`
}

type UpdateReservationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}
