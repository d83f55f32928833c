package model

import "time"

// Discount is an admin-configured promotional offer a guest can claim while
// booking. Code is the stable identifier, unique within a venue. Venues
// without configured rows fall back to a static per-brand list, so VenueId
// may be zero for definitions sourced from that table.
type Discount struct {
	DTO
	VenueId     uint    `gorm:"index:idx_venue_code,unique" json:"venueId"`
	Code        string  `gorm:"not null;index:idx_venue_code,unique" json:"code"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	LimitPerDay int     `gorm:"default:0" json:"limitPerDay"`    // <= 0 means no daily limit
	MaxClaims   *int    `json:"maxClaims"`                       // lifetime cap, nil/0 means unset
	StartTime   *string `gorm:"size:5" json:"startTime"`         // "HH:MM"
	EndTime     *string `gorm:"size:5" json:"endTime"`           // "HH:MM"
	Active      bool    `gorm:"default:true;not null" json:"active"`
}

type Discounts []Discount

// DiscountDailyUsage counts redemptions per (venue, discount, calendar day).
// Rows appear lazily on first claim and are never expired automatically.
type DiscountDailyUsage struct {
	DTO
	VenueId   uint      `gorm:"not null;index:idx_usage_day,unique" json:"venueId"`
	Code      string    `gorm:"not null;index:idx_usage_day,unique" json:"code"`
	Date      time.Time `gorm:"type:date;not null;index:idx_usage_day,unique" json:"date"`
	UsedCount int       `gorm:"default:0;not null" json:"usedCount"`
}

// DiscountClaimTotal tracks lifetime redemptions per (venue, discount),
// maintained only for discounts carrying a lifetime cap.
type DiscountClaimTotal struct {
	DTO
	VenueId   uint   `gorm:"not null;index:idx_claim_total,unique" json:"venueId"`
	Code      string `gorm:"not null;index:idx_claim_total,unique" json:"code"`
	UsedCount int    `gorm:"default:0;not null" json:"usedCount"`
}

type DiscountLimitsInput struct {
	DiscountId string `json:"discountId" validate:"required"`
	MaxPerDay  *int   `json:"maxPerDay" validate:"omitempty,min=0"`
	MaxClaims  *int   `json:"maxClaims" validate:"omitempty,min=0"`
}

type DiscountResetInput struct {
	Date        *string `json:"date"` // "YYYY-MM-DD", nil = today
	DiscountId  *string `json:"discountId"`
	ResetClaims bool    `json:"resetClaims"` // reset the lifetime counter instead
}

type CreateDiscountInput struct {
	Code        string  `json:"code" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	LimitPerDay int     `json:"limitPerDay" validate:"min=0"`
	MaxClaims   *int    `json:"maxClaims" validate:"omitempty,min=0"`
	StartTime   *string `json:"startTime" validate:"omitempty,len=5"`
	EndTime     *string `json:"endTime" validate:"omitempty,len=5"`
}

type UpdateDiscountInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"startTime" validate:"omitempty,len=5"`
	EndTime     *string `json:"endTime" validate:"omitempty,len=5"`
	Active      *bool   `json:"active"`
}
