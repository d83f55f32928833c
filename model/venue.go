package model

import "bassik_backend/utils"

type Venue struct {
	DTO
	Name         string `gorm:"not null" json:"name"`
	Slug         string `gorm:"unique;not null" json:"slug"`
	Tagline      string `json:"tagline"`
	Description  string `gorm:"type:text" json:"description"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"` // number the booking messages go to
	ManagerEmail string `json:"managerEmail"`
	MapLink      string `json:"mapLink"`
	OpenTime     string `json:"openTime"`  // "HH:MM"
	CloseTime    string `json:"closeTime"` // "HH:MM", may be past midnight
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	Photos []VenuePhoto `gorm:"foreignKey:VenueId" json:"photos,omitempty"`
	Menus  []VenueMenu  `gorm:"foreignKey:VenueId" json:"menus,omitempty"`
	Offers []Offer      `gorm:"foreignKey:VenueId" json:"offers,omitempty"`
}

type Venues []Venue

// VenuePhoto and VenueMenu hold externally hosted media; the backend only
// stores URLs.
type VenuePhoto struct {
	DTO
	VenueId  uint   `gorm:"not null;index" json:"venueId"`
	Url      string `gorm:"not null" json:"url"`
	Caption  string `json:"caption"`
	Position int    `gorm:"default:0" json:"position"`
}

type VenueMenu struct {
	DTO
	VenueId uint   `gorm:"not null;index" json:"venueId"`
	Title   string `gorm:"not null" json:"title"`
	FileUrl string `gorm:"not null" json:"fileUrl"`
}

type Offer struct {
	DTO
	VenueId     uint              `gorm:"not null;index" json:"venueId"`
	Title       string            `gorm:"not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	ImageUrl    string            `json:"imageUrl"`
	ValidUntil  *utils.CustomDate `gorm:"type:date" json:"validUntil"`
	Status      string            `gorm:"default:'ACTIVE';not null" json:"status"` // ACTIVE, EXPIRED, INACTIVE
}

type Offers []Offer

type CreateVenueInput struct {
	Name         string `json:"name" validate:"required"`
	Tagline      string `json:"tagline"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	ManagerEmail string `json:"managerEmail" validate:"omitempty,email"`
	MapLink      string `json:"mapLink"`
	OpenTime     string `json:"openTime" validate:"omitempty,len=5"`
	CloseTime    string `json:"closeTime" validate:"omitempty,len=5"`
}

type UpdateVenueInput struct {
	Name         *string `json:"name"`
	Tagline      *string `json:"tagline"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Phone        *string `json:"phone"`
	WhatsApp     *string `json:"whatsapp"`
	ManagerEmail *string `json:"managerEmail" validate:"omitempty,email"`
	MapLink      *string `json:"mapLink"`
	OpenTime     *string `json:"openTime" validate:"omitempty,len=5"`
	CloseTime    *string `json:"closeTime" validate:"omitempty,len=5"`
	IsActive     *bool   `json:"isActive"`
}

type CreateVenuePhotoInput struct {
	Url      string `json:"url" validate:"required,url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type CreateVenueMenuInput struct {
	Title   string `json:"title" validate:"required"`
	FileUrl string `json:"fileUrl" validate:"required,url"`
}

type CreateOfferInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"imageUrl" validate:"omitempty,url"`
	ValidUntil  *string `json:"validUntil"` // "YYYY-MM-DD"
}

type UpdateOfferInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	ValidUntil  *string `json:"validUntil"`
	Status      *string `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED INACTIVE"`
}
