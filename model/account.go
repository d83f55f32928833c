package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'MANAGER';not null" json:"role"` // ADMIN, MANAGER
	IsActive bool   `gorm:"default:true" json:"isActive"`

	VenueId *uint  `json:"venueId"` // nil for platform admins
	Venue   *Venue `gorm:"foreignKey:VenueId" json:"venue,omitempty"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER"`
	VenueId  *uint  `json:"venueId"`
}
