package database

import (
	"log"

	"bassik_backend/constants"
	"bassik_backend/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme69"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "changeme69"
	}
	accounts := []model.Account{
		{Username: "administrator", Password: HashPassword, IsActive: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	venues := []model.Venue{
		{
			Name:      "Alehouse",
			Slug:      "alehouse",
			Tagline:   "Craft brews and big screens",
			Address:   "Jubilee Hills, Hyderabad",
			City:      "Hyderabad",
			OpenTime:  "12:00",
			CloseTime: "23:30",
			IsActive:  true,
		},
		{
			Name:      "KIIK 69",
			Slug:      "kiik69",
			Tagline:   "Sports bar and kitchen",
			Address:   "Gachibowli, Hyderabad",
			City:      "Hyderabad",
			OpenTime:  "12:00",
			CloseTime: "01:00",
			IsActive:  true,
		},
		{
			Name:      "Firewater",
			Slug:      "firewater",
			Tagline:   "Rooftop lounge",
			Address:   "Financial District, Hyderabad",
			City:      "Hyderabad",
			OpenTime:  "16:00",
			CloseTime: "01:00",
			IsActive:  true,
		},
	}

	for _, venue := range venues {
		if err := db.Where(model.Venue{Slug: venue.Slug}).FirstOrCreate(&venue).Error; err != nil {
			log.Println("failed to seed data for venue:", venue.Slug, "error:", err)
		}
	}
}
