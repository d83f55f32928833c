package handler

import (
	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/helper"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetVenues(c *fiber.Ctx) error {
	var venues model.Venues
	if err := database.DB.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&venues).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venues)
}

func GetVenueBySlug(c *fiber.Ctx) error {
	var venue model.Venue
	if err := database.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Menus").
		Preload("Offers", "status = ?", constants.OFFER_ACTIVE).
		Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenue(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ERROR_ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateVenueInput)

	var newVenue model.Venue
	copier.Copy(&newVenue, &input)
	newVenue.Slug = helper.GenerateUniqueVenueSlug(database.DB, input.Name)
	newVenue.IsActive = true

	if err := database.DB.Create(&newVenue).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create venue", err)
	}

	return utils.SuccessResponse(c, 201, newVenue)
}

func EditVenue(c *fiber.Ctx) error {
	claim, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	venue, err := resolveVenue(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, err)
	}
	if !helper.CanManageVenue(claim, isAdmin, venue.ID) {
		return utils.ErrorResponse(c, 403, "Not allowed for this venue", nil)
	}

	input := c.Locals("updateInput").(model.UpdateVenueInput)

	if input.Name != nil {
		venue.Name = *input.Name
	}
	if input.Tagline != nil {
		venue.Tagline = *input.Tagline
	}
	if input.Description != nil {
		venue.Description = *input.Description
	}
	if input.Address != nil {
		venue.Address = *input.Address
	}
	if input.City != nil {
		venue.City = *input.City
	}
	if input.Phone != nil {
		venue.Phone = *input.Phone
	}
	if input.WhatsApp != nil {
		venue.WhatsApp = *input.WhatsApp
	}
	if input.ManagerEmail != nil {
		venue.ManagerEmail = *input.ManagerEmail
	}
	if input.MapLink != nil {
		venue.MapLink = *input.MapLink
	}
	if input.OpenTime != nil {
		venue.OpenTime = *input.OpenTime
	}
	if input.CloseTime != nil {
		venue.CloseTime = *input.CloseTime
	}
	if input.IsActive != nil {
		venue.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&venue).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update venue", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ERROR_ADMIN_ONLY, nil)
	}

	ids := c.Locals("deleteIds").([]uint)

	if err := database.DB.Delete(&model.Venue{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete venues", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Venues deleted"})
}

func requireVenueManager(c *fiber.Ctx) (model.Venue, bool) {
	claim, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return model.Venue{}, false
	}

	venue, err := resolveVenue(c)
	if err != nil {
		utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, err)
		return model.Venue{}, false
	}
	if !helper.CanManageVenue(claim, isAdmin, venue.ID) {
		utils.ErrorResponse(c, 403, "Not allowed for this venue", nil)
		return model.Venue{}, false
	}
	return venue, true
}

func AddVenuePhoto(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	input := c.Locals("createInput").(model.CreateVenuePhotoInput)

	photo := model.VenuePhoto{
		VenueId:  venue.ID,
		Url:      input.Url,
		Caption:  input.Caption,
		Position: input.Position,
	}
	if err := database.DB.Create(&photo).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not add photo", err)
	}

	return utils.SuccessResponse(c, 201, photo)
}

func DeleteVenuePhotos(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	ids := c.Locals("deleteIds").([]uint)

	if err := database.DB.
		Where("venue_id = ?", venue.ID).
		Delete(&model.VenuePhoto{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete photos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Photos deleted"})
}

func AddVenueMenu(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	input := c.Locals("createInput").(model.CreateVenueMenuInput)

	menu := model.VenueMenu{
		VenueId: venue.ID,
		Title:   input.Title,
		FileUrl: input.FileUrl,
	}
	if err := database.DB.Create(&menu).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not add menu", err)
	}

	return utils.SuccessResponse(c, 201, menu)
}

func DeleteVenueMenus(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	ids := c.Locals("deleteIds").([]uint)

	if err := database.DB.
		Where("venue_id = ?", venue.ID).
		Delete(&model.VenueMenu{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete menus", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Menus deleted"})
}
