package handler

import (
	"time"

	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetOffers(c *fiber.Ctx) error {
	venue, err := resolveVenue(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, err)
	}

	var offers model.Offers
	if err := database.DB.
		Where("venue_id = ? AND status = ?", venue.ID, constants.OFFER_ACTIVE).
		Order("created_at desc").
		Find(&offers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, offers)
}

func CreateOffer(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	input := c.Locals("createInput").(model.CreateOfferInput)

	var offer model.Offer
	copier.Copy(&offer, &input)
	offer.VenueId = venue.ID
	offer.Status = constants.OFFER_ACTIVE
	if input.ValidUntil != nil {
		parsed, _ := time.Parse(constants.DateLayout, *input.ValidUntil)
		offer.ValidUntil = &utils.CustomDate{Time: parsed}
	}

	if err := database.DB.Create(&offer).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create offer", err)
	}

	return utils.SuccessResponse(c, 201, offer)
}

func UpdateOffer(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	id := c.Locals("inputId").(int)

	var offer model.Offer
	if err := database.DB.
		Where("id = ? AND venue_id = ?", id, venue.ID).
		First(&offer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Offer not found", err)
	}

	input := c.Locals("updateInput").(model.UpdateOfferInput)

	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.ValidUntil != nil {
		parsed, _ := time.Parse(constants.DateLayout, *input.ValidUntil)
		offer.ValidUntil = &utils.CustomDate{Time: parsed}
	}
	if input.ImageUrl != nil {
		offer.ImageUrl = *input.ImageUrl
	}
	if input.Status != nil {
		offer.Status = *input.Status
	}

	if err := database.DB.Save(&offer).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update offer", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, offer)
}

func DeleteOffers(c *fiber.Ctx) error {
	venue, ok := requireVenueManager(c)
	if !ok {
		return nil
	}

	ids := c.Locals("deleteIds").([]uint)

	if err := database.DB.
		Where("venue_id = ?", venue.ID).
		Delete(&model.Offer{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete offers", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Offers deleted"})
}
