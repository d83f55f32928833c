package validate

import (
	"time"

	"bassik_backend/constants"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

func CreateVenuePhoto() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenuePhotoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func CreateVenueMenu() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenueMenuInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func CreateOffer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOfferInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.ValidUntil != nil {
			if _, err := time.Parse("2006-01-02", *input.ValidUntil); err != nil {
				return utils.ErrorResponse(c, 400, "validUntil must be YYYY-MM-DD", err)
			}
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateOffer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOfferInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.ValidUntil != nil {
			if _, err := time.Parse("2006-01-02", *input.ValidUntil); err != nil {
				return utils.ErrorResponse(c, 400, "validUntil must be YYYY-MM-DD", err)
			}
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}
