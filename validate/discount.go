package validate

import (
	"time"

	"bassik_backend/constants"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func validTimeWindow(start, end *string) bool {
	for _, v := range []*string{start, end} {
		if v != nil && !utils.ValidTimeSlot(*v) {
			return false
		}
	}
	return true
}

func CreateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDiscountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if !validTimeWindow(input.StartTime, input.EndTime) {
			return utils.ErrorResponse(c, 400, "startTime/endTime must be HH:MM", nil)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateDiscountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if !validTimeWindow(input.StartTime, input.EndTime) {
			return utils.ErrorResponse(c, 400, "startTime/endTime must be HH:MM", nil)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

func DiscountLimits() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DiscountLimitsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.MaxPerDay == nil && input.MaxClaims == nil {
			return utils.ErrorResponse(c, 400, "Nothing to update, send maxPerDay or maxClaims", nil)
		}

		c.Locals("limitsInput", input)
		return c.Next()
	}
}

func DiscountReset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DiscountResetInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if input.Date != nil {
			if _, err := time.Parse("2006-01-02", *input.Date); err != nil {
				return utils.ErrorResponse(c, 400, "date must be YYYY-MM-DD", err)
			}
		}

		c.Locals("resetInput", input)
		return c.Next()
	}
}
