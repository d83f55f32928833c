package validate

import (
	"time"

	"bassik_backend/constants"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return utils.ErrorResponse(c, 400, "date must be YYYY-MM-DD", err)
		}
		if !utils.ValidTimeSlot(input.TimeSlot) {
			return utils.ErrorResponse(c, 400, "timeSlot must be HH:MM", nil)
		}
		if input.Men+input.Women == 0 {
			return utils.ErrorResponse(c, 400, "At least one guest is required", nil)
		}

		c.Locals("createInput", input)
		c.Locals("reservationDate", date)
		return c.Next()
	}
}

func UpdateReservationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateReservationStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("statusInput", input)
		return c.Next()
	}
}
