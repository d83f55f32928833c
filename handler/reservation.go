package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"time"

	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/discount"
	"bassik_backend/helper"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateReservation books a table and claims the selected discounts. All
// claims run inside one transaction: if any discount is sold out, nothing is
// written and no counter moves.
func CreateReservation(c *fiber.Ctx) error {
	venue, err := resolveVenue(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, err)
	}

	input := c.Locals("createInput").(model.CreateReservationInput)
	date := c.Locals("reservationDate").(time.Time)

	// resolve selected codes against the venue's effective catalog
	var selected []model.Discount
	if len(input.Discounts) > 0 {
		defs, err := DiscountCatalog.Catalog(venue)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		byCode := map[string]model.Discount{}
		for _, def := range defs {
			if def.Active {
				byCode[def.Code] = def
			}
		}
		for _, code := range input.Discounts {
			def, ok := byCode[code]
			if !ok {
				return utils.ErrorResponse(c, 400, constants.ERROR_DISCOUNT_NOT_FOUND, errors.New(code))
			}
			selected = append(selected, def)
		}
	}

	reservation := model.Reservation{
		PublicCode: helper.GenerateReservationCode(),
		VenueId:    venue.ID,
		GuestName:  input.GuestName,
		GuestPhone: input.GuestPhone,
		GuestEmail: input.GuestEmail,
		Date:       utils.CustomDate{Time: date},
		TimeSlot:   input.TimeSlot,
		Men:        input.Men,
		Women:      input.Women,
		Note:       input.Note,
		Status:     constants.RESERVATION_PENDING,
	}

	var soldOutCode string
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		store := DiscountStore.WithTx(tx)
		for _, def := range selected {
			if err := store.Claim(venue.ID, def, date); err != nil {
				if errors.Is(err, discount.ErrSoldOut) {
					soldOutCode = def.Code
				}
				return err
			}
			rd := model.ReservationDiscount{
				ReservationId: reservation.ID,
				Code:          def.Code,
				Title:         def.Title,
			}
			if err := tx.Create(&rd).Error; err != nil {
				return err
			}
			reservation.Discounts = append(reservation.Discounts, rd)
		}
		return nil
	})
	if err != nil {
		if soldOutCode != "" {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_DISCOUNT_SOLD_OUT, errors.New(soldOutCode))
		}
		if discount.SchemaMissing(err) {
			return utils.ErrorResponse(c, 500, constants.ERROR_MIGRATIONS_PENDING, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create reservation", err)
	}

	waLink := helper.BuildWhatsAppLink(venue, reservation)

	if reservation.GuestEmail != "" {
		qrBase64 := ""
		if qrBytes, err := utils.GenerateQRCode(reservation.PublicCode, 400); err != nil {
			log.Printf("Failed to build QR for %s: %v", reservation.PublicCode, err)
		} else {
			qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
		}

		offers := make([]string, 0, len(reservation.Discounts))
		for _, d := range reservation.Discounts {
			offers = append(offers, d.Title)
		}
		utils.SendReservationConfirmationEmail(reservation.GuestEmail, utils.ReservationConfirmationData{
			ReservationCode: reservation.PublicCode,
			VenueName:       venue.Name,
			Date:            reservation.Date.String(),
			TimeSlot:        reservation.TimeSlot,
			Guests:          reservation.Men + reservation.Women,
			Discounts:       offers,
			QRCodeDataURL:   qrBase64,
			DetailLink:      helper.ReservationDetailLink(venue.Slug, reservation.PublicCode),
		})
	}

	helper.SendManagerNotification(venue.ManagerEmail, venue, reservation)

	PublishReservationEvent(venue.ID, reservation)

	return utils.SuccessResponse(c, 201, fiber.Map{
		"reservation":  reservation,
		"whatsappLink": waLink,
	})
}

func GetReservationByCode(c *fiber.Ctx) error {
	var reservation model.Reservation
	if err := database.DB.
		Preload("Venue").
		Preload("Discounts").
		Where("public_code = ?", c.Params("code")).
		First(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_RESERVATION_MISSING, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func GetReservations(c *fiber.Ctx) error {
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

	filter := new(model.ReservationFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Reservation{}).Where("venue_id = ?", venue.ID)
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Date != nil {
		db = db.Where("date = ?", *filter.Date)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var reservations []model.Reservation
	db.Preload("Discounts").Order("created_at desc").Find(&reservations)

	response := &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateReservationStatus(c *fiber.Ctx) error {
	claim, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	var reservation model.Reservation
	if err := database.DB.
		Preload("Venue").
		Where("public_code = ?", c.Params("code")).
		First(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_RESERVATION_MISSING, err)
	}
	if !helper.CanManageVenue(claim, isAdmin, reservation.VenueId) {
		return utils.ErrorResponse(c, 403, "Not allowed for this venue", nil)
	}

	input := c.Locals("statusInput").(model.UpdateReservationStatusInput)

	reservation.Status = input.Status
	if input.Status == constants.RESERVATION_CONFIRMED && reservation.ConfirmedAt == nil {
		now := time.Now()
		reservation.ConfirmedAt = &now
	}

	if err := database.DB.Save(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update reservation", err)
	}

	PublishReservationEvent(reservation.VenueId, reservation)

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}
