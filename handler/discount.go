package handler

import (
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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// Injected from main so tests can swap in fakes.
var (
	DiscountCatalog discount.CatalogSource
	DiscountStore   discount.Store
)

func SetupDiscounts(catalog discount.CatalogSource, store discount.Store) {
	DiscountCatalog = catalog
	DiscountStore = store
}

// resolveVenueLenient finds the venue for read paths. When the venue table is
// unreachable but the brand has a built-in discount list, it fabricates a
// bare venue so the promotional reads can still be served.
func resolveVenueLenient(slug string) (model.Venue, bool) {
	var venue model.Venue
	err := database.DB.Where("slug = ?", slug).First(&venue).Error
	if err == nil {
		return venue, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) && discount.KnownBrand(slug) {
		log.Printf("Venue lookup failed for %s, serving static discounts: %v", slug, err)
		return model.Venue{Slug: slug}, true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && discount.KnownBrand(slug) {
		return model.Venue{Slug: slug}, true
	}
	return model.Venue{}, false
}

func resolveVenue(c *fiber.Ctx) (model.Venue, error) {
	var venue model.Venue
	err := database.DB.Where("slug = ?", c.Params("slug")).First(&venue).Error
	return venue, err
}

// GetDiscountsAvailability returns raw counter state per discount for a date.
func GetDiscountsAvailability(c *fiber.Ctx) error {
	venue, ok := resolveVenueLenient(c.Params("slug"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, nil)
	}

	date := utils.ParseDateOrToday(c.Query("date"))

	defs, err := DiscountCatalog.Catalog(venue)
	if err != nil {
		log.Printf("Catalog error for %s: %v", venue.Slug, err)
		defs = model.Discounts{}
	}

	usage, err := DiscountStore.Usage(venue.ID, date)
	if err != nil {
		log.Printf("Usage counters unreachable for %s, assuming zero usage: %v", venue.Slug, err)
	}

	rows := []fiber.Map{}
	for _, a := range discount.Evaluate(defs, usage, "") {
		rows = append(rows, fiber.Map{
			"discountId": a.Code,
			"used":       a.Used,
			"max":        a.Max,
			"available":  a.Available,
		})
	}

	return c.JSON(fiber.Map{
		"date":         date.Format(constants.DateLayout),
		"availability": rows,
	})
}

// GetDiscountsAvailable is the consumer-facing shape used by the booking
// form: window-filtered, with slots left and labels.
func GetDiscountsAvailable(c *fiber.Ctx) error {
	venue, ok := resolveVenueLenient(c.Params("slug"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_VENUE_NOT_FOUND, nil)
	}

	date := utils.ParseDateOrToday(c.Query("date"))
	timeSlot := c.Query("timeSlot")
	if !utils.ValidTimeSlot(timeSlot) {
		timeSlot = "" // malformed slots are ignored, not rejected
	}

	defs, err := DiscountCatalog.Catalog(venue)
	if err != nil {
		log.Printf("Catalog error for %s: %v", venue.Slug, err)
		defs = model.Discounts{}
	}

	usage, err := DiscountStore.Usage(venue.ID, date)
	if err != nil {
		log.Printf("Usage counters unreachable for %s, assuming zero usage: %v", venue.Slug, err)
	}

	rows := []fiber.Map{}
	for _, a := range discount.Evaluate(defs, usage, timeSlot) {
		if !a.InWindow {
			continue
		}
		rows = append(rows, fiber.Map{
			"id":              a.Code,
			"title":           a.Title,
			"description":     a.Description,
			"slotsLeft":       a.SlotsLeft(),
			"soldOut":         !a.Available,
			"timeWindowLabel": a.WindowLabel,
		})
	}

	return c.JSON(fiber.Map{"discounts": rows})
}

func findDefinition(venue model.Venue, code string) (*model.Discount, error) {
	defs, err := DiscountCatalog.Catalog(venue)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if def.Code == code {
			return &def, nil
		}
	}
	return nil, nil
}

// SetDiscountLimits upserts the daily/lifetime caps of one discount.
func SetDiscountLimits(c *fiber.Ctx) error {
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

	input := c.Locals("limitsInput").(model.DiscountLimitsInput)

	def, err := findDefinition(venue, input.DiscountId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if def == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_DISCOUNT_NOT_FOUND, nil)
	}

	stored, err := DiscountStore.SetCaps(venue.ID, *def, input.MaxPerDay, input.MaxClaims)
	if err != nil {
		if errors.Is(err, discount.ErrCapBelowUsage) {
			return utils.ErrorResponse(c, 400, "maxPerDay is below today's recorded usage", err)
		}
		if discount.SchemaMissing(err) {
			return utils.ErrorResponse(c, 500, constants.ERROR_MIGRATIONS_PENDING, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stored)
}

// ResetDiscountUsage zeroes counters: one discount or the whole venue, a
// dated counter or (resetClaims) the lifetime one.
func ResetDiscountUsage(c *fiber.Ctx) error {
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

	input := c.Locals("resetInput").(model.DiscountResetInput)

	code := ""
	if input.DiscountId != nil {
		def, err := findDefinition(venue, *input.DiscountId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if def == nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_DISCOUNT_NOT_FOUND, nil)
		}
		code = def.Code
	}

	if input.ResetClaims {
		err = DiscountStore.ResetLifetime(venue.ID, code)
	} else {
		date := time.Now()
		if input.Date != nil {
			date, _ = time.Parse(constants.DateLayout, *input.Date)
		}
		err = DiscountStore.ResetDaily(venue.ID, code, date)
	}
	if err != nil {
		if discount.SchemaMissing(err) {
			return utils.ErrorResponse(c, 500, constants.ERROR_MIGRATIONS_PENDING, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Usage reset"})
}

// GetDiscounts lists the effective catalog for the admin dashboard,
// including static fallback entries a venue has not overridden yet.
func GetDiscounts(c *fiber.Ctx) error {
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

	defs, err := DiscountCatalog.Catalog(venue)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, defs)
}

func CreateDiscount(c *fiber.Ctx) error {
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

	input := c.Locals("createInput").(model.CreateDiscountInput)

	var existing int64
	database.DB.Model(&model.Discount{}).
		Where("venue_id = ? AND code = ?", venue.ID, input.Code).
		Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, 409, "Discount code already exists for this venue", nil)
	}

	var newDiscount model.Discount
	copier.Copy(&newDiscount, &input)
	newDiscount.VenueId = venue.ID
	newDiscount.Active = true

	if err := database.DB.Create(&newDiscount).Error; err != nil {
		if discount.SchemaMissing(err) {
			return utils.ErrorResponse(c, 500, constants.ERROR_MIGRATIONS_PENDING, err)
		}
		return utils.ErrorResponse(c, 500, "Could not create discount", err)
	}

	return utils.SuccessResponse(c, 201, newDiscount)
}

func UpdateDiscount(c *fiber.Ctx) error {
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

	var stored model.Discount
	if err := database.DB.
		Where("venue_id = ? AND code = ?", venue.ID, c.Params("code")).
		First(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_DISCOUNT_NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateDiscountInput)

	if input.Title != nil {
		stored.Title = *input.Title
	}
	if input.Description != nil {
		stored.Description = *input.Description
	}
	if input.StartTime != nil {
		stored.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		stored.EndTime = input.EndTime
	}
	if input.Active != nil {
		stored.Active = *input.Active
	}

	if err := database.DB.Save(&stored).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update discount", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stored)
}
