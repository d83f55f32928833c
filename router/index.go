package router

import (
	"bassik_backend/handler"
	"bassik_backend/middleware"
	"bassik_backend/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	// Public
	venues := v1.Group("/venues")
	venues.Get("/", handler.GetVenues)
	venues.Get("/:slug", handler.GetVenueBySlug)
	venues.Get("/:slug/offers", handler.GetOffers)
	venues.Get("/:slug/discounts-availability", handler.GetDiscountsAvailability)
	venues.Get("/:slug/discounts-available", handler.GetDiscountsAvailable)
	venues.Post("/:slug/reservations", validate.CreateReservation(), handler.CreateReservation)

	v1.Get("/reservations/:code", handler.GetReservationByCode)

	// Admin
	admin := v1.Group("/admin", logger.New(), middleware.Protected())

	admin.Get("/accounts", handler.GetAccounts)
	admin.Get("/me", handler.Me)
	admin.Post("/accounts", validate.CreateAccount(), handler.CreateAccount)
	admin.Post("/accounts/change-password", validate.AdminChangePassword(), handler.AdminChangePassword)

	admin.Post("/venues", validate.CreateVenue(), handler.CreateVenue)
	admin.Put("/venues/:slug", validate.UpdateVenue(), handler.EditVenue)
	admin.Delete("/venues", validate.Delete(), handler.DeleteVenue)

	admin.Post("/venues/:slug/photos", validate.CreateVenuePhoto(), handler.AddVenuePhoto)
	admin.Delete("/venues/:slug/photos", validate.Delete(), handler.DeleteVenuePhotos)
	admin.Post("/venues/:slug/menus", validate.CreateVenueMenu(), handler.AddVenueMenu)
	admin.Delete("/venues/:slug/menus", validate.Delete(), handler.DeleteVenueMenus)

	admin.Post("/venues/:slug/offers", validate.CreateOffer(), handler.CreateOffer)
	admin.Put("/venues/:slug/offers/:id", validate.GetById("id"), validate.UpdateOffer(), handler.UpdateOffer)
	admin.Delete("/venues/:slug/offers", validate.Delete(), handler.DeleteOffers)

	admin.Get("/venues/:slug/discounts", handler.GetDiscounts)
	admin.Post("/venues/:slug/discounts", validate.CreateDiscount(), handler.CreateDiscount)
	admin.Put("/venues/:slug/discounts/:code", validate.UpdateDiscount(), handler.UpdateDiscount)

	admin.Post("/venues/:slug/discount-limits", validate.DiscountLimits(), handler.SetDiscountLimits)
	admin.Post("/venues/:slug/discount-limits/reset", validate.DiscountReset(), handler.ResetDiscountUsage)

	admin.Get("/venues/:slug/reservations", handler.GetReservations)
	admin.Patch("/reservations/:code/status", validate.UpdateReservationStatus(), handler.UpdateReservationStatus)

	admin.Get("/venues/:slug/reservations/feed", websocket.New(handler.ReservationFeed))
}
