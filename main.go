package main

import (
	"log"

	"bassik_backend/config"
	"bassik_backend/database"
	"bassik_backend/discount"
	"bassik_backend/handler"
	"bassik_backend/helper"
	"bassik_backend/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "bassik",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigWithDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	handler.SetupDiscounts(
		discount.DefaultCatalog(database.DB),
		discount.NewGormStore(database.DB),
	)

	helper.StartReservationSweeper()
	defer helper.StopReservationSweeper()
	helper.StartOfferStatusScheduler()
	defer helper.StopOfferStatusScheduler()

	router.SetupRoutes(app)

	port := config.ConfigWithDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
