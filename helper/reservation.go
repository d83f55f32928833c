package helper

import (
	"log"
	"os"
	"strings"
	"time"

	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/model"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var reservationSweeper *cron.Cron

// GenerateReservationCode builds the short public code printed on the QR.
func GenerateReservationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BSK-" + raw[:8]
}

// ReservationDetailLink points at the public lookup page for a booking.
func ReservationDetailLink(venueSlug, code string) string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "https://bassik.in"
	}
	return base + "/" + venueSlug + "/reservation/" + code
}

func StartReservationSweeper() {
	reservationSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// every 5 minutes is plenty, holds are measured in hours
	_, err := reservationSweeper.AddFunc("*/5 * * * *", expireStaleReservations)
	if err != nil {
		log.Printf("Failed to start reservation sweeper: %v", err)
		return
	}

	reservationSweeper.Start()
	log.Println("Reservation sweeper started (every 5 minutes)")
}

// expireStaleReservations flips pending reservations whose date has passed.
// Claimed discount slots are not returned; only an admin reset does that.
func expireStaleReservations() {
	today := time.Now().Format("2006-01-02")
	result := database.DB.Model(&model.Reservation{}).
		Where("status = ? AND date < ?", constants.RESERVATION_PENDING, today).
		Update("status", constants.RESERVATION_EXPIRED)

	if result.Error != nil {
		log.Printf("Failed to expire reservations: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Expired %d stale pending reservations", result.RowsAffected)
	}
}

func StopReservationSweeper() {
	if reservationSweeper != nil {
		reservationSweeper.Stop()
	}
}
