package helper

import (
	"log"
	"time"

	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/model"

	"github.com/go-co-op/gocron/v2"
)

var offerScheduler gocron.Scheduler

// AutoExpireOffers flips ACTIVE offers past their validUntil date to EXPIRED.
func AutoExpireOffers() {
	log.Println("[CRON] AutoExpireOffers triggered")

	today := time.Now().Format("2006-01-02")
	result := database.DB.Model(&model.Offer{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", constants.OFFER_ACTIVE, today).
		Update("status", constants.OFFER_EXPIRED)

	if result.Error != nil {
		log.Printf("Failed to expire offers: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d offers as expired", result.RowsAffected)
	}
}

func StartOfferStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("IST", 5*3600+1800)),
	)
	if err != nil {
		log.Fatal(err)
	}

	offerScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoExpireOffers),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Offer status scheduler started (daily at 00:05)")
}

func StopOfferStatusScheduler() {
	if offerScheduler != nil {
		_ = offerScheduler.Shutdown()
	}
}
