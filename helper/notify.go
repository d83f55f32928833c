package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"bassik_backend/model"

	"github.com/jordan-wright/email"
)

// SendManagerNotification mails the venue manager about a fresh booking.
// Plain-text, fire and forget.
func SendManagerNotification(to string, venue model.Venue, res model.Reservation) {
	if to == "" {
		return
	}

	go func() {
		e := email.NewEmail()
		e.From = os.Getenv("SMTP_FROM")
		e.To = []string{to}
		e.Subject = fmt.Sprintf("New reservation at %s: %s", venue.Name, res.PublicCode)
		e.Text = []byte(fmt.Sprintf(
			"Guest: %s (%s)\nDate: %s at %s\nGuests: %d men, %d women\nStatus: %s\n",
			res.GuestName, res.GuestPhone, res.Date.String(), res.TimeSlot,
			res.Men, res.Women, res.Status,
		))

		addr := os.Getenv("SMTP_HOST") + ":" + os.Getenv("SMTP_PORT")
		auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
		if err := e.Send(addr, auth); err != nil {
			log.Printf("Failed to notify manager: %v", err)
		}
	}()
}
