package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReservationConfirmationData feeds the confirmation email template.
type ReservationConfirmationData struct {
	ReservationCode string
	VenueName       string
	Date            string
	TimeSlot        string
	Guests          int
	Discounts       []string
	QRCodeDataURL   string
	DetailLink      string
}

// SendReservationConfirmationEmail sends the booking confirmation (async).
func SendReservationConfirmationEmail(to string, data ReservationConfirmationData) {
	go func() {
		tmplPath := "templates/reservation_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your table is booked: "+data.ReservationCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send email: %v", err)
		}
	}()
}
