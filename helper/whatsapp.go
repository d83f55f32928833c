package helper

import (
	"bytes"
	"net/url"
	"strings"
	"text/template"

	"bassik_backend/model"
)

var waMessageTmpl = template.Must(template.New("wa").Parse(
	`Hi {{.VenueName}}! Table reservation {{.Code}}
Name: {{.GuestName}}
Date: {{.Date}} at {{.TimeSlot}}
Guests: {{.Men}} men, {{.Women}} women{{if .Offers}}
Offers: {{.Offers}}{{end}}{{if .Note}}
Note: {{.Note}}{{end}}`))

type waMessageData struct {
	VenueName string
	Code      string
	GuestName string
	Date      string
	TimeSlot  string
	Men       int
	Women     int
	Offers    string
	Note      string
}

// BuildWhatsAppLink renders the booking summary into a prefilled wa.me link
// pointed at the venue's WhatsApp number.
func BuildWhatsAppLink(venue model.Venue, res model.Reservation) string {
	offers := make([]string, 0, len(res.Discounts))
	for _, d := range res.Discounts {
		if d.Title != "" {
			offers = append(offers, d.Title)
		} else {
			offers = append(offers, d.Code)
		}
	}

	var buf bytes.Buffer
	_ = waMessageTmpl.Execute(&buf, waMessageData{
		VenueName: venue.Name,
		Code:      res.PublicCode,
		GuestName: res.GuestName,
		Date:      res.Date.String(),
		TimeSlot:  res.TimeSlot,
		Men:       res.Men,
		Women:     res.Women,
		Offers:    strings.Join(offers, ", "),
		Note:      res.Note,
	})

	number := strings.TrimLeft(strings.ReplaceAll(venue.WhatsApp, " ", ""), "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(buf.String())
}
