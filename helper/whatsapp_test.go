package helper

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhatsAppLink(t *testing.T) {
	venue := model.Venue{
		Name:     "KIIK 69",
		Slug:     "kiik69",
		WhatsApp: "+91 98765 43210",
	}
	res := model.Reservation{
		PublicCode: "BSK-1A2B3C4D",
		GuestName:  "Ravi",
		Date:       utils.CustomDate{Time: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		TimeSlot:   "20:00",
		Men:        2,
		Women:      2,
		Discounts: []model.ReservationDiscount{
			{Code: "kiik-10-percent", Title: "10% off on total bill"},
		},
	}

	link := BuildWhatsAppLink(venue, res)

	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	raw := strings.TrimPrefix(link, "https://wa.me/919876543210?text=")
	text, err := url.QueryUnescape(raw)
	require.NoError(t, err)
	assert.Contains(t, text, "KIIK 69")
	assert.Contains(t, text, "BSK-1A2B3C4D")
	assert.Contains(t, text, "2025-01-10")
	assert.Contains(t, text, "10% off on total bill")
	assert.NotContains(t, text, "Note:")
}
