package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReservationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateReservationCode()
		assert.True(t, strings.HasPrefix(code, "BSK-"), code)
		assert.Len(t, code, 12)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestReservationDetailLink(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "")
	assert.Equal(t, "https://bassik.in/kiik69/reservation/BSK-AB12CD34",
		ReservationDetailLink("kiik69", "BSK-AB12CD34"))

	t.Setenv("PUBLIC_BASE_URL", "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000/alehouse/reservation/BSK-XYZ",
		ReservationDetailLink("alehouse", "BSK-XYZ"))
}
