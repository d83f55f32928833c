package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOrToday(t *testing.T) {
	parsed := ParseDateOrToday("2026-03-14")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 14, parsed.Day())

	today := time.Now()
	for _, raw := range []string{"", "14-03-2026", "2026/03/14", "not-a-date", "2026-13-99"} {
		parsed := ParseDateOrToday(raw)
		assert.Equal(t, today.Day(), parsed.Day(), "input %q should fall back to today", raw)
		assert.Equal(t, today.Month(), parsed.Month())
	}
}

func TestValidTimeSlot(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:00", "23:59"}
	for _, slot := range valid {
		assert.True(t, ValidTimeSlot(slot), slot)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:3", "midnight"}
	for _, slot := range invalid {
		assert.False(t, ValidTimeSlot(slot), slot)
	}
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "x", *StringPtr("x"))
}
