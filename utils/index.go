package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}

var (
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeSlotRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseDateOrToday accepts "YYYY-MM-DD" and falls back to today on anything
// else, so the booking UI never hard-fails on a malformed query param.
func ParseDateOrToday(raw string) time.Time {
	if dateRe.MatchString(raw) {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidTimeSlot reports whether raw is a usable "HH:MM" clock value.
// Malformed slots are ignored by callers rather than rejected.
func ValidTimeSlot(raw string) bool {
	if !timeSlotRe.MatchString(raw) {
		return false
	}
	parts := strings.SplitN(raw, ":", 2)
	return parts[0] <= "23" && parts[1] <= "59"
}
