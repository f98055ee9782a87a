package appointment

import (
	"fmt"
	"time"

	"github.com/estilo26/booking-api/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ParseDate validates a calendar date and returns it normalized.
func ParseDate(raw string) (string, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format(DateLayout), nil
}

// ParseTime accepts "15:04" or "15:04:05" and always returns the
// seconds-precision form, so slot comparisons never miss on format.
func ParseTime(raw string) (string, error) {
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", httperr.ErrBusiness("invalid_time")
}

// AddMinutes advances a normalized clock time, wrapping past midnight the
// same way LocalTime#plusMinutes does.
func AddMinutes(clock string, minutes int) string {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return clock
	}
	total := (t.Hour()*60 + t.Minute() + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/60, total%60, t.Second())
}
