package timeutil

import (
	"os"
	"time"
)

// Location is the business timezone used for all billing-cycle math.
// Configured via BUSINESS_TZ, defaults to UTC so cycle boundaries are
// unambiguous across deployments.
var Location *time.Location

func init() {
	tz := os.Getenv("BUSINESS_TZ")
	if tz == "" {
		Location = time.UTC
		return
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		Location = time.UTC
		return
	}
	Location = loc
}

// Now returns the current time in the business timezone
func Now() time.Time {
	return time.Now().In(Location)
}

// StartOfDay returns the start of day (00:00:00) in the business timezone
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location)
}

// EndOfDay returns the end of day (23:59:59.999999999) in the business timezone
func EndOfDay(t time.Time) time.Time {
	lt := t.In(Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 999999999, Location)
}

// ParseDate parses a YYYY-MM-DD string in the business timezone
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006"
)
