package entities

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the textual form of calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as a UTC midnight
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// NewDate builds a date from its parts
func NewDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
