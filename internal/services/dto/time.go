package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ParseTimeOfDay converts an "HH:MM" wire value into a datatypes.Time.
func ParseTimeOfDay(s string) (datatypes.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return datatypes.Time(0), fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), 0, 0), nil
}

// FormatTimeOfDay renders a datatypes.Time back as "HH:MM".
func FormatTimeOfDay(t datatypes.Time) string {
	d := time.Duration(t)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
