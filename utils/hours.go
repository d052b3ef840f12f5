package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// HoursUnavailable is shown when a business has no stored schedule.
const HoursUnavailable = "No disponible"

// FormatHours builds the display schedule ("8:00 AM - 6:30 PM") from the two
// raw 24-hour HH:MM values. Either value missing yields HoursUnavailable.
func FormatHours(opensAt, closesAt string) string {
	if opensAt == "" || closesAt == "" {
		return HoursUnavailable
	}
	return formatTo12Hour(opensAt) + " - " + formatTo12Hour(closesAt)
}

// ValidHoursPair reports whether both values are HH:MM and opening is
// strictly before closing.
func ValidHoursPair(opensAt, closesAt string) bool {
	if !validClock(opensAt) || !validClock(closesAt) {
		return false
	}
	return opensAt < closesAt
}

func validClock(v string) bool {
	parts := strings.Split(v, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

func formatTo12Hour(v string) string {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return v
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return v
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%s %s", hour, parts[1], ampm)
}
