package formatting

import (
	"fmt"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
)

// FormatDate formats only the date.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateWithWeekday formats the date with its weekday name.
func FormatDateWithWeekday(t time.Time) string {
	return t.Format("Monday, 02.01.2006")
}

// FormatTimeRange formats a slot window, e.g. "09:00-10:00".
func FormatTimeRange(start, end model.TimeOfDay) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// WeekdayName returns the full weekday name for 0=Sunday..6=Saturday.
func WeekdayName(weekday int) string {
	names := []string{
		"Sunday",
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "Unknown"
}

// WeekdayShortName returns the two-letter weekday abbreviation.
func WeekdayShortName(weekday int) string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}
