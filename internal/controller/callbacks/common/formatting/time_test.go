package formatting

import (
	"testing"
	"time"

	"github.com/Somuah2708/Akora-sub008/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimeRange(t *testing.T) {
	start := model.TimeOfDay{Hour: 9, Minute: 0}
	end := model.TimeOfDay{Hour: 10, Minute: 30}

	assert.Equal(t, "09:00-10:30", FormatTimeRange(start, end))
}

func TestFormatDateWithWeekday(t *testing.T) {
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday, 08.09.2026", FormatDateWithWeekday(date))
	assert.Equal(t, "08.09.2026", FormatDate(date))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(0))
	assert.Equal(t, "Saturday", WeekdayName(6))
	assert.Equal(t, "Unknown", WeekdayName(7))
	assert.Equal(t, "Unknown", WeekdayName(-1))

	assert.Equal(t, "Mo", WeekdayShortName(1))
	assert.Equal(t, "?", WeekdayShortName(9))
}
