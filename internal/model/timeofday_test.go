package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		tests := []struct {
			input string
			want  TimeOfDay
		}{
			{"09:00", TimeOfDay{Hour: 9, Minute: 0}},
			{"9:05", TimeOfDay{Hour: 9, Minute: 5}},
			{"00:00", TimeOfDay{Hour: 0, Minute: 0}},
			{"23:59", TimeOfDay{Hour: 23, Minute: 59}},
			{" 10:30 ", TimeOfDay{Hour: 10, Minute: 30}},
		}

		for _, tt := range tests {
			got, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		inputs := []string{"", "0900", "24:00", "12:60", "-1:00", "ab:cd", "12", "12:"}

		for _, input := range inputs {
			_, err := ParseTimeOfDay(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestTimeOfDayOrdering(t *testing.T) {
	nine := TimeOfDay{Hour: 9, Minute: 0}
	nineThirty := TimeOfDay{Hour: 9, Minute: 30}
	ten := TimeOfDay{Hour: 10, Minute: 0}

	assert.True(t, nine.Before(nineThirty))
	assert.True(t, nineThirty.Before(ten))
	assert.False(t, ten.Before(nine))
	assert.False(t, nine.Before(nine), "a time is not before itself")

	assert.True(t, nine.Equal(TimeOfDay{Hour: 9, Minute: 0}))
	assert.False(t, nine.Equal(nineThirty))
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59", TimeOfDay{Hour: 23, Minute: 59}.String())
	assert.Equal(t, "00:00", TimeOfDay{}.String())
}

func TestTimeOfDayMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, TimeOfDay{}.MinutesSinceMidnight())
	assert.Equal(t, 570, TimeOfDay{Hour: 9, Minute: 30}.MinutesSinceMidnight())
	assert.Equal(t, 1439, TimeOfDay{Hour: 23, Minute: 59}.MinutesSinceMidnight())
}
