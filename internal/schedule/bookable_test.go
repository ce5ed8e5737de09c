package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) (*string, *string) {
	return &start, &end
}

func TestBookableHalfOpenBoundary(t *testing.T) {
	start, end := window("09:00", "17:00")

	tests := []struct {
		clock string
		want  error
	}{
		{"08:59", ErrOutsideHours},
		{"09:00", nil},
		{"12:30", nil},
		{"16:59", nil},
		{"17:00", ErrOutsideHours},
		{"23:59", ErrOutsideHours},
		{"00:00", ErrOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			err := Bookable(start, end, tt.clock)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestBookableUnavailableDay(t *testing.T) {
	assert.ErrorIs(t, Bookable(nil, nil, "10:00"), ErrDayOff)

	empty := ""
	assert.ErrorIs(t, Bookable(&empty, &empty, "10:00"), ErrDayOff)

	start := "09:00"
	assert.ErrorIs(t, Bookable(&start, nil, "10:00"), ErrDayOff)
}

func TestBookableRejectsMalformedClock(t *testing.T) {
	start, end := window("09:00", "17:00")

	for _, clock := range []string{"9:00", "09:0", "24:00", "09:60", "0900", "", "abcde"} {
		assert.ErrorIs(t, Bookable(start, end, clock), ErrBadClock, clock)
	}
}

func TestValidWindow(t *testing.T) {
	assert.NoError(t, ValidWindow("09:00", "17:00"))
	assert.ErrorIs(t, ValidWindow("09:00", "09:00"), ErrBadWindow)
	assert.ErrorIs(t, ValidWindow("17:00", "09:00"), ErrBadWindow)
	assert.ErrorIs(t, ValidWindow("9:00", "17:00"), ErrBadClock)
	assert.ErrorIs(t, ValidWindow("09:00", "25:00"), ErrBadClock)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "Monday", DayName(d))
	assert.Equal(t, time.August, d.Month())

	_, err = ParseDate("31-08-2026")
	assert.ErrorIs(t, err, ErrBadDate)

	_, err = ParseDate("2026-02-30")
	assert.ErrorIs(t, err, ErrBadDate)
}
