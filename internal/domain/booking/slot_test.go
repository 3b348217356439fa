package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2030-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2030-01-07", d.String())
	assert.Equal(t, time.Monday, d.Weekday())
	assert.False(t, d.IsWeekend())

	sat, err := ParseDate("2030-01-05")
	require.NoError(t, err)
	assert.True(t, sat.IsWeekend())

	for _, bad := range []string{"", "2030-1-7", "07/01/2030", "2030-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseClock(t *testing.T) {
	cases := map[string]string{
		"09:00": "09:00",
		"9:00":  "09:00",
		"17:00": "17:00",
		"0:05":  "00:05",
		"23:59": "23:59",
	}
	for in, want := range cases {
		c, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c.String())
	}

	for _, bad := range []string{"", "9", "24:00", "12:60", "12:5", "ab:cd", "123:00", "-1:00",
		"10:+5", "-0:30", "+9:+0", "+9:00", "9:-1", " 9 :00", "١٠:٠٠",
	} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 9*60+30, NewClock(9, 30).Minutes())
	assert.Equal(t, "07:05", NewClock(7, 5).String())
}

func TestSlotMatches(t *testing.T) {
	d, _ := ParseDate("2030-01-07")
	c, _ := ParseClock("9:30")
	s := Slot{Date: d, Time: c}

	assert.True(t, s.Matches(Booking{Date: "2030-01-07", Time: "09:30"}))
	assert.False(t, s.Matches(Booking{Date: "2030-01-07", Time: "10:30"}))
	assert.False(t, s.Matches(Booking{Date: "2030-01-08", Time: "09:30"}))
}
