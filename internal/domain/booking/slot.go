package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	errBadDate  = errors.New("date must be YYYY-MM-DD")
	errBadClock = errors.New("time must be HH:MM")
)

// Date is a calendar day without a zone. Weekdays are derived at local midnight.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, errBadDate
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	hour   int
	minute int
}

func NewClock(hour, minute int) Clock { return Clock{hour: hour, minute: minute} }

// ParseClock accepts "H:MM" or "HH:MM" with hour 0-23 and minute 0-59.
// Only ASCII digits are allowed around the colon.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return Clock{}, errBadClock
	}
	if !allDigits(hh) || !allDigits(mm) {
		return Clock{}, errBadClock
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return Clock{}, errBadClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return Clock{}, errBadClock
	}
	return Clock{hour: h, minute: m}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int { return c.hour*60 + c.minute }

// String renders the canonical zero-padded form stored in the database.
func (c Clock) String() string {
	return twoDigits(c.hour) + ":" + twoDigits(c.minute)
}

func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Slot is a (date, time) pair. At most one booking may hold a slot.
type Slot struct {
	Date Date
	Time Clock
}

func (s Slot) Matches(b Booking) bool {
	return b.Date == s.Date.String() && b.Time == s.Time.String()
}
