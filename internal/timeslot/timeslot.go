// internal/timeslot/timeslot.go
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid calendar date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time slot, expected HH:mm")
)

// SlotDuration is the fixed length of every bookable slot.
const SlotDuration = time.Hour

// DateLayout is the wire format for calendar dates on the API boundary.
const DateLayout = "2006-01-02"

// ParseDate builds a UTC-midnight date from the literal year/month/day
// components of a "YYYY-MM-DD" string. No locale-sensitive parsing is
// involved, so the calendar day never shifts with the server's timezone.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, ErrInvalidDate
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, ErrInvalidDate
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 30 -> Mar 2); reject those.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// FormatDate renders a date back to "YYYY-MM-DD" in UTC.
func FormatDate(d time.Time) string {
	return d.UTC().Format(DateLayout)
}

// DayOfWeek returns the UTC day of week, 0=Sunday .. 6=Saturday.
func DayOfWeek(d time.Time) int {
	return int(d.UTC().Weekday())
}

// ParseClock validates and splits an "HH:mm" slot string.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrInvalidTime
	}
	hour, err = strconv.Atoi(s[:2])
	if err != nil {
		return 0, 0, ErrInvalidTime
	}
	minute, err = strconv.Atoi(s[3:])
	if err != nil {
		return 0, 0, ErrInvalidTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTime
	}
	return hour, minute, nil
}

// AddHour returns the slot end time: start plus 60 minutes, with the hour
// wrapping past midnight ("23:30" -> "00:30"). Minutes are unchanged.
func AddHour(s string) (string, error) {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", (hour+1)%24, minute), nil
}

// Clock resolves "has this slot already elapsed" against a fixed reference
// offset from UTC. The offset is configuration, not the server's locale:
// the reference deployment runs everything against UTC-3 regardless of
// where the process is hosted.
type Clock struct {
	OffsetHours int
	Now         func() time.Time
}

func NewClock(offsetHours int) Clock {
	return Clock{OffsetHours: offsetHours, Now: time.Now}
}

// UTCNow is the injectable wall clock in UTC, for timestamps that must not
// carry the reference offset.
func (c Clock) UTCNow() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().UTC()
}

// localNow is the current wall time shifted into the reference offset.
func (c Clock) localNow() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().UTC().Add(time.Duration(c.OffsetHours) * time.Hour)
}

// IsToday reports whether the UTC-midnight date matches the current
// calendar day at the reference offset.
func (c Clock) IsToday(date time.Time) bool {
	ln := c.localNow()
	y1, m1, d1 := date.UTC().Date()
	y2, m2, d2 := ln.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SlotInPast reports whether a slot on the given date has fully elapsed.
// A slot is past once its end (start + 60min) is at or before local now.
// Dates other than today are never past, including yesterday: the caller
// only filters the current day's listing.
func (c Clock) SlotInPast(date time.Time, slot string) bool {
	if !c.IsToday(date) {
		return false
	}
	hour, minute, err := ParseClock(slot)
	if err != nil {
		return false
	}
	ln := c.localNow()
	slotEnd := time.Date(ln.Year(), ln.Month(), ln.Day(), hour, minute, 0, 0, time.UTC).
		Add(SlotDuration)
	nowFlat := time.Date(ln.Year(), ln.Month(), ln.Day(), ln.Hour(), ln.Minute(), ln.Second(), 0, time.UTC)
	return !slotEnd.After(nowFlat)
}
