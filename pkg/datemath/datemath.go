// Package datemath converts between local wall-clock time in an IANA zone
// and absolute UTC instants.
package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DateFormatISO    = "2006-01-02"
	TimeFormatShort  = "15:04"
	TimeFormatLong   = "15:04:05"
	DateTimeLabel    = "2006-01-02 15:04"
	dayStartWallTime = "00:00:00"
	dayEndWallTime   = "23:59:59"
)

var (
	ErrInvalidTimeZone = errors.New("invalid time zone")
	ErrInvalidDate     = errors.New("invalid local date")
	ErrInvalidTime     = errors.New("invalid local time")
)

// DayBounds holds the UTC instants of a local day's first and last second.
type DayBounds struct {
	StartUTC time.Time
	EndUTC   time.Time
}

// wallClock is a set of local calendar fields with no zone attached.
type wallClock struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
}

func (w wallClock) asUTC() time.Time {
	return time.Date(w.year, w.month, w.day, w.hour, w.minute, w.second, 0, time.UTC)
}

func wallClockOf(t time.Time, loc *time.Location) wallClock {
	z := t.In(loc)
	return wallClock{z.Year(), z.Month(), z.Day(), z.Hour(), z.Minute(), z.Second()}
}

// IsValidTimeZone reports whether zone resolves to a known IANA zone.
func IsValidTimeZone(zone string) bool {
	_, err := loadZone(zone)
	return err == nil
}

// loadZone resolves zone strictly: the empty string and "Local" are rejected
// so that no implicit default zone is ever used.
func loadZone(zone string) (*time.Location, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" || zone == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, zone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, zone)
	}
	return loc, nil
}

// LocalDateToday returns the calendar date currently in effect in zone.
func LocalDateToday(zone string) (string, error) {
	return localDateAt(time.Now(), zone)
}

func localDateAt(now time.Time, zone string) (string, error) {
	loc, err := loadZone(zone)
	if err != nil {
		return "", err
	}
	return now.In(loc).Format(DateFormatISO), nil
}

// LocalDateTimeLabel returns "YYYY-MM-DD HH:MM" for the current moment in zone.
func LocalDateTimeLabel(zone string) (string, error) {
	return localLabelAt(time.Now(), zone)
}

func localLabelAt(now time.Time, zone string) (string, error) {
	loc, err := loadZone(zone)
	if err != nil {
		return "", err
	}
	return now.In(loc).Format(DateTimeLabel), nil
}

// ZonedToUTC resolves a local date ("YYYY-MM-DD") and wall-clock time
// ("HH:MM" or "HH:MM:SS") in zone to an absolute instant.
//
// The zone offset is taken at the target moment, not at conversion time. A
// provisional instant is built from the fields as if they were UTC, rendered
// back into zone, and the difference between the two wall clocks is applied
// once. If the corrected instant does not render back to the requested wall
// clock (the provisional instant sat on the other side of a transition), one
// refinement using the offset at the corrected instant is tried and kept only
// when it round-trips. Local times that do not exist (spring-forward gaps)
// therefore resolve with the pre-transition offset: 02:30 on a New York
// spring-forward day becomes 03:30 EDT.
func ZonedToUTC(date, clock, zone string) (time.Time, error) {
	loc, err := loadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	wc, err := parseWallClock(date, clock)
	if err != nil {
		return time.Time{}, err
	}
	return zonedToUTC(wc, loc), nil
}

func zonedToUTC(wc wallClock, loc *time.Location) time.Time {
	guess := wc.asUTC()
	offset := guess.Sub(wallClockOf(guess, loc).asUTC())
	resolved := guess.Add(offset)

	if wallClockOf(resolved, loc) == wc {
		return resolved
	}

	refined := guess.Add(resolved.Sub(wallClockOf(resolved, loc).asUTC()))
	if wallClockOf(refined, loc) == wc {
		return refined
	}
	return resolved
}

// DayBoundsUTC returns the instants of local 00:00:00 and 23:59:59 of date in
// zone. The end bound is inclusive of the day's last second.
func DayBoundsUTC(date, zone string) (DayBounds, error) {
	start, err := ZonedToUTC(date, dayStartWallTime, zone)
	if err != nil {
		return DayBounds{}, err
	}
	end, err := ZonedToUTC(date, dayEndWallTime, zone)
	if err != nil {
		return DayBounds{}, err
	}
	return DayBounds{StartUTC: start, EndUTC: end}, nil
}

// FormatInZone renders an instant as local date and "HH:MM" time in zone.
func FormatInZone(t time.Time, zone string) (date, clock string, err error) {
	loc, err := loadZone(zone)
	if err != nil {
		return "", "", err
	}
	z := t.In(loc)
	return z.Format(DateFormatISO), z.Format(TimeFormatShort), nil
}

func parseWallClock(date, clock string) (wallClock, error) {
	d, err := time.Parse(DateFormatISO, strings.TrimSpace(date))
	if err != nil {
		return wallClock{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	clock = strings.TrimSpace(clock)
	layout := TimeFormatShort
	if strings.Count(clock, ":") == 2 {
		layout = TimeFormatLong
	}
	c, err := time.Parse(layout, clock)
	if err != nil {
		return wallClock{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	return wallClock{
		year:   d.Year(),
		month:  d.Month(),
		day:    d.Day(),
		hour:   c.Hour(),
		minute: c.Minute(),
		second: c.Second(),
	}, nil
}
