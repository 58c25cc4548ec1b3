// file: internals/features/college/timetable/grid/period.go
package grid

import (
	"errors"
	"strconv"
	"strings"
)

// The institutional day runs 09:00 through 17:59, one period per hour.
const (
	FirstPeriodHour = 9
	LastPeriodHour  = 17
	PeriodsPerDay   = LastPeriodHour - FirstPeriodHour + 1
)

var (
	ErrEmptyTime   = errors.New("empty time")
	ErrNoSeparator = errors.New("time has no ':' separator")
	ErrInvalidHour = errors.New("hour is not a number")
)

// HourResult is Ok when Err is nil; Hour is on the 24-hour clock.
type HourResult struct {
	Hour int
	Err  error
}

func (r HourResult) Ok() bool { return r.Err == nil }

// ParseHour reads the hour of a free-text time such as "10:00", "2:30 PM" or
// "12:00 am". No timezone handling.
func ParseHour(s string) HourResult {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return HourResult{Err: ErrEmptyTime}
	}

	isPM := strings.Contains(s, "PM")
	isAM := strings.Contains(s, "AM")
	if isPM || isAM {
		s = strings.ReplaceAll(s, "AM", "")
		s = strings.ReplaceAll(s, "PM", "")
		s = strings.TrimSpace(s)
	}

	head, _, found := strings.Cut(s, ":")
	if !found {
		return HourResult{Err: ErrNoSeparator}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return HourResult{Err: ErrInvalidHour}
	}

	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}
	return HourResult{Hour: hour}
}

// PeriodForHour converts a 24-hour clock hour into a period index.
func PeriodForHour(hour int) (int, bool) {
	if hour < FirstPeriodHour || hour > LastPeriodHour {
		return 0, false
	}
	return hour - FirstPeriodHour, true
}

// MapTimeToPeriod returns the period index for a time string. ok is false
// when the time cannot be parsed or falls outside the day; callers skip
// such entries.
func MapTimeToPeriod(s string) (period int, ok bool) {
	r := ParseHour(s)
	if !r.Ok() {
		return 0, false
	}
	return PeriodForHour(r.Hour)
}
