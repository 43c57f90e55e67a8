package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall-clock time expressed as seconds since midnight.
type TimeOfDay int

// ParseTimeOfDay accepts HH:MM:SS or HH:MM in 24 hour format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		values[i] = n
	}

	return NewTimeOfDay(values[0], values[1], values[2]), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// NewTimeOfDay builds a TimeOfDay from its clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// TimeOfDayOf returns the wall-clock time of t in t's location, truncated to the second.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return int(t) % 3600 / 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// On returns the instant at which this time of day occurs on the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, date.Location())
}

// Value stores the time of day as HH:MM:SS text.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan reads a HH:MM:SS text column.
func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// InWindow reports whether now falls in [start, end], both ends inclusive.
// When start >= end the window crosses midnight: [start, 24h) U [0, end].
func InWindow(start, now, end TimeOfDay) bool {
	if start < end {
		return now >= start && now <= end
	}
	return now >= start || now <= end
}

// Window is a member's daily check-in range.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseWindow parses and validates a start/end pair.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, err
	}

	w := Window{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if w.Start == w.End {
		return ErrInvalidWindow
	}
	return nil
}

func (w Window) String() string {
	return w.Start.String() + " - " + w.End.String()
}

// CrossesMidnight reports whether the window ends on the day after it starts.
func (w Window) CrossesMidnight() bool {
	return w.Start >= w.End
}

// Contains reports whether the wall-clock time of t is inside the window.
func (w Window) Contains(t time.Time) bool {
	return InWindow(w.Start, TimeOfDayOf(t), w.End)
}

// NextEnd returns the first occurrence of the window end strictly after the given instant.
func (w Window) NextEnd(after time.Time) time.Time {
	end := w.End.On(after)
	if !end.After(after) {
		end = w.End.On(after.AddDate(0, 0, 1))
	}
	return end
}

// AttendanceDay returns the calendar day an instant inside the window is attributed to.
// Days are named after the date on which the window ends, so for a window that
// crosses midnight, instants after the start belong to the following day.
func (w Window) AttendanceDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if w.CrossesMidnight() && TimeOfDayOf(t) >= w.Start {
		return day.AddDate(0, 0, 1)
	}
	return day
}

// ObservesDay reports whether attendance is tracked on day.
// Members that do not observe weekends are not tracked on Saturday and Sunday.
func ObservesDay(day time.Time, observeWeekends bool) bool {
	if observeWeekends {
		return true
	}
	return !IsWeekend(day)
}

func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FormatDay renders a day as stored in attendance records.
func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}
