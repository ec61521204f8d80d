// Package timeslot holds the time-of-day and calendar-date value objects
// that bookings and operating hours are expressed in.
package timeslot

import (
	"fmt"
	"strings"
	"time"

	"field-booking/internal/pkg/errs"
)

var (
	ErrInvalidTime = errs.Reject(errs.KindValidation, "invalid_time")
	ErrInvalidDate = errs.Reject(errs.KindValidation, "invalid_date")
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall-clock time as seconds since midnight, 0..86399.
type TimeOfDay int32

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(hour*3600 + minute*60 + second), nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidTime.Because(err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TimeOfDayFromSeconds(secs int64) (TimeOfDay, error) {
	if secs < 0 || secs >= secondsPerDay {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(secs), nil
}

func (t TimeOfDay) Seconds() int64 { return int64(t) }

func (t TimeOfDay) Microseconds() int64 { return int64(t) * int64(time.Second/time.Microsecond) }

func (t TimeOfDay) String() string {
	h, m, s := int(t)/3600, int(t)%3600/60, int(t)%60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Interval is a half-open window [Start, End) within one day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewInterval(start, end TimeOfDay) Interval {
	return Interval{Start: start, End: end}
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

func MustParseInterval(start, end string) Interval {
	i, err := ParseInterval(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) IsValid() bool { return i.Start < i.End }

// Overlaps reports whether the two windows share any instant. Windows that
// only touch at an endpoint do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Within reports whether i lies inside outer, endpoints included.
func (i Interval) Within(outer Interval) bool {
	return i.Start >= outer.Start && i.End <= outer.End
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.End-i.Start) * time.Second
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.Start, i.End)
}

// Date is a calendar day, normalized to midnight UTC.
type Date struct {
	t time.Time
}

const DateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate.Because(err)
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) String() string     { return d.t.Format(DateLayout) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
