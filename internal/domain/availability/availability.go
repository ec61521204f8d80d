// Package availability decides whether a requested window on a field is free
// and derives the free and busy windows of a field's day. It works only on
// data handed to it and never touches storage.
package availability

import (
	"slices"

	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWindow         = errs.Reject(errs.KindValidation, "invalid_window")
	ErrOutsideOperatingHours = errs.Reject(errs.KindValidation, "outside_operating_hours")
	ErrSlotUnavailable       = errs.Reject(errs.KindConflict, "slot_unavailable")
)

var secondsPerHour = decimal.NewFromInt(3600)

const pricePrecision = 2

// Booking is the slice of a reservation the engine needs.
type Booking struct {
	ID        uuid.UUID
	Window    timeslot.Interval
	Cancelled bool
}

// Schedule is one field's operating hours plus its reservations for one date.
type Schedule struct {
	Hours    timeslot.Interval
	Bookings []Booking
}

// ValidateRequest checks window against the schedule. The booking whose id
// equals self is ignored, so a stored booking can be re-validated in place;
// pass uuid.Nil for a new request.
func ValidateRequest(s Schedule, window timeslot.Interval, self uuid.UUID) error {
	if !window.IsValid() {
		return ErrInvalidWindow
	}
	if !window.Within(s.Hours) {
		return ErrOutsideOperatingHours
	}
	for _, b := range s.Bookings {
		if b.Cancelled || (self != uuid.Nil && b.ID == self) {
			continue
		}
		if window.Overlaps(b.Window) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

// BusyIntervals returns the non-cancelled windows ordered by start, end, id.
func BusyIntervals(s Schedule) []timeslot.Interval {
	active := activeSorted(s.Bookings)
	out := make([]timeslot.Interval, 0, len(active))
	for _, b := range active {
		out = append(out, b.Window)
	}
	return out
}

// FreeIntervals returns the gaps inside operating hours not covered by any
// non-cancelled booking, in ascending order. Zero-width gaps are dropped and
// overlapping or out-of-hours bookings are tolerated.
func FreeIntervals(s Schedule) []timeslot.Interval {
	if !s.Hours.IsValid() {
		return []timeslot.Interval{}
	}

	free := []timeslot.Interval{}
	cursor := s.Hours.Start
	for _, b := range activeSorted(s.Bookings) {
		if b.Window.End <= cursor {
			continue
		}
		if b.Window.Start >= s.Hours.End {
			break
		}
		if b.Window.Start > cursor {
			free = append(free, timeslot.Interval{Start: cursor, End: b.Window.Start})
		}
		cursor = max(cursor, b.Window.End)
	}
	if cursor < s.Hours.End {
		free = append(free, timeslot.Interval{Start: cursor, End: s.Hours.End})
	}
	return free
}

// ComputePrice is hours(window) * pricePerHour, rounded half away from zero
// to two decimals.
func ComputePrice(pricePerHour decimal.Decimal, window timeslot.Interval) decimal.Decimal {
	secs := decimal.NewFromInt(int64(window.End - window.Start))
	return pricePerHour.Mul(secs).DivRound(secondsPerHour, pricePrecision)
}

func activeSorted(bookings []Booking) []Booking {
	active := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.Cancelled {
			active = append(active, b)
		}
	}
	slices.SortFunc(active, func(a, b Booking) int {
		switch {
		case a.Window.Start != b.Window.Start:
			return int(a.Window.Start - b.Window.Start)
		case a.Window.End != b.Window.End:
			return int(a.Window.End - b.Window.End)
		default:
			return slices.Compare(a.ID[:], b.ID[:])
		}
	})
	return active
}
