package booking

import (
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errs.Reject(errs.KindNotFound, "booking_not_found")

type Booking struct {
	id         uuid.UUID
	fieldID    uuid.UUID
	userID     uuid.UUID
	teamID     *uuid.UUID
	date       timeslot.Date
	window     timeslot.Interval
	totalPrice decimal.Decimal
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

type Request struct {
	UserID uuid.UUID
	TeamID *uuid.UUID
	Date   timeslot.Date
	Window timeslot.Interval
}

// New validates req against the field's hours and the same-day bookings
// already on it, prices it and returns a pending booking.
func New(f *field.Field, req Request, existing []availability.Booking, now time.Time) (*Booking, error) {
	schedule := availability.Schedule{Hours: f.Hours(), Bookings: existing}
	if err := availability.ValidateRequest(schedule, req.Window, uuid.Nil); err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		fieldID:    f.ID(),
		userID:     req.UserID,
		teamID:     req.TeamID,
		date:       req.Date,
		window:     req.Window,
		totalPrice: availability.ComputePrice(f.PricePerHour(), req.Window),
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id, fieldID, userID uuid.UUID,
	teamID *uuid.UUID,
	date timeslot.Date,
	window timeslot.Interval,
	totalPrice decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		fieldID:    fieldID,
		userID:     userID,
		teamID:     teamID,
		date:       date,
		window:     window,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo moves the booking to next. Terminal states and undefined
// moves are rejected and leave the booking untouched.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// AsSlot is the view the availability engine works with.
func (b *Booking) AsSlot() availability.Booking {
	return availability.Booking{ID: b.id, Window: b.window, Cancelled: b.status == StatusCancelled}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) FieldID() uuid.UUID          { return b.fieldID }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) TeamID() *uuid.UUID          { return b.teamID }
func (b *Booking) Date() timeslot.Date         { return b.date }
func (b *Booking) Window() timeslot.Interval   { return b.window }
func (b *Booking) TotalPrice() decimal.Decimal { return b.totalPrice }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
