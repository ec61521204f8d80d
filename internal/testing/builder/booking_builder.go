//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/timeslot"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID         uuid.UUID
	FieldID    uuid.UUID
	UserID     uuid.UUID
	TeamID     *uuid.UUID
	Date       string
	Start      string
	End        string
	TotalPrice decimal.Decimal
	Status     booking.Status
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		FieldID:    uuid.New(),
		UserID:     uuid.New(),
		Date:       "2025-03-10",
		Start:      "18:00",
		End:        "19:30",
		TotalPrice: decimal.NewFromInt(150),
		Status:     booking.StatusPending,
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Window() timeslot.Interval {
	return timeslot.MustParseInterval(b.Start, b.End)
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID, b.FieldID, b.UserID, b.TeamID,
		timeslot.MustParseDate(b.Date), b.Window(),
		b.TotalPrice, b.Status, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildSlot() availability.Booking {
	return availability.Booking{ID: b.ID, Window: b.Window(), Cancelled: b.Status == booking.StatusCancelled}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	window := b.Window()
	return sqlc.Bookings{
		ID:         b.ID,
		FieldID:    b.FieldID,
		UserID:     b.UserID,
		TeamID:     pgconv.UUIDPtrToPgtype(b.TeamID),
		Date:       pgconv.DateToPgtype(timeslot.MustParseDate(b.Date).Time()),
		StartTime:  pgconv.TimeOfDayToPgtype(int32(window.Start)),
		EndTime:    pgconv.TimeOfDayToPgtype(int32(window.End)),
		TotalPrice: pgconv.NumericFromDecimal(b.TotalPrice),
		Status:     b.Status.String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FieldID:   b.FieldID,
		TeamID:    b.TeamID,
		Date:      b.Date,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}
