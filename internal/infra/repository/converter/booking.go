package converter

import (
	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		FieldID:    b.FieldID(),
		UserID:     b.UserID(),
		TeamID:     pgconv.UUIDPtrToPgtype(b.TeamID()),
		Date:       pgconv.DateToPgtype(b.Date().Time()),
		StartTime:  pgconv.TimeOfDayToPgtype(int32(b.Window().Start)),
		EndTime:    pgconv.TimeOfDayToPgtype(int32(b.Window().End)),
		TotalPrice: pgconv.NumericFromDecimal(b.TotalPrice()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	price, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.FieldID,
		row.UserID,
		pgconv.UUIDPtrFromPgtype(row.TeamID),
		timeslot.DateOf(pgconv.DateFromPgtype(row.Date)),
		WindowFromRow(row.StartTime, row.EndTime),
		price,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingSlotFromRow(row sqlc.Bookings) availability.Booking {
	return availability.Booking{
		ID:        row.ID,
		Window:    WindowFromRow(row.StartTime, row.EndTime),
		Cancelled: row.Status == string(booking.StatusCancelled),
	}
}
