package repository

import (
	"context"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/team"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/repository/booking_mock.go -package=repositorymock
type BookingWriteQueries interface {
	LockFieldDate(ctx context.Context, db sqlc.DBTX, arg sqlc.LockFieldDateParams) error
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date timeslot.Date) error {
	err := r.queries.LockFieldDate(ctx, tx, sqlc.LockFieldDateParams{
		FieldID: fieldID,
		Date:    pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to lock field date", err))
	}
	return nil
}

// Create inserts b. An overlap that slipped past the application check is
// caught by the bookings_no_overlap constraint and reported as
// slot_unavailable.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) && b.TeamID() != nil {
			return team.ErrNotFound.Because(wrapped)
		}
		return infra.Reject(wrapped, infra.Outcomes{
			infra.KindConflict:           availability.ErrSlotUnavailable,
			infra.KindForeignKeyViolated: field.ErrNotFound,
		})
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	_, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to update booking status", err), infra.Outcomes{
			infra.KindNotFound: booking.ErrNotFound,
			infra.KindConflict: availability.ErrSlotUnavailable,
		})
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to delete booking", err))
	}
	if n == 0 {
		return booking.ErrNotFound.Because(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
	}
	return nil
}
