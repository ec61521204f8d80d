package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../mock/readstore/booking_mock.go -package=readstoremock
type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingViewRow, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsParams) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	v, err := toBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, limit, offset int32) ([]*queries.BookingView, error) {
	p := bookingFilterParams(filter)
	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		UserID:  p.UserID,
		FieldID: p.FieldID,
		Status:  p.Status,
		Date:    p.Date,
		TeamID:  p.TeamID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *BookingReadStore) Count(ctx context.Context, filter queries.BookingFilter) (int64, error) {
	n, err := r.queries.CountBookings(ctx, r.db, bookingFilterParams(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}

func toBookingView(row sqlc.BookingViewRow) (*queries.BookingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	window := converter.WindowFromRow(row.StartTime, row.EndTime)
	return &queries.BookingView{
		ID:           row.ID,
		FieldID:      row.FieldID,
		FieldName:    row.FieldName,
		FieldOwnerID: row.FieldOwnerID,
		UserID:       row.UserID,
		UserName:     row.UserName,
		UserEmail:    row.UserEmail,
		TeamID:       pgconv.UUIDPtrFromPgtype(row.TeamID),
		Date:         pgconv.DateFromPgtype(row.Date).Format("2006-01-02"),
		StartTime:    window.Start.String(),
		EndTime:      window.End.String(),
		TotalPrice:   price,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func bookingFilterParams(f queries.BookingFilter) sqlc.CountBookingsParams {
	p := sqlc.CountBookingsParams{
		UserID:  pgconv.UUIDPtrToPgtype(f.UserID),
		FieldID: pgconv.UUIDPtrToPgtype(f.FieldID),
		TeamID:  pgconv.UUIDPtrToPgtype(f.TeamID),
	}
	if f.Status != nil {
		p.Status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	if f.Date != nil {
		p.Date = pgconv.DateToPgtype(f.Date.Time())
	}
	return p
}
