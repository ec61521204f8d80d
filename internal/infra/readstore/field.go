package readstore

import (
	"context"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=field.go -destination=../../mock/readstore/field_mock.go -package=readstoremock
type FieldReadQueries interface {
	GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error)
	ListFields(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFieldsParams) ([]sqlc.ListFieldsRow, error)
	CountFields(ctx context.Context, db sqlc.DBTX, arg sqlc.CountFieldsParams) (int64, error)
	ListAvailableFields(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableFieldsParams) ([]sqlc.Fields, error)
	ListActiveBookingsForFieldDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsForFieldDateParams) ([]sqlc.Bookings, error)
	GetFieldRatingStats(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) (sqlc.GetFieldRatingStatsRow, error)
	ListFieldFacilities(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) ([]string, error)
}

type FieldReadStore struct {
	queries FieldReadQueries
	db      sqlc.DBTX
}

func NewFieldReadStore(queries FieldReadQueries, db sqlc.DBTX) *FieldReadStore {
	return &FieldReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get field by id", err)
	}
	stats, err := r.queries.GetFieldRatingStats(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get field rating stats", err)
	}
	v, err := toFieldView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode field", err, infra.KindDBFailure)
	}
	v.AverageRating = stats.AverageRating
	v.ReviewCount = stats.TotalReviews
	return v, nil
}

// Facilities lists the amenities of an existing field.
func (r *FieldReadStore) Facilities(ctx context.Context, fieldID uuid.UUID) ([]string, error) {
	if _, err := r.queries.GetFieldByID(ctx, r.db, fieldID); err != nil {
		return nil, infra.WrapRepoErr("failed to get field by id", err)
	}
	names, err := r.queries.ListFieldFacilities(ctx, r.db, fieldID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field facilities", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *FieldReadStore) List(ctx context.Context, filter queries.FieldFilter, limit, offset int32) ([]*queries.FieldView, error) {
	p := fieldFilterParams(filter)
	rows, err := r.queries.ListFields(ctx, r.db, sqlc.ListFieldsParams{
		Governorate: p.Governorate,
		MinPrice:    p.MinPrice,
		MaxPrice:    p.MaxPrice,
		Search:      p.Search,
		OwnerID:     p.OwnerID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}
	out := make([]*queries.FieldView, 0, len(rows))
	for _, row := range rows {
		v, err := toFieldView(row.Fields)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode field", err, infra.KindDBFailure)
		}
		v.AverageRating = row.AvgRating
		v.ReviewCount = row.ReviewCount
		out = append(out, v)
	}
	return out, nil
}

func (r *FieldReadStore) Count(ctx context.Context, filter queries.FieldFilter) (int64, error) {
	n, err := r.queries.CountFields(ctx, r.db, fieldFilterParams(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count fields", err)
	}
	return n, nil
}

func (r *FieldReadStore) ListAvailable(ctx context.Context, search queries.AvailableSearch, limit, offset int32) ([]*queries.FieldView, error) {
	rows, err := r.queries.ListAvailableFields(ctx, r.db, sqlc.ListAvailableFieldsParams{
		Date:        pgconv.DateToPgtype(search.Date.Time()),
		StartTime:   pgconv.TimeOfDayToPgtype(int32(search.Window.Start)),
		EndTime:     pgconv.TimeOfDayToPgtype(int32(search.Window.End)),
		Governorate: optionalText(search.Governorate),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available fields", err)
	}
	out := make([]*queries.FieldView, 0, len(rows))
	for _, row := range rows {
		v, err := toFieldView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode field", err, infra.KindDBFailure)
		}
		out = append(out, v)
	}
	return out, nil
}

// Schedule reads the field's hours and its non-cancelled bookings for date.
func (r *FieldReadStore) Schedule(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) (availability.Schedule, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, fieldID)
	if err != nil {
		return availability.Schedule{}, infra.WrapRepoErr("failed to get field by id", err)
	}
	bookings, err := r.queries.ListActiveBookingsForFieldDate(ctx, r.db, sqlc.ListActiveBookingsForFieldDateParams{
		FieldID: fieldID,
		Date:    pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return availability.Schedule{}, infra.WrapRepoErr("failed to list bookings for field date", err)
	}
	slots := make([]availability.Booking, len(bookings))
	for i, b := range bookings {
		slots[i] = converter.BookingSlotFromRow(b)
	}
	return availability.Schedule{Hours: converter.HoursFromRow(row), Bookings: slots}, nil
}

func toFieldView(row sqlc.Fields) (*queries.FieldView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	hours := converter.HoursFromRow(row)
	return &queries.FieldView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Location:     row.Location,
		Governorate:  row.Governorate,
		Description:  row.Description,
		PricePerHour: price,
		OpeningTime:  hours.Start.String(),
		ClosingTime:  hours.End.String(),
		Latitude:     pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:    pgconv.Float64PtrFromPgtype(row.Longitude),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func fieldFilterParams(f queries.FieldFilter) sqlc.CountFieldsParams {
	return sqlc.CountFieldsParams{
		Governorate: optionalText(f.Governorate),
		MinPrice:    optionalNumeric(f.MinPrice),
		MaxPrice:    optionalNumeric(f.MaxPrice),
		Search:      optionalText(f.Search),
		OwnerID:     pgconv.UUIDPtrToPgtype(f.OwnerID),
	}
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(s)
}

func optionalNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return pgconv.NumericFromDecimal(*d)
}
