package converter

import (
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
)

func FieldToCreateParams(f *field.Field) sqlc.CreateFieldParams {
	return sqlc.CreateFieldParams{
		ID:           f.ID(),
		OwnerID:      f.OwnerID(),
		Name:         f.Name(),
		Location:     f.Location(),
		Governorate:  f.Governorate(),
		Description:  f.Description(),
		PricePerHour: pgconv.NumericFromDecimal(f.PricePerHour()),
		OpeningTime:  pgconv.TimeOfDayToPgtype(int32(f.Hours().Start)),
		ClosingTime:  pgconv.TimeOfDayToPgtype(int32(f.Hours().End)),
		Latitude:     pgconv.Float64PtrToPgtype(f.Latitude()),
		Longitude:    pgconv.Float64PtrToPgtype(f.Longitude()),
		CreatedAt:    pgconv.TimeToPgtype(f.CreatedAt()),
	}
}

func FieldToUpdateParams(f *field.Field) sqlc.UpdateFieldParams {
	return sqlc.UpdateFieldParams{
		ID:           f.ID(),
		Name:         f.Name(),
		Location:     f.Location(),
		Governorate:  f.Governorate(),
		Description:  f.Description(),
		PricePerHour: pgconv.NumericFromDecimal(f.PricePerHour()),
		OpeningTime:  pgconv.TimeOfDayToPgtype(int32(f.Hours().Start)),
		ClosingTime:  pgconv.TimeOfDayToPgtype(int32(f.Hours().End)),
		Latitude:     pgconv.Float64PtrToPgtype(f.Latitude()),
		Longitude:    pgconv.Float64PtrToPgtype(f.Longitude()),
		UpdatedAt:    pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func FieldFromRow(row sqlc.Fields) (*field.Field, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	hours := HoursFromRow(row)
	return field.Reconstruct(row.ID, row.OwnerID, field.Params{
		Name:         row.Name,
		Location:     row.Location,
		Governorate:  row.Governorate,
		Description:  row.Description,
		PricePerHour: price,
		Hours:        &hours,
		Latitude:     pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:    pgconv.Float64PtrFromPgtype(row.Longitude),
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func HoursFromRow(row sqlc.Fields) timeslot.Interval {
	return timeslot.Interval{
		Start: timeslot.TimeOfDay(pgconv.TimeOfDayFromPgtype(row.OpeningTime)),
		End:   timeslot.TimeOfDay(pgconv.TimeOfDayFromPgtype(row.ClosingTime)),
	}
}
