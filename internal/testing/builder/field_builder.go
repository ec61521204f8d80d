//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FieldBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Location     string
	Governorate  string
	Description  string
	PricePerHour decimal.Decimal
	Opening      string
	Closing      string
	CreatedAt    time.Time
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Zamalek Club Pitch 2",
		Location:     "26th of July Corridor",
		Governorate:  "giza",
		Description:  "5-a-side artificial turf",
		PricePerHour: decimal.NewFromInt(100),
		Opening:      "08:00",
		Closing:      "22:00",
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(f)
	return f
}

func (f *FieldBuilder) Hours() timeslot.Interval {
	return timeslot.MustParseInterval(f.Opening, f.Closing)
}

func (f *FieldBuilder) Params() field.Params {
	hours := f.Hours()
	return field.Params{
		Name:         f.Name,
		Location:     f.Location,
		Governorate:  f.Governorate,
		Description:  f.Description,
		PricePerHour: f.PricePerHour,
		Hours:        &hours,
	}
}

func (f *FieldBuilder) BuildDomain() *field.Field {
	return field.Reconstruct(f.ID, f.OwnerID, f.Params(), f.CreatedAt, f.CreatedAt)
}

func (f *FieldBuilder) BuildInfra() sqlc.Fields {
	hours := f.Hours()
	return sqlc.Fields{
		ID:           f.ID,
		OwnerID:      f.OwnerID,
		Name:         f.Name,
		Location:     f.Location,
		Governorate:  f.Governorate,
		Description:  f.Description,
		PricePerHour: pgconv.NumericFromDecimal(f.PricePerHour),
		OpeningTime:  pgconv.TimeOfDayToPgtype(int32(hours.Start)),
		ClosingTime:  pgconv.TimeOfDayToPgtype(int32(hours.End)),
		CreatedAt:    pgconv.TimeToPgtype(f.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(f.CreatedAt),
	}
}

func (f *FieldBuilder) BuildCreateRequestDTO() reqdto.CreateFieldRequest {
	return reqdto.CreateFieldRequest{
		Name:         f.Name,
		Location:     f.Location,
		Governorate:  f.Governorate,
		Description:  f.Description,
		PricePerHour: f.PricePerHour,
		OpeningTime:  &f.Opening,
		ClosingTime:  &f.Closing,
	}
}
