package field

import (
	"strings"
	"time"

	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidField          = errs.Reject(errs.KindValidation, "invalid_field")
	ErrInvalidOperatingHours = errs.Reject(errs.KindValidation, "invalid_operating_hours")
	ErrInvalidPrice          = errs.Reject(errs.KindValidation, "invalid_price")
	ErrNotFound              = errs.Reject(errs.KindNotFound, "field_not_found")
)

// DefaultHours applies when an owner lists a field without opening times.
var DefaultHours = timeslot.MustParseInterval("08:00", "22:00")

type Field struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	location     string
	governorate  string
	description  string
	pricePerHour decimal.Decimal
	hours        timeslot.Interval
	latitude     *float64
	longitude    *float64
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	Name         string
	Location     string
	Governorate  string
	Description  string
	PricePerHour decimal.Decimal
	Hours        *timeslot.Interval
	Latitude     *float64
	Longitude    *float64
}

func New(ownerID uuid.UUID, p Params, now time.Time) (*Field, error) {
	f := &Field{
		id:        uuid.New(),
		ownerID:   ownerID,
		hours:     DefaultHours,
		createdAt: now,
	}
	if err := f.apply(p, now); err != nil {
		return nil, err
	}
	return f, nil
}

func Reconstruct(id, ownerID uuid.UUID, p Params, createdAt, updatedAt time.Time) *Field {
	f := &Field{
		id:           id,
		ownerID:      ownerID,
		name:         p.Name,
		location:     p.Location,
		governorate:  p.Governorate,
		description:  p.Description,
		pricePerHour: p.PricePerHour,
		hours:        DefaultHours,
		latitude:     p.Latitude,
		longitude:    p.Longitude,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if p.Hours != nil {
		f.hours = *p.Hours
	}
	return f
}

// Update replaces the descriptive attributes. Hours left nil keep their
// current value; changing hours never touches existing bookings.
func (f *Field) Update(p Params, now time.Time) error {
	return f.apply(p, now)
}

func (f *Field) apply(p Params, now time.Time) error {
	name := strings.TrimSpace(p.Name)
	if name == "" || strings.TrimSpace(p.Location) == "" || strings.TrimSpace(p.Governorate) == "" {
		return ErrInvalidField
	}
	if p.PricePerHour.IsNegative() {
		return ErrInvalidPrice
	}
	hours := f.hours
	if p.Hours != nil {
		hours = *p.Hours
	}
	if !hours.IsValid() {
		return ErrInvalidOperatingHours
	}

	f.name = name
	f.location = strings.TrimSpace(p.Location)
	f.governorate = strings.ToLower(strings.TrimSpace(p.Governorate))
	f.description = strings.TrimSpace(p.Description)
	f.pricePerHour = p.PricePerHour.Round(2)
	f.hours = hours
	f.latitude = p.Latitude
	f.longitude = p.Longitude
	f.updatedAt = now
	return nil
}

func (f *Field) ID() uuid.UUID                 { return f.id }
func (f *Field) OwnerID() uuid.UUID            { return f.ownerID }
func (f *Field) Name() string                  { return f.name }
func (f *Field) Location() string              { return f.location }
func (f *Field) Governorate() string           { return f.governorate }
func (f *Field) Description() string           { return f.description }
func (f *Field) PricePerHour() decimal.Decimal { return f.pricePerHour }
func (f *Field) Hours() timeslot.Interval      { return f.hours }
func (f *Field) Latitude() *float64            { return f.latitude }
func (f *Field) Longitude() *float64           { return f.longitude }
func (f *Field) CreatedAt() time.Time          { return f.createdAt }
func (f *Field) UpdatedAt() time.Time          { return f.updatedAt }
