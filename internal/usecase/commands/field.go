package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/patch"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldPatch replaces only the attributes that are set.
type FieldPatch struct {
	Name         *string
	Location     *string
	Governorate  *string
	Description  *string
	PricePerHour *decimal.Decimal
	Hours        *timeslot.Interval
	Latitude     *float64
	Longitude    *float64
}

//go:generate mockgen -source=field.go -destination=../../mock/commands/field_mock.go -package=commandsmock
type FieldCommands interface {
	Create(ctx context.Context, actor access.Actor, p field.Params) (*field.Field, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, p FieldPatch) (*field.Field, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	SetFacilities(ctx context.Context, actor access.Actor, id uuid.UUID, names []string) ([]string, error)
}

type fieldCommandsImpl struct {
	uow          shared.UnitOfWork
	after        afterCommit
	defaultHours timeslot.Interval
	clock        clock.Clock
}

// NewFieldCommands applies defaultHours to fields listed without opening
// times; an invalid value falls back to field.DefaultHours.
func NewFieldCommands(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	defaultHours timeslot.Interval,
	clk clock.Clock,
) FieldCommands {
	if !defaultHours.IsValid() {
		defaultHours = field.DefaultHours
	}
	return &fieldCommandsImpl{
		uow:          uow,
		after:        afterCommit{invalidator: invalidator},
		defaultHours: defaultHours,
		clock:        clk,
	}
}

func (uc *fieldCommandsImpl) Create(ctx context.Context, actor access.Actor, p field.Params) (*field.Field, error) {
	if err := access.Authorize(actor, nil, user.RoleOwner); err != nil {
		return nil, err
	}
	if p.Hours == nil {
		hours := uc.defaultHours
		p.Hours = &hours
	}

	f, err := field.New(actor.ID, p, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Fields().Create(ctx, tx.DB(), f)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Update never touches existing bookings, even when the hours shrink.
func (uc *fieldCommandsImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, p FieldPatch) (*field.Field, error) {
	var f *field.Field
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		f, err = tx.Reads().FieldByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{f.OwnerID()}, user.RoleOwner); err != nil {
			return err
		}

		err = f.Update(field.Params{
			Name:         patch.Coalesce(p.Name, f.Name()),
			Location:     patch.Coalesce(p.Location, f.Location()),
			Governorate:  patch.Coalesce(p.Governorate, f.Governorate()),
			Description:  patch.Coalesce(p.Description, f.Description()),
			PricePerHour: patch.Coalesce(p.PricePerHour, f.PricePerHour()),
			Hours:        p.Hours,
			Latitude:     patch.CoalescePtr(p.Latitude, f.Latitude()),
			Longitude:    patch.CoalescePtr(p.Longitude, f.Longitude()),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Fields().Update(ctx, tx.DB(), f)
	})
	if err != nil {
		return nil, err
	}
	uc.after.invalidateField(ctx, id)
	return f, nil
}

func (uc *fieldCommandsImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Reads().FieldByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{f.OwnerID()}, user.RoleOwner); err != nil {
			return err
		}
		return tx.Fields().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}
	uc.after.invalidateField(ctx, id)
	return nil
}

// SetFacilities replaces the amenity list and returns it normalized.
func (uc *fieldCommandsImpl) SetFacilities(ctx context.Context, actor access.Actor, id uuid.UUID, names []string) ([]string, error) {
	normalized, err := field.Facilities(names)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Reads().FieldByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{f.OwnerID()}, user.RoleOwner); err != nil {
			return err
		}
		return tx.Fields().ReplaceFacilities(ctx, tx.DB(), id, normalized)
	})
	if err != nil {
		return nil, err
	}
	return normalized, nil
}
