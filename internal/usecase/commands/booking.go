package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/obs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CreateBookingInput struct {
	FieldID uuid.UUID
	TeamID  *uuid.UUID
	Date    timeslot.Date
	Window  timeslot.Interval
}

//go:generate mockgen -source=booking.go -destination=../../mock/commands/booking_mock.go -package=commandsmock
type BookingCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateBookingInput) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (*booking.Booking, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	after   afterCommit
	metrics shared.BookingMetrics
	clock   clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	invalidator shared.AvailabilityInvalidator,
	metrics shared.BookingMetrics,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		after:   afterCommit{notifier: notifier, invalidator: invalidator},
		metrics: metrics,
		clock:   clk,
	}
}

// Create books in.Window on in.Date for the actor. The check and the insert
// run under the field/date slot lock, so of two overlapping concurrent
// requests exactly one commits.
func (uc *bookingCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateBookingInput) (b *booking.Booking, err error) {
	ctx, span := obs.Tracer().Start(ctx, "booking.create", trace.WithAttributes(
		attribute.String("field.id", in.FieldID.String()),
		attribute.String("booking.date", in.Date.String()),
		attribute.String("booking.window", in.Window.String()),
	))
	defer func() {
		uc.observe("create", err)
		endSpan(span, err)
	}()

	var f *field.Field
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockSlot(ctx, tx.DB(), in.FieldID, in.Date); err != nil {
			return err
		}

		var err error
		f, err = tx.Reads().FieldByID(ctx, in.FieldID)
		if err != nil {
			return err
		}
		if in.TeamID != nil {
			if err := uc.checkTeam(ctx, tx.Reads(), actor, *in.TeamID); err != nil {
				return err
			}
		}

		existing, err := tx.Reads().ActiveBookings(ctx, f.ID(), in.Date)
		if err != nil {
			return err
		}
		b, err = booking.New(f, booking.Request{
			UserID: actor.ID,
			TeamID: in.TeamID,
			Date:   in.Date,
			Window: in.Window,
		}, existing, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", b.ID().String()))
	uc.after.invalidate(ctx, b.FieldID(), b.Date())
	uc.after.notify(ctx, notification.BookingRequested(f.OwnerID(), f.Name(), b.Date().String(), b.Window().String()))
	return b, nil
}

// checkTeam requires the requester to belong to the team it books for.
func (uc *bookingCommandsImpl) checkTeam(ctx context.Context, reads shared.CommandReads, actor access.Actor, teamID uuid.UUID) error {
	t, err := reads.TeamByID(ctx, teamID)
	if err != nil {
		return err
	}
	if actor.IsAdmin() || t.LeaderID() == actor.ID {
		return nil
	}
	member, err := reads.IsTeamMember(ctx, t.ID(), actor.ID)
	if err != nil {
		return err
	}
	if !member {
		return access.ErrForbidden
	}
	return nil
}

// UpdateStatus applies a caller-driven transition. The booking is re-read
// under the slot lock so concurrent transitions see each other's result.
func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (b *booking.Booking, err error) {
	ctx, span := obs.Tracer().Start(ctx, "booking.update_status", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
		attribute.String("booking.status", status),
	))
	defer func() {
		uc.observe("update_status", err)
		endSpan(span, err)
	}()

	var snap *shared.BookingSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = uc.authorized(ctx, tx.Reads(), actor, id)
		if err != nil {
			return err
		}
		next, err := booking.ParseStatus(status)
		if err != nil {
			return err
		}

		if err := tx.Bookings().LockSlot(ctx, tx.DB(), snap.Booking.FieldID(), snap.Booking.Date()); err != nil {
			return err
		}
		if snap, err = tx.Reads().BookingByID(ctx, id); err != nil {
			return err
		}

		if err := snap.Booking.TransitionTo(next, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.Booking)
	})
	if err != nil {
		return nil, err
	}

	b = snap.Booking
	uc.after.invalidate(ctx, b.FieldID(), b.Date())
	if recipient := counterParty(actor, snap); recipient != uuid.Nil {
		uc.after.notify(ctx, notification.BookingStatusChanged(recipient, snap.FieldName, b.Date().String(), b.Status().String()))
	}
	return b, nil
}

// Delete removes the booking outright. Cancelling is the way to keep history.
func (uc *bookingCommandsImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) (err error) {
	ctx, span := obs.Tracer().Start(ctx, "booking.delete", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
	))
	defer func() {
		uc.observe("delete", err)
		endSpan(span, err)
	}()

	var snap *shared.BookingSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = uc.authorized(ctx, tx.Reads(), actor, id)
		if err != nil {
			return err
		}
		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}

	uc.after.invalidate(ctx, snap.Booking.FieldID(), snap.Booking.Date())
	return nil
}

// authorized loads the booking and lets through its requester, the field
// owner and administrators.
func (uc *bookingCommandsImpl) authorized(ctx context.Context, reads shared.CommandReads, actor access.Actor, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, []uuid.UUID{snap.Booking.UserID(), snap.FieldOwnerID}); err != nil {
		return nil, err
	}
	return snap, nil
}

func (uc *bookingCommandsImpl) observe(operation string, err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveLifecycle(operation, outcome(err))
	}
}

// counterParty is the owner when the requester acted and the requester
// otherwise. Nobody is notified of their own change.
func counterParty(actor access.Actor, snap *shared.BookingSnapshot) uuid.UUID {
	recipient := snap.Booking.UserID()
	if actor.ID == snap.Booking.UserID() {
		recipient = snap.FieldOwnerID
	}
	if recipient == actor.ID {
		return uuid.Nil
	}
	return recipient
}
