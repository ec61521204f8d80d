package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/payment"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/obs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=payment.go -destination=../../mock/commands/payment_mock.go -package=commandsmock
type PaymentCommands interface {
	Create(ctx context.Context, actor access.Actor, bookingID uuid.UUID, method string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (*payment.Payment, error)
	Refund(ctx context.Context, actor access.Actor, id uuid.UUID) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	after    afterCommit
	metrics  shared.BookingMetrics
	clock    clock.Clock
	currency string
}

func NewPaymentCommands(uow shared.UnitOfWork, notifier shared.Notifier, metrics shared.BookingMetrics, clk clock.Clock, currency string) PaymentCommands {
	if currency == "" {
		currency = payment.DefaultCurrency
	}
	return &paymentCommandsImpl{
		uow:      uow,
		after:    afterCommit{notifier: notifier},
		metrics:  metrics,
		clock:    clk,
		currency: currency,
	}
}

// Create opens a pending payment for the booking's full price. Only the
// requester pays; a booking is paid at most once.
func (uc *paymentCommandsImpl) Create(ctx context.Context, actor access.Actor, bookingID uuid.UUID, method string) (p *payment.Payment, err error) {
	ctx, span := obs.Tracer().Start(ctx, "payment.create", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer func() {
		uc.observe("payment_create", err)
		endSpan(span, err)
	}()

	m, err := payment.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	var snap *shared.BookingSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{snap.Booking.UserID()}); err != nil {
			return err
		}
		if snap.Booking.Status().IsTerminal() {
			return payment.ErrBookingNotPayable
		}

		paid, err := tx.Reads().HasCompletedPayment(ctx, bookingID)
		if err != nil {
			return err
		}
		if paid {
			return payment.ErrAlreadyCompleted
		}

		p = payment.New(bookingID, snap.Booking.UserID(), snap.Booking.TotalPrice(), uc.currency, m, uc.clock.Now())
		return tx.Payments().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}

	uc.after.notify(ctx, notification.PaymentReceived(snap.FieldOwnerID, p.Amount().StringFixed(2), p.Currency(), snap.FieldName))
	return p, nil
}

// UpdateStatus is the administrative override of a payment's status.
func (uc *paymentCommandsImpl) UpdateStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (p *payment.Payment, err error) {
	ctx, span := obs.Tracer().Start(ctx, "payment.update_status", trace.WithAttributes(
		attribute.String("payment.id", id.String()),
		attribute.String("payment.status", status),
	))
	defer func() {
		uc.observe("payment_update_status", err)
		endSpan(span, err)
	}()

	if err := access.Authorize(actor, nil, user.RoleAdmin); err != nil {
		return nil, err
	}
	next, err := payment.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var snap *shared.BookingSnapshot
	var wasCompleted bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		p, err = tx.Reads().PaymentByID(ctx, id)
		if err != nil {
			return err
		}
		snap, err = tx.Reads().BookingByID(ctx, p.BookingID())
		if err != nil {
			return err
		}
		wasCompleted = p.Status() == payment.StatusCompleted
		if err := p.SetStatus(next, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Payments().UpdateStatus(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}

	uc.after.notify(ctx, notification.PaymentStatusChanged(p.UserID(), p.TransactionID(), p.Status().String()))
	if p.Status() == payment.StatusCompleted && !wasCompleted {
		uc.after.notify(ctx, notification.PaymentReceived(snap.FieldOwnerID, p.Amount().StringFixed(2), p.Currency(), snap.FieldName))
	}
	return p, nil
}

// Refund reverses a completed payment. The field owner or an administrator
// may refund; the booking's own status is left alone.
func (uc *paymentCommandsImpl) Refund(ctx context.Context, actor access.Actor, id uuid.UUID) (p *payment.Payment, err error) {
	ctx, span := obs.Tracer().Start(ctx, "payment.refund", trace.WithAttributes(
		attribute.String("payment.id", id.String()),
	))
	defer func() {
		uc.observe("payment_refund", err)
		endSpan(span, err)
	}()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		p, err = tx.Reads().PaymentByID(ctx, id)
		if err != nil {
			return err
		}
		snap, err := tx.Reads().BookingByID(ctx, p.BookingID())
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{snap.FieldOwnerID}); err != nil {
			return err
		}
		if err := p.Refund(uc.clock.Now()); err != nil {
			return err
		}
		return tx.Payments().UpdateStatus(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}

	uc.after.notify(ctx, notification.PaymentStatusChanged(p.UserID(), p.TransactionID(), p.Status().String()))
	return p, nil
}

func (uc *paymentCommandsImpl) observe(operation string, err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveLifecycle(operation, outcome(err))
	}
}
