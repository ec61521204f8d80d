package queries

import (
	"context"
	"slices"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/payment"
	"field-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentPage struct {
	Payments   []*PaymentView `json:"payments"`
	Pagination Pagination     `json:"pagination"`
}

//go:generate mockgen -source=payment.go -destination=../../mock/queries/payment_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*PaymentView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PaymentQueries interface {
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*PaymentView, error)
	ListByBooking(ctx context.Context, actor access.Actor, bookingID uuid.UUID) ([]*PaymentView, error)
	ListMine(ctx context.Context, actor access.Actor, page PageRequest) (*PaymentPage, error)
	Methods() []payment.Method
}

type paymentQueriesImpl struct {
	store    PaymentReadStore
	bookings BookingReadStore
}

func NewPaymentQueries(store PaymentReadStore, bookings BookingReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store, bookings: bookings}
}

// Get is visible to the payer, the owner of the booked field and admins.
func (q *paymentQueriesImpl) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*PaymentView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: payment.ErrNotFound})
	}
	b, err := q.bookings.FindByID(ctx, p.BookingID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: booking.ErrNotFound})
	}
	if err := access.Authorize(actor, []uuid.UUID{p.UserID, b.FieldOwnerID}); err != nil {
		return nil, err
	}
	return p, nil
}

func (q *paymentQueriesImpl) ListByBooking(ctx context.Context, actor access.Actor, bookingID uuid.UUID) ([]*PaymentView, error) {
	b, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: booking.ErrNotFound})
	}
	if err := access.Authorize(actor, []uuid.UUID{b.UserID, b.FieldOwnerID}); err != nil {
		return nil, err
	}
	items, err := q.store.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return items, nil
}

// ListMine lists the payments the actor made, whatever the role.
func (q *paymentQueriesImpl) ListMine(ctx context.Context, actor access.Actor, page PageRequest) (*PaymentPage, error) {
	page = page.Normalize()
	items, err := q.store.ListByUser(ctx, actor.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.CountByUser(ctx, actor.ID)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &PaymentPage{Payments: items, Pagination: NewPagination(page, total)}, nil
}

func (q *paymentQueriesImpl) Methods() []payment.Method {
	return slices.Clone(payment.Methods)
}
