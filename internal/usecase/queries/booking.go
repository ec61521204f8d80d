package queries

import (
	"context"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingView struct {
	ID           uuid.UUID       `json:"id"`
	FieldID      uuid.UUID       `json:"field_id"`
	FieldName    string          `json:"field_name"`
	FieldOwnerID uuid.UUID       `json:"field_owner_id"`
	UserID       uuid.UUID       `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserEmail    string          `json:"user_email"`
	TeamID       *uuid.UUID      `json:"team_id,omitempty"`
	Date         string          `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type BookingFilter struct {
	UserID  *uuid.UUID
	FieldID *uuid.UUID
	Status  *booking.Status
	Date    *timeslot.Date
	TeamID  *uuid.UUID
}

type BookingPage struct {
	Bookings   []*BookingView `json:"bookings"`
	Pagination Pagination     `json:"pagination"`
}

//go:generate mockgen -source=booking.go -destination=../../mock/queries/booking_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, limit, offset int32) ([]*BookingView, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
}

type BookingQueries interface {
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor access.Actor, filter BookingFilter, page PageRequest) (*BookingPage, error)
	ListByField(ctx context.Context, actor access.Actor, fieldID uuid.UUID, filter BookingFilter, page PageRequest) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	fields FieldReadStore
}

func NewBookingQueries(store BookingReadStore, fields FieldReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, fields: fields}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: booking.ErrNotFound})
	}
	if err := access.Authorize(actor, []uuid.UUID{v.UserID, v.FieldOwnerID}); err != nil {
		return nil, err
	}
	return v, nil
}

// ListMine lists the actor's own reservations regardless of role.
func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor access.Actor, filter BookingFilter, page PageRequest) (*BookingPage, error) {
	filter.UserID = &actor.ID
	return q.list(ctx, filter, page)
}

func (q *bookingQueriesImpl) ListByField(ctx context.Context, actor access.Actor, fieldID uuid.UUID, filter BookingFilter, page PageRequest) (*BookingPage, error) {
	f, err := q.fields.FindByID(ctx, fieldID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}
	if err := access.Authorize(actor, []uuid.UUID{f.OwnerID}, user.RoleOwner); err != nil {
		return nil, err
	}
	filter.FieldID = &fieldID
	filter.UserID = nil
	return q.list(ctx, filter, page)
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter BookingFilter, page PageRequest) (*BookingPage, error) {
	page = page.Normalize()
	items, err := q.store.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &BookingPage{Bookings: items, Pagination: NewPagination(page, total)}, nil
}
