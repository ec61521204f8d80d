package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../mock/readstore/payment_mock.go -package=readstoremock
type PaymentReadQueries interface {
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ListPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	ListPaymentsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsByUserParams) ([]sqlc.Payments, error)
	CountPaymentsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get payment by id", err)
	}
	v, err := toPaymentView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *PaymentReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by booking", err)
	}
	return toPaymentViews(rows)
}

func (r *PaymentReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByUser(ctx, r.db, sqlc.ListPaymentsByUserParams{UserID: userID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	return toPaymentViews(rows)
}

func (r *PaymentReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPaymentsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count payments by user", err)
	}
	return n, nil
}

func toPaymentViews(rows []sqlc.Payments) ([]*queries.PaymentView, error) {
	out := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		v, err := toPaymentView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment", err, infra.KindDBFailure)
		}
		out = append(out, v)
	}
	return out, nil
}

func toPaymentView(row sqlc.Payments) (*queries.PaymentView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return &queries.PaymentView{
		ID:            row.ID,
		BookingID:     row.BookingID,
		UserID:        row.UserID,
		Amount:        amount,
		Currency:      row.Currency,
		Method:        row.Method,
		TransactionID: row.TransactionID,
		Status:        row.Status,
		CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
