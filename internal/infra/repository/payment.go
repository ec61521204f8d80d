package repository

import (
	"context"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/payment"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=payment.go -destination=../../mock/repository/payment_mock.go -package=repositorymock
type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if _, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to create payment", err), infra.Outcomes{
			infra.KindForeignKeyViolated: booking.ErrNotFound,
		})
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	_, err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		ID:          p.ID(),
		Status:      p.Status().String(),
		CompletedAt: pgconv.TimePtrToPgtype(p.CompletedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to update payment status", err), infra.Outcomes{
			infra.KindNotFound: payment.ErrNotFound,
		})
	}
	return nil
}
