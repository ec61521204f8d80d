package converter

import (
	"field-booking/internal/domain/payment"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		UserID:        p.UserID(),
		Amount:        pgconv.NumericFromDecimal(p.Amount()),
		Currency:      p.Currency(),
		Method:        p.Method().String(),
		TransactionID: p.TransactionID(),
		Status:        p.Status().String(),
		CompletedAt:   pgconv.TimePtrToPgtype(p.CompletedAt()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(row.Method)
	if err != nil {
		return nil, err
	}
	return payment.Reconstruct(
		row.ID,
		row.BookingID,
		row.UserID,
		amount,
		row.Currency,
		method,
		row.TransactionID,
		status,
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
