package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, booking_id, user_id, amount, currency, method, transaction_id, status, completed_at, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (Payments, error) {
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.Amount,
		&i.Currency,
		&i.Method,
		&i.TransactionID,
		&i.Status,
		&i.CompletedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	ID            uuid.UUID          `json:"id"`
	BookingID     uuid.UUID          `json:"booking_id"`
	UserID        uuid.UUID          `json:"user_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	Currency      string             `json:"currency"`
	Method        string             `json:"method"`
	TransactionID string             `json:"transaction_id"`
	Status        string             `json:"status"`
	CompletedAt   pgtype.Timestamptz `json:"completed_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (Payments, error) {
	row := db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.UserID,
		arg.Amount,
		arg.Currency,
		arg.Method,
		arg.TransactionID,
		arg.Status,
		arg.CompletedAt,
		arg.CreatedAt,
	)
	return scanPayment(row)
}

const getPaymentByID = `-- name: GetPaymentByID :one
SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

func (q *Queries) GetPaymentByID(ctx context.Context, db DBTX, id uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByID, id))
}

const updatePaymentStatus = `-- name: UpdatePaymentStatus :one
UPDATE payments SET status = $2, completed_at = $3, updated_at = $4 WHERE id = $1
RETURNING ` + paymentColumns

type UpdatePaymentStatusParams struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	CompletedAt pgtype.Timestamptz `json:"completed_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.CompletedAt, arg.UpdatedAt))
}

const hasCompletedPayment = `-- name: HasCompletedPayment :one
SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = 'completed')`

func (q *Queries) HasCompletedPayment(ctx context.Context, db DBTX, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasCompletedPayment, bookingID).Scan(&exists)
	return exists, err
}

const listPaymentsByBooking = `-- name: ListPaymentsByBooking :many
SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at DESC, id`

func (q *Queries) ListPaymentsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Payments, error) {
	rows, err := db.Query(ctx, listPaymentsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payments{}
	for rows.Next() {
		i, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPaymentsByUser = `-- name: ListPaymentsByUser :many
SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

type ListPaymentsByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
	Offset int32     `json:"offset"`
}

func (q *Queries) ListPaymentsByUser(ctx context.Context, db DBTX, arg ListPaymentsByUserParams) ([]Payments, error) {
	rows, err := db.Query(ctx, listPaymentsByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payments{}
	for rows.Next() {
		i, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPaymentsByUser = `-- name: CountPaymentsByUser :one
SELECT COUNT(*) FROM payments WHERE user_id = $1`

func (q *Queries) CountPaymentsByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countPaymentsByUser, userID).Scan(&count)
	return count, err
}
