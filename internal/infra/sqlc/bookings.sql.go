package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, field_id, user_id, team_id, date, start_time, end_time, total_price, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.FieldID,
		&i.UserID,
		&i.TeamID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.TotalPrice,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookings(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
	Close()
}) ([]Bookings, error) {
	defer rows.Close()
	items := []Bookings{}
	for rows.Next() {
		i, err := scanBooking(rows)
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

const lockFieldDate = `-- name: LockFieldDate :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::uuid::text || ':' || $2::date::text, 0))`

type LockFieldDateParams struct {
	FieldID uuid.UUID   `json:"field_id"`
	Date    pgtype.Date `json:"date"`
}

// LockFieldDate serializes writers of one field's day until the surrounding
// transaction ends.
func (q *Queries) LockFieldDate(ctx context.Context, db DBTX, arg LockFieldDateParams) error {
	_, err := db.Exec(ctx, lockFieldDate, arg.FieldID, arg.Date)
	return err
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID         uuid.UUID          `json:"id"`
	FieldID    uuid.UUID          `json:"field_id"`
	UserID     uuid.UUID          `json:"user_id"`
	TeamID     pgtype.UUID        `json:"team_id"`
	Date       pgtype.Date        `json:"date"`
	StartTime  pgtype.Time        `json:"start_time"`
	EndTime    pgtype.Time        `json:"end_time"`
	TotalPrice pgtype.Numeric     `json:"total_price"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.FieldID,
		arg.UserID,
		arg.TeamID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.TotalPrice,
		arg.Status,
		arg.CreatedAt,
	)
	return scanBooking(row)
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const listActiveBookingsForFieldDate = `-- name: ListActiveBookingsForFieldDate :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE field_id = $1 AND date = $2 AND status <> 'cancelled'
ORDER BY start_time, end_time, id`

type ListActiveBookingsForFieldDateParams struct {
	FieldID uuid.UUID   `json:"field_id"`
	Date    pgtype.Date `json:"date"`
}

func (q *Queries) ListActiveBookingsForFieldDate(ctx context.Context, db DBTX, arg ListActiveBookingsForFieldDateParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listActiveBookingsForFieldDate, arg.FieldID, arg.Date)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const updateBookingStatus = `-- name: UpdateBookingStatus :one
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1
RETURNING ` + bookingColumns

type UpdateBookingStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt))
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const bookingViewSelect = `SELECT b.id, b.field_id, b.user_id, b.team_id, b.date, b.start_time, b.end_time,
       b.total_price, b.status, b.created_at, b.updated_at,
       f.name AS field_name, f.owner_id AS field_owner_id, u.name AS user_name, u.email AS user_email
FROM bookings b
JOIN fields f ON f.id = b.field_id
JOIN users u ON u.id = b.user_id`

type BookingViewRow struct {
	Bookings
	FieldName    string    `json:"field_name"`
	FieldOwnerID uuid.UUID `json:"field_owner_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
}

func scanBookingView(row interface{ Scan(...any) error }) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.FieldID,
		&i.UserID,
		&i.TeamID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.TotalPrice,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.FieldName,
		&i.FieldOwnerID,
		&i.UserName,
		&i.UserEmail,
	)
	return i, err
}

func collectBookingViews(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
	Close()
}) ([]BookingViewRow, error) {
	defer rows.Close()
	items := []BookingViewRow{}
	for rows.Next() {
		i, err := scanBookingView(rows)
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

const getBookingViewByID = `-- name: GetBookingViewByID :one
` + bookingViewSelect + `
WHERE b.id = $1`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

const bookingFilter = `
WHERE ($1::uuid IS NULL OR b.user_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.field_id = $2::uuid)
  AND ($3::text IS NULL OR b.status = $3::text)
  AND ($4::date IS NULL OR b.date = $4::date)
  AND ($5::uuid IS NULL OR b.team_id = $5::uuid)`

const listBookings = `-- name: ListBookings :many
` + bookingViewSelect + bookingFilter + `
ORDER BY b.date DESC, b.start_time DESC, b.id
LIMIT $6 OFFSET $7`

type ListBookingsParams struct {
	UserID  pgtype.UUID `json:"user_id"`
	FieldID pgtype.UUID `json:"field_id"`
	Status  pgtype.Text `json:"status"`
	Date    pgtype.Date `json:"date"`
	TeamID  pgtype.UUID `json:"team_id"`
	Limit   int32       `json:"limit"`
	Offset  int32       `json:"offset"`
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.UserID,
		arg.FieldID,
		arg.Status,
		arg.Date,
		arg.TeamID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const countBookings = `-- name: CountBookings :one
SELECT COUNT(*) FROM bookings b` + bookingFilter

type CountBookingsParams struct {
	UserID  pgtype.UUID `json:"user_id"`
	FieldID pgtype.UUID `json:"field_id"`
	Status  pgtype.Text `json:"status"`
	Date    pgtype.Date `json:"date"`
	TeamID  pgtype.UUID `json:"team_id"`
}

func (q *Queries) CountBookings(ctx context.Context, db DBTX, arg CountBookingsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countBookings, arg.UserID, arg.FieldID, arg.Status, arg.Date, arg.TeamID).Scan(&count)
	return count, err
}
