package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Scope parameters shared by the analytics queries: a NULL owner and user
// means platform-wide, a set owner restricts to that owner's fields and a
// set user restricts to that user's bookings.

const getDashboardStats = `-- name: GetDashboardStats :one
WITH scoped AS (
    SELECT b.id, b.status
    FROM bookings b
    JOIN fields f ON f.id = b.field_id
    WHERE b.date BETWEEN $3::date AND $4::date
      AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
      AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
)
SELECT
    (SELECT COUNT(*) FROM scoped)::bigint AS total_bookings,
    (SELECT COUNT(*) FROM scoped WHERE status = 'pending')::bigint AS pending_bookings,
    (SELECT COUNT(*) FROM scoped WHERE status = 'confirmed')::bigint AS confirmed_bookings,
    (SELECT COUNT(*) FROM scoped WHERE status = 'cancelled')::bigint AS cancelled_bookings,
    (SELECT COUNT(*) FROM scoped WHERE status = 'completed')::bigint AS completed_bookings,
    (SELECT COALESCE(SUM(p.amount), 0) FROM payments p JOIN scoped s ON s.id = p.booking_id
        WHERE p.status = 'completed')::numeric AS revenue,
    (SELECT COUNT(*) FROM fields f WHERE $1::uuid IS NULL OR f.owner_id = $1::uuid)::bigint AS total_fields,
    (SELECT COUNT(*) FROM users)::bigint AS total_users,
    (SELECT COALESCE(AVG(r.rating), 0) FROM reviews r JOIN fields f ON f.id = r.field_id
        WHERE ($1::uuid IS NULL OR f.owner_id = $1::uuid)
          AND ($2::uuid IS NULL OR r.user_id = $2::uuid))::float8 AS average_rating`

type AnalyticsScopeParams struct {
	OwnerID  pgtype.UUID `json:"owner_id"`
	UserID   pgtype.UUID `json:"user_id"`
	FromDate pgtype.Date `json:"from_date"`
	ToDate   pgtype.Date `json:"to_date"`
}

type GetDashboardStatsRow struct {
	TotalBookings     int64          `json:"total_bookings"`
	PendingBookings   int64          `json:"pending_bookings"`
	ConfirmedBookings int64          `json:"confirmed_bookings"`
	CancelledBookings int64          `json:"cancelled_bookings"`
	CompletedBookings int64          `json:"completed_bookings"`
	Revenue           pgtype.Numeric `json:"revenue"`
	TotalFields       int64          `json:"total_fields"`
	TotalUsers        int64          `json:"total_users"`
	AverageRating     float64        `json:"average_rating"`
}

func (q *Queries) GetDashboardStats(ctx context.Context, db DBTX, arg AnalyticsScopeParams) (GetDashboardStatsRow, error) {
	row := db.QueryRow(ctx, getDashboardStats, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate)
	var i GetDashboardStatsRow
	err := row.Scan(
		&i.TotalBookings,
		&i.PendingBookings,
		&i.ConfirmedBookings,
		&i.CancelledBookings,
		&i.CompletedBookings,
		&i.Revenue,
		&i.TotalFields,
		&i.TotalUsers,
		&i.AverageRating,
	)
	return i, err
}

const listTopFields = `-- name: ListTopFields :many
SELECT f.id, f.name,
       COUNT(b.id)::bigint AS booking_count,
       COALESCE(SUM(b.total_price) FILTER (WHERE b.status IN ('confirmed', 'completed')), 0)::numeric AS booked_value
FROM fields f
JOIN bookings b ON b.field_id = f.id
WHERE b.date BETWEEN $3::date AND $4::date
  AND b.status <> 'cancelled'
  AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
GROUP BY f.id, f.name
ORDER BY booking_count DESC, f.name
LIMIT $5`

type ListTopFieldsParams struct {
	AnalyticsScopeParams
	Limit int32 `json:"limit"`
}

type ListTopFieldsRow struct {
	FieldID      uuid.UUID      `json:"field_id"`
	FieldName    string         `json:"field_name"`
	BookingCount int64          `json:"booking_count"`
	BookedValue  pgtype.Numeric `json:"booked_value"`
}

func (q *Queries) ListTopFields(ctx context.Context, db DBTX, arg ListTopFieldsParams) ([]ListTopFieldsRow, error) {
	rows, err := db.Query(ctx, listTopFields, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTopFieldsRow{}
	for rows.Next() {
		var i ListTopFieldsRow
		if err := rows.Scan(&i.FieldID, &i.FieldName, &i.BookingCount, &i.BookedValue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const exportBookings = `-- name: ExportBookings :many
SELECT b.id, b.date, b.start_time, b.end_time, b.total_price, b.status,
       u.name AS user_name, u.email AS user_email, f.name AS field_name
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN fields f ON f.id = b.field_id
WHERE b.date BETWEEN $3::date AND $4::date
  AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
ORDER BY b.date DESC, b.start_time DESC, b.id`

type ExportBookingsRow struct {
	ID         uuid.UUID      `json:"id"`
	Date       pgtype.Date    `json:"date"`
	StartTime  pgtype.Time    `json:"start_time"`
	EndTime    pgtype.Time    `json:"end_time"`
	TotalPrice pgtype.Numeric `json:"total_price"`
	Status     string         `json:"status"`
	UserName   string         `json:"user_name"`
	UserEmail  string         `json:"user_email"`
	FieldName  string         `json:"field_name"`
}

func (q *Queries) ExportBookings(ctx context.Context, db DBTX, arg AnalyticsScopeParams) ([]ExportBookingsRow, error) {
	rows, err := db.Query(ctx, exportBookings, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ExportBookingsRow{}
	for rows.Next() {
		var i ExportBookingsRow
		if err := rows.Scan(
			&i.ID,
			&i.Date,
			&i.StartTime,
			&i.EndTime,
			&i.TotalPrice,
			&i.Status,
			&i.UserName,
			&i.UserEmail,
			&i.FieldName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Trend buckets are date_trunc units; the caller validates the unit.

const listBookingTrends = `-- name: ListBookingTrends :many
SELECT date_trunc($5::text, b.date)::date AS bucket, COUNT(*)::bigint AS bookings
FROM bookings b
JOIN fields f ON f.id = b.field_id
WHERE b.date BETWEEN $3::date AND $4::date
  AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.user_id = $2::uuid)
GROUP BY bucket
ORDER BY bucket`

type TrendParams struct {
	AnalyticsScopeParams
	Unit string `json:"unit"`
}

type ListBookingTrendsRow struct {
	Bucket   pgtype.Date `json:"bucket"`
	Bookings int64       `json:"bookings"`
}

func (q *Queries) ListBookingTrends(ctx context.Context, db DBTX, arg TrendParams) ([]ListBookingTrendsRow, error) {
	rows, err := db.Query(ctx, listBookingTrends, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate, arg.Unit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBookingTrendsRow{}
	for rows.Next() {
		var i ListBookingTrendsRow
		if err := rows.Scan(&i.Bucket, &i.Bookings); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRevenueTrends = `-- name: ListRevenueTrends :many
SELECT date_trunc($5::text, p.completed_at::date)::date AS bucket, SUM(p.amount)::numeric AS revenue
FROM payments p
JOIN bookings b ON b.id = p.booking_id
JOIN fields f ON f.id = b.field_id
WHERE p.status = 'completed'
  AND p.completed_at::date BETWEEN $3::date AND $4::date
  AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::uuid IS NULL OR p.user_id = $2::uuid)
GROUP BY bucket
ORDER BY bucket`

type ListRevenueTrendsRow struct {
	Bucket  pgtype.Date    `json:"bucket"`
	Revenue pgtype.Numeric `json:"revenue"`
}

func (q *Queries) ListRevenueTrends(ctx context.Context, db DBTX, arg TrendParams) ([]ListRevenueTrendsRow, error) {
	rows, err := db.Query(ctx, listRevenueTrends, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate, arg.Unit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListRevenueTrendsRow{}
	for rows.Next() {
		var i ListRevenueTrendsRow
		if err := rows.Scan(&i.Bucket, &i.Revenue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Open hours come from each field's own opening and closing times.
const listFieldPerformance = `-- name: ListFieldPerformance :many
SELECT f.id, f.name,
       (SELECT COUNT(*) FROM bookings b
         WHERE b.field_id = f.id AND b.status <> 'cancelled'
           AND b.date BETWEEN $2::date AND $3::date)::bigint AS total_bookings,
       (SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (b.end_time - b.start_time))), 0) FROM bookings b
         WHERE b.field_id = f.id AND b.status <> 'cancelled'
           AND b.date BETWEEN $2::date AND $3::date)::float8 AS booked_seconds,
       (SELECT COALESCE(SUM(p.amount), 0) FROM payments p JOIN bookings b ON b.id = p.booking_id
         WHERE b.field_id = f.id AND p.status = 'completed'
           AND p.completed_at::date BETWEEN $2::date AND $3::date)::numeric AS revenue,
       (SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.field_id = f.id)::float8 AS average_rating,
       EXTRACT(EPOCH FROM (f.closing_time - f.opening_time))::float8 AS open_seconds_per_day
FROM fields f
WHERE ($1::uuid IS NULL OR f.owner_id = $1::uuid)
ORDER BY f.name, f.id`

type ListFieldPerformanceParams struct {
	OwnerID  pgtype.UUID `json:"owner_id"`
	FromDate pgtype.Date `json:"from_date"`
	ToDate   pgtype.Date `json:"to_date"`
}

type ListFieldPerformanceRow struct {
	FieldID           uuid.UUID      `json:"field_id"`
	FieldName         string         `json:"field_name"`
	TotalBookings     int64          `json:"total_bookings"`
	BookedSeconds     float64        `json:"booked_seconds"`
	Revenue           pgtype.Numeric `json:"revenue"`
	AverageRating     float64        `json:"average_rating"`
	OpenSecondsPerDay float64        `json:"open_seconds_per_day"`
}

func (q *Queries) ListFieldPerformance(ctx context.Context, db DBTX, arg ListFieldPerformanceParams) ([]ListFieldPerformanceRow, error) {
	rows, err := db.Query(ctx, listFieldPerformance, arg.OwnerID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListFieldPerformanceRow{}
	for rows.Next() {
		var i ListFieldPerformanceRow
		if err := rows.Scan(
			&i.FieldID,
			&i.FieldName,
			&i.TotalBookings,
			&i.BookedSeconds,
			&i.Revenue,
			&i.AverageRating,
			&i.OpenSecondsPerDay,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const exportPayments = `-- name: ExportPayments :many
SELECT p.id, p.amount, p.currency, p.method, p.status, p.created_at, p.completed_at,
       u.name AS user_name, u.email AS user_email, f.name AS field_name
FROM payments p
JOIN users u ON u.id = p.user_id
JOIN bookings b ON b.id = p.booking_id
JOIN fields f ON f.id = b.field_id
WHERE p.created_at::date BETWEEN $3::date AND $4::date
  AND ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::uuid IS NULL OR p.user_id = $2::uuid)
ORDER BY p.created_at DESC, p.id`

type ExportPaymentsRow struct {
	ID          uuid.UUID          `json:"id"`
	Amount      pgtype.Numeric     `json:"amount"`
	Currency    string             `json:"currency"`
	Method      string             `json:"method"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	CompletedAt pgtype.Timestamptz `json:"completed_at"`
	UserName    string             `json:"user_name"`
	UserEmail   string             `json:"user_email"`
	FieldName   string             `json:"field_name"`
}

func (q *Queries) ExportPayments(ctx context.Context, db DBTX, arg AnalyticsScopeParams) ([]ExportPaymentsRow, error) {
	rows, err := db.Query(ctx, exportPayments, arg.OwnerID, arg.UserID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ExportPaymentsRow{}
	for rows.Next() {
		var i ExportPaymentsRow
		if err := rows.Scan(
			&i.ID,
			&i.Amount,
			&i.Currency,
			&i.Method,
			&i.Status,
			&i.CreatedAt,
			&i.CompletedAt,
			&i.UserName,
			&i.UserEmail,
			&i.FieldName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const exportUsers = `-- name: ExportUsers :many
SELECT u.id, u.name, u.email, u.phone, u.role, u.created_at,
       (SELECT COUNT(*) FROM bookings b WHERE b.user_id = u.id)::bigint AS total_bookings,
       (SELECT COUNT(*) FROM payments p WHERE p.user_id = u.id)::bigint AS total_payments,
       (SELECT COUNT(*) FROM reviews r WHERE r.user_id = u.id)::bigint AS total_reviews
FROM users u
ORDER BY u.created_at, u.id`

type ExportUsersRow struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Role          string             `json:"role"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	TotalBookings int64              `json:"total_bookings"`
	TotalPayments int64              `json:"total_payments"`
	TotalReviews  int64              `json:"total_reviews"`
}

func (q *Queries) ExportUsers(ctx context.Context, db DBTX) ([]ExportUsersRow, error) {
	rows, err := db.Query(ctx, exportUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ExportUsersRow{}
	for rows.Next() {
		var i ExportUsersRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Role,
			&i.CreatedAt,
			&i.TotalBookings,
			&i.TotalPayments,
			&i.TotalReviews,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
