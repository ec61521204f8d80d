package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const fieldColumns = `id, owner_id, name, location, governorate, description, price_per_hour,
opening_time, closing_time, latitude, longitude, created_at, updated_at`

func scanField(row interface{ Scan(...any) error }) (Fields, error) {
	var i Fields
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Location,
		&i.Governorate,
		&i.Description,
		&i.PricePerHour,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.Latitude,
		&i.Longitude,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createField = `-- name: CreateField :one
INSERT INTO fields (` + fieldColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + fieldColumns

type CreateFieldParams struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Governorate  string             `json:"governorate"`
	Description  string             `json:"description"`
	PricePerHour pgtype.Numeric     `json:"price_per_hour"`
	OpeningTime  pgtype.Time        `json:"opening_time"`
	ClosingTime  pgtype.Time        `json:"closing_time"`
	Latitude     pgtype.Float8      `json:"latitude"`
	Longitude    pgtype.Float8      `json:"longitude"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateField(ctx context.Context, db DBTX, arg CreateFieldParams) (Fields, error) {
	row := db.QueryRow(ctx, createField,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Location,
		arg.Governorate,
		arg.Description,
		arg.PricePerHour,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.Latitude,
		arg.Longitude,
		arg.CreatedAt,
	)
	return scanField(row)
}

const getFieldByID = `-- name: GetFieldByID :one
SELECT ` + fieldColumns + ` FROM fields WHERE id = $1`

func (q *Queries) GetFieldByID(ctx context.Context, db DBTX, id uuid.UUID) (Fields, error) {
	return scanField(db.QueryRow(ctx, getFieldByID, id))
}

const updateField = `-- name: UpdateField :one
UPDATE fields
SET name = $2, location = $3, governorate = $4, description = $5, price_per_hour = $6,
    opening_time = $7, closing_time = $8, latitude = $9, longitude = $10, updated_at = $11
WHERE id = $1
RETURNING ` + fieldColumns

type UpdateFieldParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Governorate  string             `json:"governorate"`
	Description  string             `json:"description"`
	PricePerHour pgtype.Numeric     `json:"price_per_hour"`
	OpeningTime  pgtype.Time        `json:"opening_time"`
	ClosingTime  pgtype.Time        `json:"closing_time"`
	Latitude     pgtype.Float8      `json:"latitude"`
	Longitude    pgtype.Float8      `json:"longitude"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateField(ctx context.Context, db DBTX, arg UpdateFieldParams) (Fields, error) {
	row := db.QueryRow(ctx, updateField,
		arg.ID,
		arg.Name,
		arg.Location,
		arg.Governorate,
		arg.Description,
		arg.PricePerHour,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.Latitude,
		arg.Longitude,
		arg.UpdatedAt,
	)
	return scanField(row)
}

const deleteField = `-- name: DeleteField :execrows
DELETE FROM fields WHERE id = $1`

func (q *Queries) DeleteField(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteField, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listFields = `-- name: ListFields :many
SELECT f.id, f.owner_id, f.name, f.location, f.governorate, f.description, f.price_per_hour,
       f.opening_time, f.closing_time, f.latitude, f.longitude, f.created_at, f.updated_at,
       COALESCE(r.avg_rating, 0)::float8 AS avg_rating, COALESCE(r.review_count, 0)::bigint AS review_count
FROM fields f
LEFT JOIN (
    SELECT field_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count FROM reviews GROUP BY field_id
) r ON r.field_id = f.id
WHERE ($1::text IS NULL OR f.governorate = lower($1::text))
  AND ($2::numeric IS NULL OR f.price_per_hour >= $2::numeric)
  AND ($3::numeric IS NULL OR f.price_per_hour <= $3::numeric)
  AND ($4::text IS NULL OR f.name ILIKE '%' || $4::text || '%' OR f.location ILIKE '%' || $4::text || '%')
  AND ($5::uuid IS NULL OR f.owner_id = $5::uuid)
ORDER BY f.created_at DESC, f.id DESC
LIMIT $6 OFFSET $7`

type ListFieldsParams struct {
	Governorate pgtype.Text    `json:"governorate"`
	MinPrice    pgtype.Numeric `json:"min_price"`
	MaxPrice    pgtype.Numeric `json:"max_price"`
	Search      pgtype.Text    `json:"search"`
	OwnerID     pgtype.UUID    `json:"owner_id"`
	Limit       int32          `json:"limit"`
	Offset      int32          `json:"offset"`
}

type ListFieldsRow struct {
	Fields
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

func (q *Queries) ListFields(ctx context.Context, db DBTX, arg ListFieldsParams) ([]ListFieldsRow, error) {
	rows, err := db.Query(ctx, listFields,
		arg.Governorate,
		arg.MinPrice,
		arg.MaxPrice,
		arg.Search,
		arg.OwnerID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListFieldsRow{}
	for rows.Next() {
		var i ListFieldsRow
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Name,
			&i.Location,
			&i.Governorate,
			&i.Description,
			&i.PricePerHour,
			&i.OpeningTime,
			&i.ClosingTime,
			&i.Latitude,
			&i.Longitude,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.AvgRating,
			&i.ReviewCount,
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

const countFields = `-- name: CountFields :one
SELECT COUNT(*) FROM fields f
WHERE ($1::text IS NULL OR f.governorate = lower($1::text))
  AND ($2::numeric IS NULL OR f.price_per_hour >= $2::numeric)
  AND ($3::numeric IS NULL OR f.price_per_hour <= $3::numeric)
  AND ($4::text IS NULL OR f.name ILIKE '%' || $4::text || '%' OR f.location ILIKE '%' || $4::text || '%')
  AND ($5::uuid IS NULL OR f.owner_id = $5::uuid)`

type CountFieldsParams struct {
	Governorate pgtype.Text    `json:"governorate"`
	MinPrice    pgtype.Numeric `json:"min_price"`
	MaxPrice    pgtype.Numeric `json:"max_price"`
	Search      pgtype.Text    `json:"search"`
	OwnerID     pgtype.UUID    `json:"owner_id"`
}

func (q *Queries) CountFields(ctx context.Context, db DBTX, arg CountFieldsParams) (int64, error) {
	row := db.QueryRow(ctx, countFields, arg.Governorate, arg.MinPrice, arg.MaxPrice, arg.Search, arg.OwnerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listAvailableFields = `-- name: ListAvailableFields :many
SELECT ` + fieldColumns + `
FROM fields f
WHERE f.opening_time <= $2::time AND f.closing_time >= $3::time
  AND ($4::text IS NULL OR f.governorate = lower($4::text))
  AND NOT EXISTS (
      SELECT 1 FROM bookings b
      WHERE b.field_id = f.id AND b.date = $1::date AND b.status <> 'cancelled'
        AND b.start_time < $3::time AND $2::time < b.end_time
  )
ORDER BY f.price_per_hour ASC, f.id ASC
LIMIT $5 OFFSET $6`

type ListAvailableFieldsParams struct {
	Date        pgtype.Date `json:"date"`
	StartTime   pgtype.Time `json:"start_time"`
	EndTime     pgtype.Time `json:"end_time"`
	Governorate pgtype.Text `json:"governorate"`
	Limit       int32       `json:"limit"`
	Offset      int32       `json:"offset"`
}

func (q *Queries) ListAvailableFields(ctx context.Context, db DBTX, arg ListAvailableFieldsParams) ([]Fields, error) {
	rows, err := db.Query(ctx, listAvailableFields,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.Governorate,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Fields{}
	for rows.Next() {
		i, err := scanField(rows)
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
