package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// A club is a user that owns at least one field.
const clubsCTE = `WITH clubs AS (
    SELECT u.id, u.name, u.email, u.phone,
           COUNT(f.id)::bigint AS total_fields,
           (SELECT COUNT(*) FROM bookings b JOIN fields bf ON bf.id = b.field_id
             WHERE bf.owner_id = u.id)::bigint AS total_bookings,
           (SELECT COUNT(*) FROM reviews r JOIN fields rf ON rf.id = r.field_id
             WHERE rf.owner_id = u.id)::bigint AS total_reviews,
           (SELECT COALESCE(AVG(r.rating), 0) FROM reviews r JOIN fields rf ON rf.id = r.field_id
             WHERE rf.owner_id = u.id)::float8 AS average_rating
    FROM users u
    JOIN fields f ON f.owner_id = u.id
    GROUP BY u.id, u.name, u.email, u.phone
)
`

const clubColumns = `c.id, c.name, c.email, c.phone, c.total_fields, c.total_bookings, c.total_reviews, c.average_rating`

type ClubRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	TotalFields   int64     `json:"total_fields"`
	TotalBookings int64     `json:"total_bookings"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
}

func scanClub(row interface{ Scan(...any) error }) (ClubRow, error) {
	var i ClubRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.TotalFields,
		&i.TotalBookings,
		&i.TotalReviews,
		&i.AverageRating,
	)
	return i, err
}

func collectClubs(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
	Close()
}) ([]ClubRow, error) {
	defer rows.Close()
	items := []ClubRow{}
	for rows.Next() {
		i, err := scanClub(rows)
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

const getClub = `-- name: GetClub :one
` + clubsCTE + `SELECT ` + clubColumns + `,
       (SELECT COUNT(DISTINCT b.team_id) FROM bookings b JOIN fields bf ON bf.id = b.field_id
         WHERE bf.owner_id = c.id AND b.team_id IS NOT NULL)::bigint AS registered_teams
FROM clubs c
WHERE c.id = $1`

type GetClubRow struct {
	ClubRow
	RegisteredTeams int64 `json:"registered_teams"`
}

func (q *Queries) GetClub(ctx context.Context, db DBTX, ownerID uuid.UUID) (GetClubRow, error) {
	var i GetClubRow
	err := db.QueryRow(ctx, getClub, ownerID).Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.TotalFields,
		&i.TotalBookings,
		&i.TotalReviews,
		&i.AverageRating,
		&i.RegisteredTeams,
	)
	return i, err
}

const listClubFields = `-- name: ListClubFields :many
SELECT f.id, f.name, f.location, f.governorate, f.price_per_hour,
       (SELECT COUNT(*) FROM bookings b WHERE b.field_id = f.id)::bigint AS bookings_count,
       (SELECT COUNT(*) FROM reviews r WHERE r.field_id = f.id)::bigint AS reviews_count,
       (SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.field_id = f.id)::float8 AS average_rating
FROM fields f
WHERE f.owner_id = $1
ORDER BY f.name, f.id`

type ListClubFieldsRow struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	Governorate   string         `json:"governorate"`
	PricePerHour  pgtype.Numeric `json:"price_per_hour"`
	BookingsCount int64          `json:"bookings_count"`
	ReviewsCount  int64          `json:"reviews_count"`
	AverageRating float64        `json:"average_rating"`
}

func (q *Queries) ListClubFields(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]ListClubFieldsRow, error) {
	rows, err := db.Query(ctx, listClubFields, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListClubFieldsRow{}
	for rows.Next() {
		var i ListClubFieldsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Location,
			&i.Governorate,
			&i.PricePerHour,
			&i.BookingsCount,
			&i.ReviewsCount,
			&i.AverageRating,
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

const clubFilter = `
WHERE ($1::text IS NULL OR c.name ILIKE '%' || $1::text || '%')
  AND ($2::text IS NULL OR EXISTS (
        SELECT 1 FROM fields g WHERE g.owner_id = c.id AND lower(g.governorate) = lower($2::text)))
  AND ($3::float8 IS NULL OR c.average_rating >= $3::float8)`

const searchClubs = `-- name: SearchClubs :many
` + clubsCTE + `SELECT ` + clubColumns + `
FROM clubs c` + clubFilter + `
ORDER BY
    CASE WHEN $4::text = 'name' AND NOT $5::bool THEN lower(c.name) END ASC,
    CASE WHEN $4::text = 'name' AND $5::bool THEN lower(c.name) END DESC,
    CASE WHEN $4::text = 'rating' AND NOT $5::bool THEN c.average_rating END ASC,
    CASE WHEN $4::text = 'rating' AND $5::bool THEN c.average_rating END DESC,
    c.id
LIMIT $6 OFFSET $7`

type ClubFilterParams struct {
	Name        pgtype.Text   `json:"name"`
	Governorate pgtype.Text   `json:"governorate"`
	MinRating   pgtype.Float8 `json:"min_rating"`
}

type SearchClubsParams struct {
	ClubFilterParams
	SortBy string `json:"sort_by"`
	Desc   bool   `json:"desc"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) SearchClubs(ctx context.Context, db DBTX, arg SearchClubsParams) ([]ClubRow, error) {
	rows, err := db.Query(ctx, searchClubs,
		arg.Name,
		arg.Governorate,
		arg.MinRating,
		arg.SortBy,
		arg.Desc,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	return collectClubs(rows)
}

const countClubs = `-- name: CountClubs :one
` + clubsCTE + `SELECT COUNT(*) FROM clubs c` + clubFilter

func (q *Queries) CountClubs(ctx context.Context, db DBTX, arg ClubFilterParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countClubs, arg.Name, arg.Governorate, arg.MinRating).Scan(&count)
	return count, err
}

const listTopRatedClubs = `-- name: ListTopRatedClubs :many
` + clubsCTE + `SELECT ` + clubColumns + `
FROM clubs c
ORDER BY c.average_rating DESC, c.total_reviews DESC, c.id
LIMIT $1`

func (q *Queries) ListTopRatedClubs(ctx context.Context, db DBTX, limit int32) ([]ClubRow, error) {
	rows, err := db.Query(ctx, listTopRatedClubs, limit)
	if err != nil {
		return nil, err
	}
	return collectClubs(rows)
}
