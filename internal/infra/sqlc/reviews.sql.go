package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (id, field_id, user_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, field_id, user_id, rating, comment, created_at`

type CreateReviewParams struct {
	ID        uuid.UUID          `json:"id"`
	FieldID   uuid.UUID          `json:"field_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Rating    int32              `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (Reviews, error) {
	row := db.QueryRow(ctx, createReview, arg.ID, arg.FieldID, arg.UserID, arg.Rating, arg.Comment, arg.CreatedAt)
	var i Reviews
	err := row.Scan(&i.ID, &i.FieldID, &i.UserID, &i.Rating, &i.Comment, &i.CreatedAt)
	return i, err
}

const getReviewByID = `-- name: GetReviewByID :one
SELECT id, field_id, user_id, rating, comment, created_at FROM reviews WHERE id = $1`

func (q *Queries) GetReviewByID(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	row := db.QueryRow(ctx, getReviewByID, id)
	var i Reviews
	err := row.Scan(&i.ID, &i.FieldID, &i.UserID, &i.Rating, &i.Comment, &i.CreatedAt)
	return i, err
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listReviewsByField = `-- name: ListReviewsByField :many
SELECT r.id, r.field_id, r.user_id, r.rating, r.comment, r.created_at, u.name AS user_name
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.field_id = $1
ORDER BY r.created_at DESC, r.id
LIMIT $2 OFFSET $3`

type ListReviewsByFieldParams struct {
	FieldID uuid.UUID `json:"field_id"`
	Limit   int32     `json:"limit"`
	Offset  int32     `json:"offset"`
}

type ListReviewsByFieldRow struct {
	Reviews
	UserName string `json:"user_name"`
}

func (q *Queries) ListReviewsByField(ctx context.Context, db DBTX, arg ListReviewsByFieldParams) ([]ListReviewsByFieldRow, error) {
	rows, err := db.Query(ctx, listReviewsByField, arg.FieldID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListReviewsByFieldRow{}
	for rows.Next() {
		var i ListReviewsByFieldRow
		if err := rows.Scan(&i.ID, &i.FieldID, &i.UserID, &i.Rating, &i.Comment, &i.CreatedAt, &i.UserName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getFieldRatingStats = `-- name: GetFieldRatingStats :one
SELECT COUNT(*)::bigint AS total_reviews, COALESCE(AVG(rating), 0)::float8 AS average_rating
FROM reviews WHERE field_id = $1`

type GetFieldRatingStatsRow struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

func (q *Queries) GetFieldRatingStats(ctx context.Context, db DBTX, fieldID uuid.UUID) (GetFieldRatingStatsRow, error) {
	var i GetFieldRatingStatsRow
	err := db.QueryRow(ctx, getFieldRatingStats, fieldID).Scan(&i.TotalReviews, &i.AverageRating)
	return i, err
}

const updateReview = `-- name: UpdateReview :execrows
UPDATE reviews SET rating = $2, comment = $3 WHERE id = $1`

type UpdateReviewParams struct {
	ID      uuid.UUID `json:"id"`
	Rating  int32     `json:"rating"`
	Comment string    `json:"comment"`
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	result, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
