package converter

import (
	"field-booking/internal/domain/review"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
)

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, err
	}
	return review.Reconstruct(row.ID, row.UserID, row.FieldID, rating, comment, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
