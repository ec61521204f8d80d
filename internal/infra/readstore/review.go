package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=../../mock/readstore/review_mock.go -package=readstoremock
type ReviewReadQueries interface {
	ListReviewsByField(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByFieldParams) ([]sqlc.ListReviewsByFieldRow, error)
	GetFieldRatingStats(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) (sqlc.GetFieldRatingStatsRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByField(ctx context.Context, fieldID uuid.UUID, limit, offset int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByField(ctx, r.db, sqlc.ListReviewsByFieldParams{
		FieldID: fieldID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by field", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:        row.ID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) GetFieldRatingStats(ctx context.Context, fieldID uuid.UUID) (*queries.FieldRatingStats, error) {
	row, err := r.queries.GetFieldRatingStats(ctx, r.db, fieldID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get field rating stats", err)
	}
	return &queries.FieldRatingStats{
		TotalReviews:  row.TotalReviews,
		AverageRating: row.AverageRating,
	}, nil
}
