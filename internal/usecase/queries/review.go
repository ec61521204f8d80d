package queries

import (
	"context"
	"time"

	"field-booking/internal/domain/field"
	"field-booking/internal/infra"

	"github.com/google/uuid"
)

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type FieldRatingStats struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewPage struct {
	Reviews    []*ReviewListItem `json:"reviews"`
	Stats      FieldRatingStats  `json:"stats"`
	Pagination Pagination        `json:"pagination"`
}

//go:generate mockgen -source=review.go -destination=../../mock/queries/review_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type ReviewReadStore interface {
	FindByField(ctx context.Context, fieldID uuid.UUID, limit, offset int32) ([]*ReviewListItem, error)
	GetFieldRatingStats(ctx context.Context, fieldID uuid.UUID) (*FieldRatingStats, error)
}

type ReviewQueries interface {
	ListByField(ctx context.Context, fieldID uuid.UUID, page PageRequest) (*ReviewPage, error)
}

type reviewQueriesImpl struct {
	repo   ReviewReadStore
	fields FieldReadStore
}

func NewReviewQueries(repo ReviewReadStore, fields FieldReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, fields: fields}
}

func (q *reviewQueriesImpl) ListByField(ctx context.Context, fieldID uuid.UUID, page PageRequest) (*ReviewPage, error) {
	if _, err := q.fields.FindByID(ctx, fieldID); err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}

	page = page.Normalize()
	rows, err := q.repo.FindByField(ctx, fieldID, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	stats, err := q.repo.GetFieldRatingStats(ctx, fieldID)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &ReviewPage{
		Reviews:    rows,
		Stats:      *stats,
		Pagination: NewPagination(page, stats.TotalReviews),
	}, nil
}
