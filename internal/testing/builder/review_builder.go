//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/review"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	FieldID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		FieldID:   uuid.New(),
		Rating:    5,
		Comment:   "Great lights and a clean pitch",
		CreatedAt: time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(r.UserID, r.FieldID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:        uuid.New(),
		FieldID:   r.FieldID,
		UserID:    r.UserID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt),
	}
}
