package repository

import (
	"context"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/review"
	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=../../mock/repository/review_mock.go -package=repositorymock
type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rv *review.Review) error {
	_, err := r.queries.CreateReview(ctx, tx, sqlc.CreateReviewParams{
		ID:        rv.ID(),
		FieldID:   rv.FieldID(),
		UserID:    rv.UserID(),
		Rating:    int32(rv.Rating().Value()),
		Comment:   rv.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(rv.CreatedAt()),
	})
	if err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to create review", err), infra.Outcomes{
			infra.KindDuplicateKey:       review.ErrReviewAlreadyExists,
			infra.KindForeignKeyViolated: field.ErrNotFound,
		})
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rv *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, tx, sqlc.UpdateReviewParams{
		ID:      rv.ID(),
		Rating:  int32(rv.Rating().Value()),
		Comment: rv.Comment().String(),
	})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to update review", err))
	}
	if n == 0 {
		return review.ErrNotFound.Because(infra.WrapRepoErr("review not found", nil, infra.KindNotFound))
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, id)
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to delete review", err))
	}
	if n == 0 {
		return review.ErrNotFound.Because(infra.WrapRepoErr("review not found", nil, infra.KindNotFound))
	}
	return nil
}
