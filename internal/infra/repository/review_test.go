//go:build unit

package repository_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/review"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository"
	"field-booking/internal/infra/sqlc"
	repositorymock "field-booking/internal/mock/repository"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/testing/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockReviewWriteQueries, *review.Review, sqlc.DBTX)
		expectedErr *errs.Rejection
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: review created",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error) {
						assert.Equal(t, rev.ID(), arg.ID)
						assert.Equal(t, int32(5), arg.Rating)
						return sqlc.Reviews{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: second review of the same field",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(sqlc.Reviews{}, dup)
			},
			expectedErr: review.ErrReviewAlreadyExists,
			expectKind:  infra.KindDuplicateKey,
		},
		{
			name: "error: field does not exist",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(sqlc.Reviews{}, &pgconn.PgError{Code: "23503"})
			},
			expectedErr: field.ErrNotFound,
			expectKind:  infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(sqlc.Reviews{}, errConnectionLost)
			},
			expectedErr: errs.ErrStorage,
			expectKind:  infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedErr == nil {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.ErrorIs(t, actualError, tc.expectedErr)
			assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	testCases := []struct {
		name        string
		affected    int64
		queryErr    error
		expectedErr *errs.Rejection
	}{
		{name: "success: review deleted", affected: 1},
		{name: "error: review not found", affected: 0, expectedErr: review.ErrNotFound},
		{name: "error: database error occurs", queryErr: errConnectionLost, expectedErr: errs.ErrStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteReview(ctx, mockDB, reviewID).Return(tc.affected, tc.queryErr)

			actualError := repo.Delete(ctx, mockDB, reviewID)

			if tc.expectedErr == nil {
				assert.NoError(t, actualError)
				return
			}
			assert.ErrorIs(t, actualError, tc.expectedErr)
		})
	}
}

func TestReviewRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		affected    int64
		queryErr    error
		expectedErr *errs.Rejection
	}{
		{name: "success: review updated", affected: 1},
		{name: "error: review deleted meanwhile", affected: 0, expectedErr: review.ErrNotFound},
		{name: "error: database error occurs", queryErr: errConnectionLost, expectedErr: errs.ErrStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			rv, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)
			mockQueries.EXPECT().UpdateReview(ctx, mockDB, sqlc.UpdateReviewParams{
				ID:      rv.ID(),
				Rating:  int32(rv.Rating().Value()),
				Comment: rv.Comment().String(),
			}).Return(tc.affected, tc.queryErr)

			actualError := repo.Update(ctx, mockDB, rv)

			if tc.expectedErr == nil {
				assert.NoError(t, actualError)
				return
			}
			assert.ErrorIs(t, actualError, tc.expectedErr)
		})
	}
}
