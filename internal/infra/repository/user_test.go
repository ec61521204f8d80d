//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository"
	"field-booking/internal/infra/sqlc"
	repositorymock "field-booking/internal/mock/repository"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/testing/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr *errs.Rejection
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: user created"},
		{
			name:        "error: email taken",
			queryErr:    &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expectedErr: user.ErrAlreadyExists,
			expectKind:  infra.KindDuplicateKey,
		},
		{name: "error: database error occurs", queryErr: errConnectionLost, expectedErr: errs.ErrStorage, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateUser(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
					assert.Equal(t, "player@example.com", arg.Email)
					assert.Equal(t, "user", arg.Role)
					return sqlc.Users{}, tc.queryErr
				})

			err = repo.Create(ctx, mockDB, u)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUserRepository(mockQueries, mockDB)

	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	changedAt := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	u.ChangePasswordHash("new-hash", changedAt)

	mockQueries.EXPECT().UpdateUserPassword(ctx, mockDB, sqlc.UpdateUserPasswordParams{
		ID:           u.ID(),
		PasswordHash: "new-hash",
		UpdatedAt:    pgconv.TimeToPgtype(changedAt),
	}).Return(int64(1), nil)
	mockQueries.EXPECT().UpdateUserPassword(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	assert.NoError(t, repo.UpdatePassword(ctx, mockDB, u))
	assert.ErrorIs(t, repo.UpdatePassword(ctx, mockDB, u), user.ErrNotFound)
}

func sqlcTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}
