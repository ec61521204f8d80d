//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/team"
	"field-booking/internal/infra/repository"
	"field-booking/internal/infra/sqlc"
	repositorymock "field-booking/internal/mock/repository"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTeamRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: team and leader stored together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTeamWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTeamRepository(mockQueries, mockDB)

		tm, leader, err := team.New(uuid.New(), "Friday Five", "", now)
		require.NoError(t, err)

		gomock.InOrder(
			mockQueries.EXPECT().CreateTeam(ctx, mockDB, gomock.Any()).Return(sqlc.Teams{ID: tm.ID()}, nil),
			mockQueries.EXPECT().AddTeamMember(ctx, mockDB, sqlc.AddTeamMemberParams{
				TeamID:   tm.ID(),
				UserID:   tm.LeaderID(),
				Role:     "leader",
				JoinedAt: sqlcTime(now),
			}).Return(nil),
		)

		assert.NoError(t, repo.Create(ctx, mockDB, tm, leader))
	})

	t.Run("error: team insert fails and no member is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockTeamWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTeamRepository(mockQueries, mockDB)

		tm, leader, err := team.New(uuid.New(), "Friday Five", "", now)
		require.NoError(t, err)

		mockQueries.EXPECT().CreateTeam(ctx, mockDB, gomock.Any()).Return(sqlc.Teams{}, errConnectionLost)

		err = repo.Create(ctx, mockDB, tm, leader)
		assert.Equal(t, errs.KindStorage, errs.KindOf(err))
	})
}

func TestTeamRepository_AddMember(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr *errs.Rejection
	}{
		{name: "success: member added"},
		{name: "error: already a member", queryErr: &pgconn.PgError{Code: "23505"}, expectedErr: team.ErrAlreadyMember},
		{name: "error: team missing", queryErr: &pgconn.PgError{Code: "23503"}, expectedErr: team.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockTeamWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTeamRepository(mockQueries, mockDB)

			m := team.Member{TeamID: uuid.New(), UserID: uuid.New(), Role: team.MemberRoleMember, JoinedAt: time.Now()}
			mockQueries.EXPECT().AddTeamMember(ctx, mockDB, gomock.Any()).Return(tc.queryErr)

			err := repo.AddMember(ctx, mockDB, m)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestTeamRepository_RemoveMember(t *testing.T) {
	ctx := context.Background()
	teamID, userID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockTeamWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTeamRepository(mockQueries, mockDB)

	params := sqlc.RemoveTeamMemberParams{TeamID: teamID, UserID: userID}
	mockQueries.EXPECT().RemoveTeamMember(ctx, mockDB, params).Return(int64(1), nil)
	mockQueries.EXPECT().RemoveTeamMember(ctx, mockDB, params).Return(int64(0), nil)

	assert.NoError(t, repo.RemoveMember(ctx, mockDB, teamID, userID))
	assert.ErrorIs(t, repo.RemoveMember(ctx, mockDB, teamID, userID), team.ErrNotMember)
}

func TestTeamRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockTeamWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTeamRepository(mockQueries, mockDB)
	tm := team.Reconstruct(uuid.New(), "Sunday Seven", "", uuid.New(), now)

	params := sqlc.UpdateTeamParams{ID: tm.ID(), Name: "Sunday Seven", Description: ""}
	mockQueries.EXPECT().UpdateTeam(ctx, mockDB, params).Return(int64(1), nil)
	mockQueries.EXPECT().UpdateTeam(ctx, mockDB, params).Return(int64(0), nil)
	mockQueries.EXPECT().DeleteTeam(ctx, mockDB, tm.ID()).Return(int64(0), errConnectionLost)
	mockQueries.EXPECT().DeleteTeam(ctx, mockDB, tm.ID()).Return(int64(0), nil)

	assert.NoError(t, repo.Update(ctx, mockDB, tm))
	assert.ErrorIs(t, repo.Update(ctx, mockDB, tm), team.ErrNotFound)
	assert.Equal(t, errs.KindStorage, errs.KindOf(repo.Delete(ctx, mockDB, tm.ID())))
	assert.ErrorIs(t, repo.Delete(ctx, mockDB, tm.ID()), team.ErrNotFound)
}
