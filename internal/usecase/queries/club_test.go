//go:build unit

package queries_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/club"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClubQueries_Get(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name        string
		storeErr    error
		expectedErr error
	}{
		{name: "found"},
		{name: "not a club", storeErr: notFound, expectedErr: club.ErrNotFound},
		{name: "storage fault", storeErr: storageFault, expectedErr: errs.ErrStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockClubReadStore(ctrl)
			var view *queries.ClubDetailView
			if tc.storeErr == nil {
				view = &queries.ClubDetailView{ClubView: queries.ClubView{ID: ownerID}}
			}
			store.EXPECT().FindByOwner(ctx, ownerID).Return(view, tc.storeErr)

			got, err := queries.NewClubQueries(store).Get(ctx, ownerID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestClubQueries_Search(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockClubReadStore(ctrl)
	want := queries.ClubFilter{Name: "arena", SortBy: club.SortByID}
	items := []*queries.ClubView{{ID: uuid.New(), Name: "Giza Arena"}}
	store.EXPECT().Search(ctx, want, int32(10), int32(0)).Return(items, nil)
	store.EXPECT().Count(ctx, want).Return(int64(1), nil)

	got, err := queries.NewClubQueries(store).Search(ctx, queries.ClubFilter{Name: "arena"}, queries.PageRequest{PerPage: 10})

	require.NoError(t, err)
	assert.Equal(t, items, got.Clubs)
	assert.Equal(t, 1, got.Pagination.TotalPages)
}

func TestClubQueries_TopRatedClampsLimit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockClubReadStore(ctrl)
	store.EXPECT().TopRated(ctx, int32(club.DefaultTopRated)).Return([]*queries.ClubView{}, nil)
	store.EXPECT().TopRated(ctx, int32(3)).Return([]*queries.ClubView{}, nil)

	q := queries.NewClubQueries(store)
	_, err := q.TopRated(ctx, 500)
	require.NoError(t, err)
	_, err = q.TopRated(ctx, 3)
	require.NoError(t, err)
}
