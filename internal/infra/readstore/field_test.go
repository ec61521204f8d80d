//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"
	"field-booking/internal/infra/readstore"
	"field-booking/internal/infra/sqlc"
	readstoremock "field-booking/internal/mock/readstore"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/testing/builder"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFieldReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	fb := builder.NewFieldBuilder()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockFieldReadQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
		verify     func(*testing.T, *queries.FieldView)
	}{
		{
			name: "success: view carries rating stats",
			setupMock: func(mock *readstoremock.MockFieldReadQueries, db sqlc.DBTX) {
				mock.EXPECT().GetFieldByID(ctx, db, fb.ID).Return(fb.BuildInfra(), nil)
				mock.EXPECT().GetFieldRatingStats(ctx, db, fb.ID).Return(sqlc.GetFieldRatingStatsRow{TotalReviews: 4, AverageRating: 4.5}, nil)
			},
			verify: func(t *testing.T, v *queries.FieldView) {
				assert.Equal(t, fb.ID, v.ID)
				assert.Equal(t, "08:00", v.OpeningTime)
				assert.Equal(t, "22:00", v.ClosingTime)
				assert.True(t, decimal.NewFromInt(100).Equal(v.PricePerHour))
				assert.Equal(t, int64(4), v.ReviewCount)
				assert.InDelta(t, 4.5, v.AverageRating, 0.0001)
			},
		},
		{
			name: "error: field not found",
			setupMock: func(mock *readstoremock.MockFieldReadQueries, db sqlc.DBTX) {
				mock.EXPECT().GetFieldByID(ctx, db, fb.ID).Return(sqlc.Fields{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: stats query fails",
			setupMock: func(mock *readstoremock.MockFieldReadQueries, db sqlc.DBTX) {
				mock.EXPECT().GetFieldByID(ctx, db, fb.ID).Return(fb.BuildInfra(), nil)
				mock.EXPECT().GetFieldRatingStats(ctx, db, fb.ID).Return(sqlc.GetFieldRatingStatsRow{}, errConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewFieldReadStore(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			v, err := store.FindByID(ctx, fb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			tc.verify(t, v)
		})
	}
}

func TestFieldReadStore_ListBuildsFilter(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewFieldReadStore(mockQueries, mockDB)

	minPrice := decimal.NewFromInt(50)
	ownerID := uuid.New()
	fb := builder.NewFieldBuilder()

	mockQueries.EXPECT().ListFields(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListFieldsParams) ([]sqlc.ListFieldsRow, error) {
			assert.Equal(t, "giza", arg.Governorate.String)
			assert.True(t, arg.Governorate.Valid)
			assert.True(t, arg.MinPrice.Valid)
			assert.False(t, arg.MaxPrice.Valid)
			assert.False(t, arg.Search.Valid)
			assert.Equal(t, pgconv.UUIDToPgtype(ownerID), arg.OwnerID)
			assert.Equal(t, int32(20), arg.Limit)
			assert.Equal(t, int32(40), arg.Offset)
			return []sqlc.ListFieldsRow{{Fields: fb.BuildInfra(), AvgRating: 3.5, ReviewCount: 2}}, nil
		})

	views, err := store.List(ctx, queries.FieldFilter{Governorate: "giza", MinPrice: &minPrice, OwnerID: &ownerID}, 20, 40)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fb.Name, views[0].Name)
	assert.Equal(t, int64(2), views[0].ReviewCount)
}

func TestFieldReadStore_Schedule(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewFieldReadStore(mockQueries, mockDB)

	fb := builder.NewFieldBuilder()
	date := timeslot.MustParseDate("2025-03-10")
	active := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.FieldID = fb.ID
		b.Status = booking.StatusConfirmed
	})

	mockQueries.EXPECT().GetFieldByID(ctx, mockDB, fb.ID).Return(fb.BuildInfra(), nil)
	mockQueries.EXPECT().ListActiveBookingsForFieldDate(ctx, mockDB, sqlc.ListActiveBookingsForFieldDateParams{
		FieldID: fb.ID,
		Date:    pgconv.DateToPgtype(date.Time()),
	}).Return([]sqlc.Bookings{active.BuildInfra()}, nil)

	schedule, err := store.Schedule(ctx, fb.ID, date)

	require.NoError(t, err)
	assert.Equal(t, fb.Hours(), schedule.Hours)
	require.Len(t, schedule.Bookings, 1)
	assert.Equal(t, active.ID, schedule.Bookings[0].ID)
	assert.Equal(t, active.Window(), schedule.Bookings[0].Window)
}

func TestFieldReadStore_ScheduleMissingField(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewFieldReadStore(mockQueries, mockDB)
	id := uuid.New()

	mockQueries.EXPECT().GetFieldByID(ctx, mockDB, id).Return(sqlc.Fields{}, pgx.ErrNoRows)

	_, err := store.Schedule(ctx, id, timeslot.MustParseDate("2025-03-10"))

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestFieldReadStore_Facilities(t *testing.T) {
	ctx := context.Background()
	fb := builder.NewFieldBuilder()

	t.Run("success: empty list is not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetFieldByID(ctx, mockDB, fb.ID).Return(fb.BuildInfra(), nil)
		mockQueries.EXPECT().ListFieldFacilities(ctx, mockDB, fb.ID).Return(nil, nil)

		names, err := readstore.NewFieldReadStore(mockQueries, mockDB).Facilities(ctx, fb.ID)

		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("error: field not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetFieldByID(ctx, mockDB, fb.ID).Return(sqlc.Fields{}, pgx.ErrNoRows)

		_, err := readstore.NewFieldReadStore(mockQueries, mockDB).Facilities(ctx, fb.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
