//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"
	"field-booking/internal/infra/readstore"
	"field-booking/internal/infra/sqlc"
	readstoremock "field-booking/internal/mock/readstore"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/testing/builder"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ownerScope(ownerID uuid.UUID) (queries.AnalyticsScope, sqlc.AnalyticsScopeParams) {
	from := timeslot.MustParseDate("2025-03-01")
	to := timeslot.MustParseDate("2025-03-31")
	return queries.AnalyticsScope{OwnerID: &ownerID, From: from, To: to},
		sqlc.AnalyticsScopeParams{
			OwnerID:  pgconv.UUIDToPgtype(ownerID),
			FromDate: pgconv.DateToPgtype(from.Time()),
			ToDate:   pgconv.DateToPgtype(to.Time()),
		}
}

func TestAnalyticsReadStore_Dashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())

	mockQueries.EXPECT().GetDashboardStats(ctx, mockDB, params).Return(sqlc.GetDashboardStatsRow{
		TotalBookings:     7,
		PendingBookings:   2,
		ConfirmedBookings: 3,
		CancelledBookings: 1,
		CompletedBookings: 1,
		Revenue:           pgconv.NumericFromDecimal(decimal.RequireFromString("450.50")),
		TotalFields:       2,
		TotalUsers:        40,
		AverageRating:     4.25,
	}, nil)

	stats, err := store.Dashboard(ctx, scope)

	require.NoError(t, err)
	assert.Equal(t, queries.BookingStatusCounts{Total: 7, Pending: 2, Confirmed: 3, Cancelled: 1, Completed: 1}, stats.Bookings)
	assert.Equal(t, "450.5", stats.Revenue.String())
	assert.Equal(t, int64(2), stats.TotalFields)
}

func TestAnalyticsReadStore_TopFieldsError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())

	mockQueries.EXPECT().ListTopFields(ctx, mockDB, sqlc.ListTopFieldsParams{AnalyticsScopeParams: params, Limit: 5}).
		Return(nil, errConnectionLost)

	_, err := store.TopFields(ctx, scope, 5)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestAnalyticsReadStore_ExportBookings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())
	b := builder.NewBookingBuilder().BuildInfra()

	mockQueries.EXPECT().ExportBookings(ctx, mockDB, params).Return([]sqlc.ExportBookingsRow{{
		ID:         b.ID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		UserName:   "Omar",
		UserEmail:  "omar@example.com",
		FieldName:  "Pitch 2",
	}}, nil)

	rows, err := store.ExportBookings(ctx, scope)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, "18:00", rows[0].StartTime)
	assert.Equal(t, "19:30", rows[0].EndTime)
	assert.True(t, decimal.NewFromInt(150).Equal(rows[0].TotalPrice))
}

func TestAnalyticsReadStore_Trends(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())
	week := pgconv.DateToPgtype(timeslot.MustParseDate("2025-03-03").Time())
	trend := sqlc.TrendParams{AnalyticsScopeParams: params, Unit: "week"}

	mockQueries.EXPECT().ListBookingTrends(ctx, mockDB, trend).
		Return([]sqlc.ListBookingTrendsRow{{Bucket: week, Bookings: 7}}, nil)
	mockQueries.EXPECT().ListRevenueTrends(ctx, mockDB, trend).
		Return([]sqlc.ListRevenueTrendsRow{{Bucket: week, Revenue: pgconv.NumericFromDecimal(decimal.NewFromInt(420))}}, nil)

	bookings, err := store.BookingTrends(ctx, scope, queries.TrendByWeek)
	require.NoError(t, err)
	assert.Equal(t, []queries.BookingTrendPoint{{Date: "2025-03-03", Bookings: 7}}, bookings)

	revenue, err := store.RevenueTrends(ctx, scope, queries.TrendByWeek)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, "2025-03-03", revenue[0].Date)
	assert.True(t, decimal.NewFromInt(420).Equal(revenue[0].Revenue))
}

func TestAnalyticsReadStore_FieldActivity(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())
	fieldID := uuid.New()

	mockQueries.EXPECT().ListFieldPerformance(ctx, mockDB, sqlc.ListFieldPerformanceParams{
		OwnerID:  params.OwnerID,
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
	}).Return([]sqlc.ListFieldPerformanceRow{{
		FieldID:           fieldID,
		FieldName:         "Pitch 1",
		TotalBookings:     3,
		BookedSeconds:     16200,
		Revenue:           pgconv.NumericFromDecimal(decimal.NewFromInt(450)),
		AverageRating:     4.5,
		OpenSecondsPerDay: 50400,
	}}, nil)

	rows, err := store.FieldActivity(ctx, scope)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fieldID, rows[0].FieldID)
	assert.Equal(t, int64(3), rows[0].TotalBookings)
	assert.Equal(t, float64(16200), rows[0].BookedSeconds)
	assert.Equal(t, float64(50400), rows[0].OpenSecondsPerDay)
	assert.True(t, decimal.NewFromInt(450).Equal(rows[0].Revenue))
}

func TestAnalyticsReadStore_ExportPaymentsAndUsers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewAnalyticsReadStore(mockQueries, mockDB)
	scope, params := ownerScope(uuid.New())
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().ExportPayments(ctx, mockDB, params).Return([]sqlc.ExportPaymentsRow{{
		ID:        uuid.New(),
		Amount:    pgconv.NumericFromDecimal(decimal.NewFromInt(150)),
		Currency:  "EGP",
		Method:    "card",
		Status:    "pending",
		CreatedAt: pgconv.TimeToPgtype(created),
		UserName:  "Omar",
		UserEmail: "omar@example.com",
		FieldName: "Pitch 2",
	}}, nil)
	mockQueries.EXPECT().ExportUsers(ctx, mockDB).Return([]sqlc.ExportUsersRow{{
		ID:            uuid.New(),
		Name:          "Omar",
		Email:         "omar@example.com",
		Role:          "user",
		CreatedAt:     pgconv.TimeToPgtype(created),
		TotalBookings: 4,
	}}, nil)

	payments, err := store.ExportPayments(ctx, scope)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Nil(t, payments[0].CompletedAt)
	assert.Equal(t, created, payments[0].CreatedAt)
	assert.True(t, decimal.NewFromInt(150).Equal(payments[0].Amount))

	users, err := store.ExportUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(4), users[0].TotalBookings)
}

func TestAnalyticsReadStore_ExportUsersError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAnalyticsReadQueries(ctrl)
	store := readstore.NewAnalyticsReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ExportUsers(ctx, gomock.Any()).Return(nil, errConnectionLost)

	users, err := store.ExportUsers(ctx)

	assert.Nil(t, users)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
