//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var analyticsNow = time.Date(2025, 3, 31, 15, 0, 0, 0, time.UTC)

func TestAnalyticsQueries_DashboardScope(t *testing.T) {
	ctx := context.Background()
	today := timeslot.DateOf(analyticsNow)
	actorID := uuid.New()
	stats := &queries.DashboardStats{TotalFields: 3, TotalUsers: 90, Revenue: decimal.NewFromInt(500)}

	testCases := []struct {
		name       string
		role       user.Role
		wantScope  func() queries.AnalyticsScope
		wantFields bool
		wantUsers  bool
	}{
		{
			name: "admin sees the whole platform",
			role: user.RoleAdmin,
			wantScope: func() queries.AnalyticsScope {
				return queries.AnalyticsScope{From: today.AddDays(-30), To: today}
			},
			wantFields: true,
			wantUsers:  true,
		},
		{
			name: "owner is scoped to own fields",
			role: user.RoleOwner,
			wantScope: func() queries.AnalyticsScope {
				return queries.AnalyticsScope{OwnerID: &actorID, From: today.AddDays(-30), To: today}
			},
			wantFields: true,
		},
		{
			name: "user is scoped to own bookings",
			role: user.RoleUser,
			wantScope: func() queries.AnalyticsScope {
				return queries.AnalyticsScope{UserID: &actorID, From: today.AddDays(-30), To: today}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockAnalyticsReadStore(ctrl)
			store.EXPECT().Dashboard(ctx, tc.wantScope()).Return(stats, nil)
			store.EXPECT().TopFields(ctx, tc.wantScope(), int32(5)).Return([]*queries.TopFieldView{}, nil)

			q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
			view, err := q.Dashboard(ctx, access.Actor{ID: actorID, Role: tc.role}, queries.DateRange{})

			require.NoError(t, err)
			assert.Equal(t, "2025-03-01", view.StartDate)
			assert.Equal(t, "2025-03-31", view.EndDate)
			assert.Equal(t, tc.wantFields, view.TotalFields != nil)
			assert.Equal(t, tc.wantUsers, view.TotalUsers != nil)
		})
	}
}

func TestAnalyticsQueries_DashboardRejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := timeslot.MustParseDate("2025-03-20")
	to := timeslot.MustParseDate("2025-03-10")
	q := queries.NewAnalyticsQueries(queriesmock.NewMockAnalyticsReadStore(ctrl), clock.NewMockClock(analyticsNow))

	_, err := q.Dashboard(context.Background(), access.Actor{ID: uuid.New(), Role: user.RoleAdmin}, queries.DateRange{From: &from, To: &to})

	assert.ErrorIs(t, err, timeslot.ErrInvalidDate)
}

func TestAnalyticsQueries_ExportBookingsCSV(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.MustParse("6f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f")
	from := timeslot.MustParseDate("2025-03-01")
	to := timeslot.MustParseDate("2025-03-31")

	t.Run("owner export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ownerID := uuid.New()
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)
		store.EXPECT().ExportBookings(ctx, queries.AnalyticsScope{OwnerID: &ownerID, From: from, To: to}).
			Return([]*queries.BookingExportRow{{
				ID:         bookingID,
				Date:       "2025-03-10",
				StartTime:  "18:00",
				EndTime:    "19:30",
				TotalPrice: decimal.NewFromInt(150),
				Status:     "confirmed",
				UserName:   "Omar, Jr.",
				UserEmail:  "omar@example.com",
				FieldName:  "Pitch 2",
			}}, nil)

		var buf bytes.Buffer
		q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
		err := q.ExportBookingsCSV(ctx, access.Actor{ID: ownerID, Role: user.RoleOwner}, queries.DateRange{From: &from, To: &to}, &buf)

		require.NoError(t, err)
		want := "Booking ID,Date,Start Time,End Time,Total Price,Status,User Name,User Email,Field Name\n" +
			"6f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f,2025-03-10,18:00,19:30,150.00,confirmed,\"Omar, Jr.\",omar@example.com,Pitch 2\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("plain users cannot export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var buf bytes.Buffer
		q := queries.NewAnalyticsQueries(queriesmock.NewMockAnalyticsReadStore(ctrl), clock.NewMockClock(analyticsNow))
		err := q.ExportBookingsCSV(ctx, access.Actor{ID: uuid.New(), Role: user.RoleUser}, queries.DateRange{}, &buf)

		assert.ErrorIs(t, err, access.ErrForbidden)
		assert.Zero(t, buf.Len())
	})
}

func TestAnalyticsQueries_BookingTrends(t *testing.T) {
	ctx := context.Background()
	today := timeslot.DateOf(analyticsNow)
	userID := uuid.New()
	scope := queries.AnalyticsScope{UserID: &userID, From: today.AddDays(-30), To: today}
	points := []queries.BookingTrendPoint{{Date: "2025-03-03", Bookings: 2}, {Date: "2025-03-10", Bookings: 1}}

	testCases := []struct {
		name     string
		unit     queries.TrendUnit
		wantUnit queries.TrendUnit
	}{
		{name: "weekly buckets", unit: queries.TrendByWeek, wantUnit: queries.TrendByWeek},
		{name: "monthly buckets", unit: queries.TrendByMonth, wantUnit: queries.TrendByMonth},
		{name: "unset falls back to days", unit: "", wantUnit: queries.TrendByDay},
		{name: "unknown falls back to days", unit: "year", wantUnit: queries.TrendByDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockAnalyticsReadStore(ctrl)
			store.EXPECT().BookingTrends(ctx, scope, tc.wantUnit).Return(points, nil)

			q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
			view, err := q.BookingTrends(ctx, access.Actor{ID: userID, Role: user.RoleUser}, queries.DateRange{}, tc.unit)

			require.NoError(t, err)
			assert.Equal(t, tc.wantUnit, view.GroupBy)
			assert.Equal(t, points, view.Trends)
			assert.Equal(t, "2025-03-01", view.StartDate)
		})
	}
}

func TestAnalyticsQueries_RevenueTrendsOwnerScope(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	from := timeslot.MustParseDate("2025-03-01")
	to := timeslot.MustParseDate("2025-03-07")
	points := []queries.RevenueTrendPoint{{Date: "2025-03-02", Revenue: decimal.RequireFromString("300.50")}}

	store := queriesmock.NewMockAnalyticsReadStore(ctrl)
	store.EXPECT().RevenueTrends(ctx, queries.AnalyticsScope{OwnerID: &ownerID, From: from, To: to}, queries.TrendByDay).
		Return(points, nil)

	q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
	view, err := q.RevenueTrends(ctx, access.Actor{ID: ownerID, Role: user.RoleOwner}, queries.DateRange{From: &from, To: &to}, queries.TrendByDay)

	require.NoError(t, err)
	assert.Equal(t, points, view.Trends)
	assert.Equal(t, "2025-03-07", view.EndDate)
}

func TestAnalyticsQueries_FieldPerformance(t *testing.T) {
	ctx := context.Background()
	from := timeslot.MustParseDate("2025-03-01")
	to := timeslot.MustParseDate("2025-03-10")
	r := queries.DateRange{From: &from, To: &to}

	t.Run("utilization uses the field's own hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ownerID := uuid.New()
		fieldID := uuid.New()
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)
		store.EXPECT().FieldActivity(ctx, queries.AnalyticsScope{OwnerID: &ownerID, From: from, To: to}).
			Return([]*queries.FieldActivity{
				{
					FieldID:           fieldID,
					FieldName:         "Pitch 1",
					TotalBookings:     7,
					BookedSeconds:     14 * 3600,
					Revenue:           decimal.NewFromInt(700),
					AverageRating:     4.3333,
					OpenSecondsPerDay: 14 * 3600,
				},
				{FieldName: "Closed pitch"},
			}, nil)

		q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
		view, err := q.FieldPerformance(ctx, access.Actor{ID: ownerID, Role: user.RoleOwner}, r)

		require.NoError(t, err)
		require.Len(t, view.Performance, 2)
		got := view.Performance[0]
		assert.Equal(t, fieldID, got.FieldID)
		assert.Equal(t, 14.0, got.BookedHours)
		assert.Equal(t, 10.0, got.UtilizationRate)
		assert.Equal(t, 4.33, got.AverageRating)
		assert.Zero(t, view.Performance[1].UtilizationRate)
	})

	t.Run("plain users are refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := queries.NewAnalyticsQueries(queriesmock.NewMockAnalyticsReadStore(ctrl), clock.NewMockClock(analyticsNow))
		_, err := q.FieldPerformance(ctx, access.Actor{ID: uuid.New(), Role: user.RoleUser}, r)

		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestAnalyticsQueries_ExportPaymentsCSV(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	today := timeslot.DateOf(analyticsNow)
	paymentID := uuid.MustParse("0b7e2c4a-1d2e-4f3a-9b8c-7d6e5f4a3b2c")
	created := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	completed := created.Add(5 * time.Minute)

	store := queriesmock.NewMockAnalyticsReadStore(ctrl)
	store.EXPECT().ExportPayments(ctx, queries.AnalyticsScope{From: today.AddDays(-30), To: today}).
		Return([]*queries.PaymentExportRow{
			{
				ID: paymentID, Amount: decimal.NewFromInt(150), Currency: "EGP", Method: "card", Status: "completed",
				CreatedAt: created, CompletedAt: &completed, UserName: "Omar", UserEmail: "omar@example.com", FieldName: "Pitch 2",
			},
			{
				ID: paymentID, Amount: decimal.RequireFromString("99.5"), Currency: "EGP", Method: "cash", Status: "pending",
				CreatedAt: created, UserName: "Omar", UserEmail: "omar@example.com", FieldName: "Pitch 2",
			},
		}, nil)

	var buf bytes.Buffer
	q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
	err := q.ExportPaymentsCSV(ctx, access.Actor{ID: adminID, Role: user.RoleAdmin}, queries.DateRange{}, &buf)

	require.NoError(t, err)
	want := "Payment ID,Amount,Currency,Payment Method,Status,Created At,Completed At,User Name,User Email,Field Name\n" +
		"0b7e2c4a-1d2e-4f3a-9b8c-7d6e5f4a3b2c,150.00,EGP,card,completed,2025-03-10T17:00:00Z,2025-03-10T17:05:00Z,Omar,omar@example.com,Pitch 2\n" +
		"0b7e2c4a-1d2e-4f3a-9b8c-7d6e5f4a3b2c,99.50,EGP,cash,pending,2025-03-10T17:00:00Z,,Omar,omar@example.com,Pitch 2\n"
	assert.Equal(t, want, buf.String())
}

func TestAnalyticsQueries_ExportUsersCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("admin export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userID := uuid.MustParse("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)
		store.EXPECT().ExportUsers(ctx).Return([]*queries.UserExportRow{{
			ID: userID, Name: "Sara", Email: "sara@example.com", Phone: "+20100", Role: "user",
			CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), TotalBookings: 4, TotalPayments: 3, TotalReviews: 1,
		}}, nil)

		var buf bytes.Buffer
		q := queries.NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
		err := q.ExportUsersCSV(ctx, access.Actor{ID: uuid.New(), Role: user.RoleAdmin}, &buf)

		require.NoError(t, err)
		want := "User ID,Name,Email,Phone,Role,Created At,Total Bookings,Total Payments,Total Reviews\n" +
			"9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d,Sara,sara@example.com,+20100,user,2025-01-02T03:04:05Z,4,3,1\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("owners cannot export users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var buf bytes.Buffer
		q := queries.NewAnalyticsQueries(queriesmock.NewMockAnalyticsReadStore(ctrl), clock.NewMockClock(analyticsNow))
		err := q.ExportUsersCSV(ctx, access.Actor{ID: uuid.New(), Role: user.RoleOwner}, &buf)

		assert.ErrorIs(t, err, access.ErrForbidden)
		assert.Zero(t, buf.Len())
	})
}
