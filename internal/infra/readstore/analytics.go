package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"
)

//go:generate mockgen -source=analytics.go -destination=../../mock/readstore/analytics_mock.go -package=readstoremock
type AnalyticsReadQueries interface {
	GetDashboardStats(ctx context.Context, db sqlc.DBTX, arg sqlc.AnalyticsScopeParams) (sqlc.GetDashboardStatsRow, error)
	ListTopFields(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopFieldsParams) ([]sqlc.ListTopFieldsRow, error)
	ExportBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.AnalyticsScopeParams) ([]sqlc.ExportBookingsRow, error)
	ListBookingTrends(ctx context.Context, db sqlc.DBTX, arg sqlc.TrendParams) ([]sqlc.ListBookingTrendsRow, error)
	ListRevenueTrends(ctx context.Context, db sqlc.DBTX, arg sqlc.TrendParams) ([]sqlc.ListRevenueTrendsRow, error)
	ListFieldPerformance(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFieldPerformanceParams) ([]sqlc.ListFieldPerformanceRow, error)
	ExportPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.AnalyticsScopeParams) ([]sqlc.ExportPaymentsRow, error)
	ExportUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ExportUsersRow, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsReadQueries
	db      sqlc.DBTX
}

func NewAnalyticsReadStore(queries AnalyticsReadQueries, db sqlc.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AnalyticsReadStore) Dashboard(ctx context.Context, scope queries.AnalyticsScope) (*queries.DashboardStats, error) {
	row, err := r.queries.GetDashboardStats(ctx, r.db, scopeParams(scope))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get dashboard stats", err)
	}
	revenue, err := pgconv.DecimalFromNumeric(row.Revenue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode revenue", err, infra.KindDBFailure)
	}
	return &queries.DashboardStats{
		Bookings: queries.BookingStatusCounts{
			Total:     row.TotalBookings,
			Pending:   row.PendingBookings,
			Confirmed: row.ConfirmedBookings,
			Cancelled: row.CancelledBookings,
			Completed: row.CompletedBookings,
		},
		Revenue:       revenue,
		TotalFields:   row.TotalFields,
		TotalUsers:    row.TotalUsers,
		AverageRating: row.AverageRating,
	}, nil
}

func (r *AnalyticsReadStore) TopFields(ctx context.Context, scope queries.AnalyticsScope, limit int32) ([]*queries.TopFieldView, error) {
	rows, err := r.queries.ListTopFields(ctx, r.db, sqlc.ListTopFieldsParams{
		AnalyticsScopeParams: scopeParams(scope),
		Limit:                limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top fields", err)
	}
	out := make([]*queries.TopFieldView, 0, len(rows))
	for _, row := range rows {
		value, err := pgconv.DecimalFromNumeric(row.BookedValue)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booked value", err, infra.KindDBFailure)
		}
		out = append(out, &queries.TopFieldView{
			FieldID:      row.FieldID,
			FieldName:    row.FieldName,
			BookingCount: row.BookingCount,
			BookedValue:  value,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) ExportBookings(ctx context.Context, scope queries.AnalyticsScope) ([]*queries.BookingExportRow, error) {
	rows, err := r.queries.ExportBookings(ctx, r.db, scopeParams(scope))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to export bookings", err)
	}
	out := make([]*queries.BookingExportRow, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.TotalPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking price", err, infra.KindDBFailure)
		}
		window := converter.WindowFromRow(row.StartTime, row.EndTime)
		out = append(out, &queries.BookingExportRow{
			ID:         row.ID,
			Date:       pgconv.DateFromPgtype(row.Date).Format("2006-01-02"),
			StartTime:  window.Start.String(),
			EndTime:    window.End.String(),
			TotalPrice: price,
			Status:     row.Status,
			UserName:   row.UserName,
			UserEmail:  row.UserEmail,
			FieldName:  row.FieldName,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) BookingTrends(ctx context.Context, scope queries.AnalyticsScope, unit queries.TrendUnit) ([]queries.BookingTrendPoint, error) {
	rows, err := r.queries.ListBookingTrends(ctx, r.db, sqlc.TrendParams{AnalyticsScopeParams: scopeParams(scope), Unit: string(unit)})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking trends", err)
	}
	out := make([]queries.BookingTrendPoint, len(rows))
	for i, row := range rows {
		out[i] = queries.BookingTrendPoint{
			Date:     pgconv.DateFromPgtype(row.Bucket).Format("2006-01-02"),
			Bookings: row.Bookings,
		}
	}
	return out, nil
}

func (r *AnalyticsReadStore) RevenueTrends(ctx context.Context, scope queries.AnalyticsScope, unit queries.TrendUnit) ([]queries.RevenueTrendPoint, error) {
	rows, err := r.queries.ListRevenueTrends(ctx, r.db, sqlc.TrendParams{AnalyticsScopeParams: scopeParams(scope), Unit: string(unit)})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list revenue trends", err)
	}
	out := make([]queries.RevenueTrendPoint, len(rows))
	for i, row := range rows {
		revenue, err := pgconv.DecimalFromNumeric(row.Revenue)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode revenue", err, infra.KindDBFailure)
		}
		out[i] = queries.RevenueTrendPoint{
			Date:    pgconv.DateFromPgtype(row.Bucket).Format("2006-01-02"),
			Revenue: revenue,
		}
	}
	return out, nil
}

func (r *AnalyticsReadStore) FieldActivity(ctx context.Context, scope queries.AnalyticsScope) ([]*queries.FieldActivity, error) {
	rows, err := r.queries.ListFieldPerformance(ctx, r.db, sqlc.ListFieldPerformanceParams{
		OwnerID:  pgconv.UUIDPtrToPgtype(scope.OwnerID),
		FromDate: pgconv.DateToPgtype(scope.From.Time()),
		ToDate:   pgconv.DateToPgtype(scope.To.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field performance", err)
	}
	out := make([]*queries.FieldActivity, 0, len(rows))
	for _, row := range rows {
		revenue, err := pgconv.DecimalFromNumeric(row.Revenue)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode revenue", err, infra.KindDBFailure)
		}
		out = append(out, &queries.FieldActivity{
			FieldID:           row.FieldID,
			FieldName:         row.FieldName,
			TotalBookings:     row.TotalBookings,
			BookedSeconds:     row.BookedSeconds,
			Revenue:           revenue,
			AverageRating:     row.AverageRating,
			OpenSecondsPerDay: row.OpenSecondsPerDay,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) ExportPayments(ctx context.Context, scope queries.AnalyticsScope) ([]*queries.PaymentExportRow, error) {
	rows, err := r.queries.ExportPayments(ctx, r.db, scopeParams(scope))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to export payments", err)
	}
	out := make([]*queries.PaymentExportRow, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment amount", err, infra.KindDBFailure)
		}
		out = append(out, &queries.PaymentExportRow{
			ID:          row.ID,
			Amount:      amount,
			Currency:    row.Currency,
			Method:      row.Method,
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
			UserName:    row.UserName,
			UserEmail:   row.UserEmail,
			FieldName:   row.FieldName,
		})
	}
	return out, nil
}

func (r *AnalyticsReadStore) ExportUsers(ctx context.Context) ([]*queries.UserExportRow, error) {
	rows, err := r.queries.ExportUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to export users", err)
	}
	out := make([]*queries.UserExportRow, len(rows))
	for i, row := range rows {
		out[i] = &queries.UserExportRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Phone:         row.Phone,
			Role:          row.Role,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			TotalBookings: row.TotalBookings,
			TotalPayments: row.TotalPayments,
			TotalReviews:  row.TotalReviews,
		}
	}
	return out, nil
}

func scopeParams(s queries.AnalyticsScope) sqlc.AnalyticsScopeParams {
	return sqlc.AnalyticsScopeParams{
		OwnerID:  pgconv.UUIDPtrToPgtype(s.OwnerID),
		UserID:   pgconv.UUIDPtrToPgtype(s.UserID),
		FromDate: pgconv.DateToPgtype(s.From.Time()),
		ToDate:   pgconv.DateToPgtype(s.To.Time()),
	}
}
