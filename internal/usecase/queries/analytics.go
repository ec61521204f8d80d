package queries

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAnalyticsWindowDays is the look-back used when no range is given.
const DefaultAnalyticsWindowDays = 30

const topFieldsLimit = 5

// AnalyticsScope narrows every aggregate. Nil owner and user means the
// whole platform.
type AnalyticsScope struct {
	OwnerID *uuid.UUID
	UserID  *uuid.UUID
	From    timeslot.Date
	To      timeslot.Date
}

type DateRange struct {
	From *timeslot.Date
	To   *timeslot.Date
}

type BookingStatusCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

type DashboardStats struct {
	Bookings      BookingStatusCounts
	Revenue       decimal.Decimal
	TotalFields   int64
	TotalUsers    int64
	AverageRating float64
}

type TopFieldView struct {
	FieldID      uuid.UUID       `json:"field_id"`
	FieldName    string          `json:"field_name"`
	BookingCount int64           `json:"booking_count"`
	BookedValue  decimal.Decimal `json:"booked_value"`
}

type DashboardView struct {
	Role          string              `json:"user_role"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	Bookings      BookingStatusCounts `json:"bookings"`
	Revenue       decimal.Decimal     `json:"total_revenue"`
	TotalFields   *int64              `json:"total_fields,omitempty"`
	TotalUsers    *int64              `json:"total_users,omitempty"`
	AverageRating float64             `json:"average_rating"`
	TopFields     []*TopFieldView     `json:"top_fields"`
}

type BookingExportRow struct {
	ID         uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	TotalPrice decimal.Decimal
	Status     string
	UserName   string
	UserEmail  string
	FieldName  string
}

type PaymentExportRow struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Method      string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	UserName    string
	UserEmail   string
	FieldName   string
}

type UserExportRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	Role          string
	CreatedAt     time.Time
	TotalBookings int64
	TotalPayments int64
	TotalReviews  int64
}

var (
	exportHeader = []string{
		"Booking ID", "Date", "Start Time", "End Time", "Total Price",
		"Status", "User Name", "User Email", "Field Name",
	}
	paymentExportHeader = []string{
		"Payment ID", "Amount", "Currency", "Payment Method", "Status",
		"Created At", "Completed At", "User Name", "User Email", "Field Name",
	}
	userExportHeader = []string{
		"User ID", "Name", "Email", "Phone", "Role", "Created At",
		"Total Bookings", "Total Payments", "Total Reviews",
	}
)

// TrendUnit is the bucket width of a trend series.
type TrendUnit string

const (
	TrendByDay   TrendUnit = "day"
	TrendByWeek  TrendUnit = "week"
	TrendByMonth TrendUnit = "month"
)

type BookingTrendPoint struct {
	Date     string `json:"date"`
	Bookings int64  `json:"bookings"`
}

type RevenueTrendPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type BookingTrendView struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	GroupBy   TrendUnit           `json:"group_by"`
	Trends    []BookingTrendPoint `json:"trends"`
}

type RevenueTrendView struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	GroupBy   TrendUnit           `json:"group_by"`
	Trends    []RevenueTrendPoint `json:"trends"`
}

// FieldActivity is the raw per-field aggregate behind a performance row.
type FieldActivity struct {
	FieldID           uuid.UUID
	FieldName         string
	TotalBookings     int64
	BookedSeconds     float64
	Revenue           decimal.Decimal
	AverageRating     float64
	OpenSecondsPerDay float64
}

type FieldPerformanceItem struct {
	FieldID         uuid.UUID       `json:"field_id"`
	FieldName       string          `json:"field_name"`
	TotalBookings   int64           `json:"total_bookings"`
	BookedHours     float64         `json:"booked_hours"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AverageRating   float64         `json:"average_rating"`
	UtilizationRate float64         `json:"utilization_rate"`
}

type FieldPerformanceView struct {
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	Performance []*FieldPerformanceItem `json:"performance"`
}

//go:generate mockgen -source=analytics.go -destination=../../mock/queries/analytics_mock.go -package=queriesmock
type AnalyticsReadStore interface {
	Dashboard(ctx context.Context, scope AnalyticsScope) (*DashboardStats, error)
	TopFields(ctx context.Context, scope AnalyticsScope, limit int32) ([]*TopFieldView, error)
	ExportBookings(ctx context.Context, scope AnalyticsScope) ([]*BookingExportRow, error)
	BookingTrends(ctx context.Context, scope AnalyticsScope, unit TrendUnit) ([]BookingTrendPoint, error)
	RevenueTrends(ctx context.Context, scope AnalyticsScope, unit TrendUnit) ([]RevenueTrendPoint, error)
	FieldActivity(ctx context.Context, scope AnalyticsScope) ([]*FieldActivity, error)
	ExportPayments(ctx context.Context, scope AnalyticsScope) ([]*PaymentExportRow, error)
	ExportUsers(ctx context.Context) ([]*UserExportRow, error)
}

type AnalyticsQueries interface {
	Dashboard(ctx context.Context, actor access.Actor, r DateRange) (*DashboardView, error)
	BookingTrends(ctx context.Context, actor access.Actor, r DateRange, unit TrendUnit) (*BookingTrendView, error)
	RevenueTrends(ctx context.Context, actor access.Actor, r DateRange, unit TrendUnit) (*RevenueTrendView, error)
	FieldPerformance(ctx context.Context, actor access.Actor, r DateRange) (*FieldPerformanceView, error)
	ExportBookingsCSV(ctx context.Context, actor access.Actor, r DateRange, w io.Writer) error
	ExportPaymentsCSV(ctx context.Context, actor access.Actor, r DateRange, w io.Writer) error
	ExportUsersCSV(ctx context.Context, actor access.Actor, w io.Writer) error
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
	clock clock.Clock
}

func NewAnalyticsQueries(store AnalyticsReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store, clock: clk}
}

func (q *analyticsQueriesImpl) Dashboard(ctx context.Context, actor access.Actor, r DateRange) (*DashboardView, error) {
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return nil, err
	}

	stats, err := q.store.Dashboard(ctx, scope)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	top, err := q.store.TopFields(ctx, scope, topFieldsLimit)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}

	view := &DashboardView{
		Role:          actor.Role.String(),
		StartDate:     scope.From.String(),
		EndDate:       scope.To.String(),
		Bookings:      stats.Bookings,
		Revenue:       stats.Revenue,
		AverageRating: stats.AverageRating,
		TopFields:     top,
	}
	switch actor.Role {
	case user.RoleAdmin:
		view.TotalFields = &stats.TotalFields
		view.TotalUsers = &stats.TotalUsers
	case user.RoleOwner:
		view.TotalFields = &stats.TotalFields
	}
	return view, nil
}

// ExportBookingsCSV is limited to admins (all bookings) and owners (bookings
// on their own fields).
func (q *analyticsQueriesImpl) ExportBookingsCSV(ctx context.Context, actor access.Actor, r DateRange, w io.Writer) error {
	if err := access.Authorize(actor, nil, user.RoleOwner); err != nil {
		return err
	}
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return err
	}
	rows, err := q.store.ExportBookings(ctx, scope)
	if err != nil {
		return infra.Reject(err, nil)
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{
			row.ID.String(), row.Date, row.StartTime, row.EndTime, row.TotalPrice.StringFixed(2),
			row.Status, row.UserName, row.UserEmail, row.FieldName,
		}
	}
	return writeCSV(w, exportHeader, records)
}

func (q *analyticsQueriesImpl) BookingTrends(ctx context.Context, actor access.Actor, r DateRange, unit TrendUnit) (*BookingTrendView, error) {
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return nil, err
	}
	unit = unitOrDay(unit)
	points, err := q.store.BookingTrends(ctx, scope, unit)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &BookingTrendView{
		StartDate: scope.From.String(),
		EndDate:   scope.To.String(),
		GroupBy:   unit,
		Trends:    points,
	}, nil
}

// RevenueTrends buckets completed payments by completion date.
func (q *analyticsQueriesImpl) RevenueTrends(ctx context.Context, actor access.Actor, r DateRange, unit TrendUnit) (*RevenueTrendView, error) {
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return nil, err
	}
	unit = unitOrDay(unit)
	points, err := q.store.RevenueTrends(ctx, scope, unit)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &RevenueTrendView{
		StartDate: scope.From.String(),
		EndDate:   scope.To.String(),
		GroupBy:   unit,
		Trends:    points,
	}, nil
}

// FieldPerformance is limited to owners (own fields) and admins (all
// fields). Utilization is booked time over the field's open time across
// the range.
func (q *analyticsQueriesImpl) FieldPerformance(ctx context.Context, actor access.Actor, r DateRange) (*FieldPerformanceView, error) {
	if err := access.Authorize(actor, nil, user.RoleOwner); err != nil {
		return nil, err
	}
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return nil, err
	}
	rows, err := q.store.FieldActivity(ctx, scope)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}

	days := scope.To.Time().Sub(scope.From.Time()).Hours()/24 + 1
	items := make([]*FieldPerformanceItem, len(rows))
	for i, row := range rows {
		var utilization float64
		if open := row.OpenSecondsPerDay * days; open > 0 {
			utilization = round2(row.BookedSeconds / open * 100)
		}
		items[i] = &FieldPerformanceItem{
			FieldID:         row.FieldID,
			FieldName:       row.FieldName,
			TotalBookings:   row.TotalBookings,
			BookedHours:     round2(row.BookedSeconds / 3600),
			TotalRevenue:    row.Revenue,
			AverageRating:   round2(row.AverageRating),
			UtilizationRate: utilization,
		}
	}
	return &FieldPerformanceView{
		StartDate:   scope.From.String(),
		EndDate:     scope.To.String(),
		Performance: items,
	}, nil
}

// ExportPaymentsCSV selects payments created in the range: all of them for
// admins, those on their fields for owners.
func (q *analyticsQueriesImpl) ExportPaymentsCSV(ctx context.Context, actor access.Actor, r DateRange, w io.Writer) error {
	if err := access.Authorize(actor, nil, user.RoleOwner); err != nil {
		return err
	}
	scope, err := q.scopeFor(actor, r)
	if err != nil {
		return err
	}
	rows, err := q.store.ExportPayments(ctx, scope)
	if err != nil {
		return infra.Reject(err, nil)
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		completed := ""
		if row.CompletedAt != nil {
			completed = row.CompletedAt.UTC().Format(time.RFC3339)
		}
		records[i] = []string{
			row.ID.String(), row.Amount.StringFixed(2), row.Currency, row.Method, row.Status,
			row.CreatedAt.UTC().Format(time.RFC3339), completed, row.UserName, row.UserEmail, row.FieldName,
		}
	}
	return writeCSV(w, paymentExportHeader, records)
}

// ExportUsersCSV is admin only.
func (q *analyticsQueriesImpl) ExportUsersCSV(ctx context.Context, actor access.Actor, w io.Writer) error {
	if !actor.IsAdmin() {
		return access.ErrForbidden
	}
	rows, err := q.store.ExportUsers(ctx)
	if err != nil {
		return infra.Reject(err, nil)
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{
			row.ID.String(), row.Name, row.Email, row.Phone, row.Role,
			row.CreatedAt.UTC().Format(time.RFC3339),
			strconv.FormatInt(row.TotalBookings, 10),
			strconv.FormatInt(row.TotalPayments, 10),
			strconv.FormatInt(row.TotalReviews, 10),
		}
	}
	return writeCSV(w, userExportHeader, records)
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

func unitOrDay(u TrendUnit) TrendUnit {
	switch u {
	case TrendByWeek, TrendByMonth:
		return u
	default:
		return TrendByDay
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (q *analyticsQueriesImpl) scopeFor(actor access.Actor, r DateRange) (AnalyticsScope, error) {
	today := timeslot.DateOf(q.clock.Now())
	scope := AnalyticsScope{From: today.AddDays(-DefaultAnalyticsWindowDays), To: today}
	if r.From != nil {
		scope.From = *r.From
	}
	if r.To != nil {
		scope.To = *r.To
	}
	if scope.To.Before(scope.From) {
		return AnalyticsScope{}, timeslot.ErrInvalidDate
	}

	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleOwner:
		id := actor.ID
		scope.OwnerID = &id
	default:
		id := actor.ID
		scope.UserID = &id
	}
	return scope, nil
}
