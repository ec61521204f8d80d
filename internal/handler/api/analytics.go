package api

import (
	"bytes"
	"fmt"
	"net/http"

	"field-booking/internal/domain/access"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q     queries.AnalyticsQueries
	clock clock.Clock
}

func NewAnalyticsHandler(q queries.AnalyticsQueries, clk clock.Clock) *AnalyticsHandler {
	return &AnalyticsHandler{q: q, clock: clk}
}

// @Summary Dashboard
// @Description Booking, revenue and rating aggregates scoped to the caller's role
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD, default 30 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Success 200 {object} resdto.Envelope{data=queries.DashboardView}
// @Failure 400 {object} httperr.Response
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	r, err := q.ToRange()
	if err != nil {
		fail(c, err)
		return
	}
	view, err := h.q.Dashboard(c.Request.Context(), actor, r)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "dashboard_retrieved", view)
}

// @Summary Export bookings
// @Description CSV of bookings for admins (all) and owners (own fields)
// @Tags analytics
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Router /analytics/export/bookings [get]
func (h *AnalyticsHandler) ExportBookings(c *gin.Context) {
	actor, r, ok := h.rangeRequest(c)
	if !ok {
		return
	}
	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.q.ExportBookingsCSV(c.Request.Context(), actor, r, &buf); err != nil {
		fail(c, err)
		return
	}
	h.sendCSV(c, "bookings", &buf)
}

// @Summary Booking trends
// @Description Booking counts per day, week or month scoped to the caller's role
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD, default 30 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param group_by query string false "day, week or month"
// @Success 200 {object} resdto.Envelope{data=queries.BookingTrendView}
// @Failure 400 {object} httperr.Response
// @Router /analytics/bookings/trends [get]
func (h *AnalyticsHandler) BookingTrends(c *gin.Context) {
	actor, r, unit, ok := h.trendRequest(c)
	if !ok {
		return
	}
	view, err := h.q.BookingTrends(c.Request.Context(), actor, r, unit)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "booking_trends_retrieved", view)
}

// @Summary Revenue trends
// @Description Completed payment totals per day, week or month scoped to the caller's role
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD, default 30 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param group_by query string false "day, week or month"
// @Success 200 {object} resdto.Envelope{data=queries.RevenueTrendView}
// @Failure 400 {object} httperr.Response
// @Router /analytics/revenue/trends [get]
func (h *AnalyticsHandler) RevenueTrends(c *gin.Context) {
	actor, r, unit, ok := h.trendRequest(c)
	if !ok {
		return
	}
	view, err := h.q.RevenueTrends(c.Request.Context(), actor, r, unit)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "revenue_trends_retrieved", view)
}

// @Summary Field performance
// @Description Per-field bookings, revenue, rating and utilization for owners and admins
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD, default 30 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Success 200 {object} resdto.Envelope{data=queries.FieldPerformanceView}
// @Failure 403 {object} httperr.Response
// @Router /analytics/fields/performance [get]
func (h *AnalyticsHandler) FieldPerformance(c *gin.Context) {
	actor, r, ok := h.rangeRequest(c)
	if !ok {
		return
	}
	view, err := h.q.FieldPerformance(c.Request.Context(), actor, r)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "field_performance_retrieved", view)
}

// @Summary Export payments
// @Description CSV of payments for admins (all) and owners (own fields)
// @Tags analytics
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Router /analytics/export/payments [get]
func (h *AnalyticsHandler) ExportPayments(c *gin.Context) {
	actor, r, ok := h.rangeRequest(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.q.ExportPaymentsCSV(c.Request.Context(), actor, r, &buf); err != nil {
		fail(c, err)
		return
	}
	h.sendCSV(c, "payments", &buf)
}

// @Summary Export users
// @Description CSV of every user with activity counts, admins only
// @Tags analytics
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Router /analytics/export/users [get]
func (h *AnalyticsHandler) ExportUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.q.ExportUsersCSV(c.Request.Context(), actor, &buf); err != nil {
		fail(c, err)
		return
	}
	h.sendCSV(c, "users", &buf)
}

func (h *AnalyticsHandler) rangeRequest(c *gin.Context) (access.Actor, queries.DateRange, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return access.Actor{}, queries.DateRange{}, false
	}
	var q reqdto.DateRangeQuery
	if !bindQuery(c, &q) {
		return access.Actor{}, queries.DateRange{}, false
	}
	r, err := q.ToRange()
	if err != nil {
		fail(c, err)
		return access.Actor{}, queries.DateRange{}, false
	}
	return actor, r, true
}

func (h *AnalyticsHandler) trendRequest(c *gin.Context) (access.Actor, queries.DateRange, queries.TrendUnit, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return access.Actor{}, queries.DateRange{}, "", false
	}
	var q reqdto.TrendQuery
	if !bindQuery(c, &q) {
		return access.Actor{}, queries.DateRange{}, "", false
	}
	r, err := q.ToRange()
	if err != nil {
		fail(c, err)
		return access.Actor{}, queries.DateRange{}, "", false
	}
	return actor, r, q.Unit(), true
}

func (h *AnalyticsHandler) sendCSV(c *gin.Context, name string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s_%s.csv", name, h.clock.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
