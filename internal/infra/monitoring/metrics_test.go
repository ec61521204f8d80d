//go:build unit

package monitoring_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"field-booking/internal/infra/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)

	m.ObserveLifecycle("create", "ok")
	m.ObserveLifecycle("create", "ok")
	m.ObserveLifecycle("create", "slot_unavailable")

	count, err := testutil.GatherAndCount(reg, "booking_lifecycle_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/fields/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/fields/a", "/api/fields/b", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per route template and status")
}
