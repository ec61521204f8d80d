//go:build unit

package queriesmock_test

import (
	"testing"

	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Paged signatures take queries.PageRequest; a mock generated without the
// pagination aux file stops satisfying these.
func TestMocksImplementQueryPorts(t *testing.T) {
	ctrl := gomock.NewController(t)

	ports := map[string]any{
		"AnalyticsQueries":      queries.AnalyticsQueries(queriesmock.NewMockAnalyticsQueries(ctrl)),
		"AnalyticsReadStore":    queries.AnalyticsReadStore(queriesmock.NewMockAnalyticsReadStore(ctrl)),
		"BookingQueries":        queries.BookingQueries(queriesmock.NewMockBookingQueries(ctrl)),
		"BookingReadStore":      queries.BookingReadStore(queriesmock.NewMockBookingReadStore(ctrl)),
		"ClubQueries":           queries.ClubQueries(queriesmock.NewMockClubQueries(ctrl)),
		"ClubReadStore":         queries.ClubReadStore(queriesmock.NewMockClubReadStore(ctrl)),
		"FieldQueries":          queries.FieldQueries(queriesmock.NewMockFieldQueries(ctrl)),
		"FieldReadStore":        queries.FieldReadStore(queriesmock.NewMockFieldReadStore(ctrl)),
		"AvailabilityCache":     queries.AvailabilityCache(queriesmock.NewMockAvailabilityCache(ctrl)),
		"NotificationQueries":   queries.NotificationQueries(queriesmock.NewMockNotificationQueries(ctrl)),
		"NotificationReadStore": queries.NotificationReadStore(queriesmock.NewMockNotificationReadStore(ctrl)),
		"PaymentQueries":        queries.PaymentQueries(queriesmock.NewMockPaymentQueries(ctrl)),
		"PaymentReadStore":      queries.PaymentReadStore(queriesmock.NewMockPaymentReadStore(ctrl)),
		"ReviewQueries":         queries.ReviewQueries(queriesmock.NewMockReviewQueries(ctrl)),
		"ReviewReadStore":       queries.ReviewReadStore(queriesmock.NewMockReviewReadStore(ctrl)),
		"TeamQueries":           queries.TeamQueries(queriesmock.NewMockTeamQueries(ctrl)),
		"TeamReadStore":         queries.TeamReadStore(queriesmock.NewMockTeamReadStore(ctrl)),
		"UserReadStore":         queries.UserReadStore(queriesmock.NewMockUserReadStore(ctrl)),
		"UserQueries":           queries.UserQueries(queriesmock.NewMockUserQueries(ctrl)),
	}

	for name, port := range ports {
		assert.NotNil(t, port, name)
	}
}

func TestPagedMockRecordsPageRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := queriesmock.NewMockTeamQueries(ctrl)
	page := queries.PageRequest{Page: 3, PerPage: 10}
	m.EXPECT().List(gomock.Any(), queries.TeamFilter{}, page).Return(&queries.TeamPage{}, nil)

	got, err := m.List(t.Context(), queries.TeamFilter{}, page)

	assert.NoError(t, err)
	assert.NotNil(t, got)
}
