//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	commandsmock "field-booking/internal/mock/commands"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/testing/httptest"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler(t *testing.T) {
	actor := actorWith(user.RoleUser)
	noticeID := uuid.New()

	t.Run("list unread only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		q.EXPECT().
			List(gomock.Any(), *actor, true, queries.PageRequest{Page: 2, PerPage: 5}).
			Return(&queries.NotificationPage{
				Notifications: []*queries.NotificationView{{
					ID:        noticeID,
					Title:     "Booking confirmed",
					Type:      "booking_confirmed",
					CreatedAt: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
				}},
				Pagination: queries.Pagination{Page: 2, PerPage: 5, Total: 6, TotalPages: 2},
			}, nil)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/notifications?unread_only=true&page=2&per_page=5", nil,
			httptest.WithBearer(testToken))

		var page queries.NotificationPage
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Notifications, 1)
		assert.Equal(t, noticeID, page.Notifications[0].ID)
		assert.Equal(t, int64(6), page.Pagination.Total)
	})

	t.Run("unread count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		q.EXPECT().UnreadCount(gomock.Any(), *actor).Return(int64(3), nil)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/unread-count", nil,
			httptest.WithBearer(testToken))

		var body struct {
			UnreadCount int64 `json:"unread_count"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, int64(3), body.UnreadCount)
	})

	t.Run("mark all read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		cmds.EXPECT().MarkAllRead(gomock.Any(), *actor).Return(int64(4), nil)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodPut, "/notifications/read-all", nil,
			httptest.WithBearer(testToken))

		var body struct {
			Updated int64 `json:"updated"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, int64(4), body.Updated)
	})

	t.Run("mark read on someone else's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		cmds.EXPECT().MarkRead(gomock.Any(), *actor, noticeID).Return(notification.ErrNotFound)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodPut, "/notifications/"+noticeID.String()+"/read", nil,
			httptest.WithBearer(testToken))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "notification_not_found")
	})

	t.Run("get one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		q.EXPECT().Get(gomock.Any(), *actor, noticeID).Return(&queries.NotificationView{ID: noticeID, Title: "Booking confirmed"}, nil)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/"+noticeID.String(), nil,
			httptest.WithBearer(testToken))

		var view queries.NotificationView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		assert.Equal(t, "Booking confirmed", view.Title)
	})

	t.Run("get someone else's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		q.EXPECT().Get(gomock.Any(), *actor, noticeID).Return(nil, notification.ErrNotFound)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/"+noticeID.String(), nil,
			httptest.WithBearer(testToken))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "notification_not_found")
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		cmds.EXPECT().Delete(gomock.Any(), *actor, noticeID).Return(nil)

		router := notificationRouter(api.NewNotificationHandler(cmds, q), actor)
		w := httptest.PerformRequest(t, router, http.MethodDelete, "/notifications/"+noticeID.String(), nil,
			httptest.WithBearer(testToken))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func notificationRouter(h *api.NotificationHandler, actor *access.Actor) http.Handler {
	router := newEngine(actor)
	router.GET("/notifications", h.List)
	router.GET("/notifications/unread-count", h.UnreadCount)
	router.PUT("/notifications/read-all", h.MarkAllRead)
	router.GET("/notifications/:id", h.Get)
	router.PUT("/notifications/:id/read", h.MarkRead)
	router.DELETE("/notifications/:id", h.Delete)
	return router
}
