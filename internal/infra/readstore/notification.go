package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../mock/readstore/notification_mock.go -package=readstoremock
type NotificationReadQueries interface {
	ListNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsParams) ([]sqlc.Notifications, error)
	CountNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.CountNotificationsParams) (int64, error)
	GetNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNotificationParams) (sqlc.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotifications(ctx, r.db, sqlc.ListNotificationsParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	out := make([]*queries.NotificationView, len(rows))
	for i, n := range rows {
		out[i] = toNotificationView(n)
	}
	return out, nil
}

// FindByID only finds notifications addressed to userID.
func (r *NotificationReadStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*queries.NotificationView, error) {
	n, err := r.queries.GetNotification(ctx, r.db, sqlc.GetNotificationParams{ID: id, UserID: userID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get notification", err)
	}
	return toNotificationView(n), nil
}

func (r *NotificationReadStore) Count(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error) {
	n, err := r.queries.CountNotifications(ctx, r.db, sqlc.CountNotificationsParams{UserID: userID, UnreadOnly: unreadOnly})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count notifications", err)
	}
	return n, nil
}

func toNotificationView(n sqlc.Notifications) *queries.NotificationView {
	return &queries.NotificationView{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: pgconv.TimeFromPgtype(n.CreatedAt),
	}
}
