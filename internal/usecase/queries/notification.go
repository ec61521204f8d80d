package queries

import (
	"context"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/notification"
	"field-booking/internal/infra"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationPage struct {
	Notifications []*NotificationView `json:"notifications"`
	Pagination    Pagination          `json:"pagination"`
}

//go:generate mockgen -source=notification.go -destination=../../mock/queries/notification_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type NotificationReadStore interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int32) ([]*NotificationView, error)
	Count(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (*NotificationView, error)
}

type NotificationQueries interface {
	List(ctx context.Context, actor access.Actor, unreadOnly bool, page PageRequest) (*NotificationPage, error)
	UnreadCount(ctx context.Context, actor access.Actor) (int64, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, actor access.Actor, unreadOnly bool, page PageRequest) (*NotificationPage, error) {
	page = page.Normalize()
	items, err := q.store.List(ctx, actor.ID, unreadOnly, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.Count(ctx, actor.ID, unreadOnly)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &NotificationPage{Notifications: items, Pagination: NewPagination(page, total)}, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, actor access.Actor) (int64, error) {
	n, err := q.store.Count(ctx, actor.ID, true)
	if err != nil {
		return 0, infra.Reject(err, nil)
	}
	return n, nil
}

// Get never reveals another user's notification; it reads as not found.
func (q *notificationQueriesImpl) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*NotificationView, error) {
	v, err := q.store.FindByID(ctx, id, actor.ID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: notification.ErrNotFound})
	}
	return v, nil
}
