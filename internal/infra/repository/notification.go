package repository

import (
	"context"
	"time"

	"field-booking/internal/domain/notification"
	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../mock/repository/notification_mock.go -package=repositorymock
type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (sqlc.Notifications, error)
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteNotificationParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n notification.Notice, now time.Time) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.queries.CreateNotification(ctx, tx, sqlc.CreateNotificationParams{
		ID:        id,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return uuid.Nil, errs.Storage(infra.WrapRepoErr("failed to create notification", err))
	}
	return id, nil
}

// MarkRead only touches rows owned by userID; a foreign id looks missing.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error {
	n, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{ID: id, UserID: userID})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to mark notification read", err))
	}
	if n == 0 {
		return notification.ErrNotFound.Because(infra.WrapRepoErr("notification not found", nil, infra.KindNotFound))
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, tx, userID)
	if err != nil {
		return 0, errs.Storage(infra.WrapRepoErr("failed to mark notifications read", err))
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error {
	n, err := r.queries.DeleteNotification(ctx, tx, sqlc.DeleteNotificationParams{ID: id, UserID: userID})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to delete notification", err))
	}
	if n == 0 {
		return notification.ErrNotFound.Because(infra.WrapRepoErr("notification not found", nil, infra.KindNotFound))
	}
	return nil
}
