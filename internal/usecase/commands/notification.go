package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationCommands only ever touch the actor's own notifications.
//
//go:generate mockgen -source=notification.go -destination=../../mock/commands/notification_mock.go -package=commandsmock
type NotificationCommands interface {
	MarkRead(ctx context.Context, actor access.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor access.Actor) (int64, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkRead(ctx, tx.DB(), id, actor.ID)
	})
}

func (uc *notificationCommandsImpl) MarkAllRead(ctx context.Context, actor access.Actor) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		return err
	})
	return n, err
}

func (uc *notificationCommandsImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Delete(ctx, tx.DB(), id, actor.ID)
	})
}
