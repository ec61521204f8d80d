// Package notify stores in-app notifications and fans them out as events.
package notify

import (
	"context"
	"log/slog"
	"time"

	"field-booking/internal/domain/notification"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatcher.go -destination=../../mock/notify/dispatcher_mock.go -package=notifymock
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Event is the message body published for every stored notification.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      notification.Type `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

type Dispatcher struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
}

var _ shared.Notifier = (*Dispatcher)(nil)

// NewDispatcher accepts a nil publisher; notifications are then only stored.
func NewDispatcher(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock) *Dispatcher {
	return &Dispatcher{uow: uow, publisher: publisher, clock: clk}
}

func (d *Dispatcher) Notify(ctx context.Context, n notification.Notice) error {
	now := d.clock.Now()
	var id uuid.UUID
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Notifications().Create(ctx, tx.DB(), n, now)
		return err
	})
	if err != nil {
		return err
	}

	if d.publisher == nil {
		return nil
	}
	ev := Event{ID: id, UserID: n.UserID, Type: n.Type, Title: n.Title, Message: n.Message, CreatedAt: now}
	if err := d.publisher.PublishJSON(ctx, "notification."+string(n.Type), ev); err != nil {
		slog.Warn("notification event not published", "notification_id", id, "error", err)
	}
	return nil
}
