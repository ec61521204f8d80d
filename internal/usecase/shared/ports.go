package shared

import (
	"context"
	"time"

	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../mock/shared/ports_mock.go -package=sharedmock

// Notifier delivers a notice to its recipient. Callers treat failures as
// non-fatal: they are logged and never undo the operation that caused them.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notice) error
}

// AvailabilityInvalidator drops cached availability after a committed write.
type AvailabilityInvalidator interface {
	// Invalidate drops the plan of one field and date.
	Invalidate(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) error
	// InvalidateField drops the plans of every date of one field.
	InvalidateField(ctx context.Context, fieldID uuid.UUID) error
}

// OTPStore keeps one-time password-reset codes.
type OTPStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume reports whether code matches and deletes it either way.
	Consume(ctx context.Context, email, code string) (bool, error)
}

// BookingMetrics records lifecycle outcomes by operation and result reason.
type BookingMetrics interface {
	ObserveLifecycle(operation, outcome string)
}
