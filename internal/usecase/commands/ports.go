package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const outcomeOK = "ok"

// afterCommit runs the side effects of a committed write. Each one is best
// effort: failures are logged and never reach the caller.
type afterCommit struct {
	notifier    shared.Notifier
	invalidator shared.AvailabilityInvalidator
}

func (a afterCommit) notify(ctx context.Context, n notification.Notice) {
	if a.notifier == nil || n.UserID == uuid.Nil {
		return
	}
	if err := a.notifier.Notify(ctx, n); err != nil {
		slog.Warn("notification not delivered", "user_id", n.UserID, "type", n.Type, "error", err)
	}
}

func (a afterCommit) invalidate(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) {
	if a.invalidator == nil {
		return
	}
	if err := a.invalidator.Invalidate(ctx, fieldID, date); err != nil {
		slog.Warn("availability cache not invalidated", "field_id", fieldID, "date", date.String(), "error", err)
	}
}

func (a afterCommit) invalidateField(ctx context.Context, fieldID uuid.UUID) {
	if a.invalidator == nil {
		return
	}
	if err := a.invalidator.InvalidateField(ctx, fieldID); err != nil {
		slog.Warn("field availability cache not invalidated", "field_id", fieldID, "error", err)
	}
}

// outcome is the metrics label for err: "ok" or the rejection reason.
func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	return errs.ReasonOf(err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errs.ReasonOf(err))
	}
	span.End()
}
