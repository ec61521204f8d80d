//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/user"
	sharedmock "field-booking/internal/mock/shared"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	now               = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	errConnectionLost = errors.New("connection lost")
)

// fixture wires a unit of work whose Within runs fn against mocked
// repositories, the same way the Postgres implementation hands out a Tx.
type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	users         *sharedmock.MockUserRepository
	fields        *sharedmock.MockFieldRepository
	bookings      *sharedmock.MockBookingRepository
	payments      *sharedmock.MockPaymentRepository
	teams         *sharedmock.MockTeamRepository
	reviews       *sharedmock.MockReviewRepository
	notifications *sharedmock.MockNotificationRepository
	notifier      *sharedmock.MockNotifier
	invalidator   *sharedmock.MockAvailabilityInvalidator
	metrics       *sharedmock.MockBookingMetrics
	otps          *sharedmock.MockOTPStore
	clock         clock.Clock
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		fields:        sharedmock.NewMockFieldRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		teams:         sharedmock.NewMockTeamRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		notifier:      sharedmock.NewMockNotifier(ctrl),
		invalidator:   sharedmock.NewMockAvailabilityInvalidator(ctrl),
		metrics:       sharedmock.NewMockBookingMetrics(ctrl),
		otps:          sharedmock.NewMockOTPStore(ctrl),
		clock:         clock.NewMockClock(now),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Fields().Return(f.fields).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Teams().Return(f.teams).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	return f
}

func actorWith(role user.Role) access.Actor {
	return access.Actor{ID: uuid.New(), Role: role}
}
