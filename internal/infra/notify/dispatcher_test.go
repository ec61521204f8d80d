//go:build unit

package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-booking/internal/domain/notification"
	"field-booking/internal/infra/notify"
	notifymock "field-booking/internal/mock/notify"
	sharedmock "field-booking/internal/mock/shared"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

type fixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	repo      *sharedmock.MockNotificationRepository
	publisher *notifymock.MockEventPublisher
}

func newFixture(ctrl *gomock.Controller) fixture {
	f := fixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		repo:      sharedmock.NewMockNotificationRepository(ctrl),
		publisher: notifymock.NewMockEventPublisher(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func TestDispatcher_Notify(t *testing.T) {
	ctx := context.Background()
	notice := notification.BookingRequested(uuid.New(), "Pitch 2", "2025-03-10", "18:00-19:30")
	id := uuid.New()

	testCases := []struct {
		name        string
		setup       func(fixture)
		expectedErr bool
	}{
		{
			name: "stored and published",
			setup: func(f fixture) {
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), notice, now).Return(id, nil)
				f.publisher.EXPECT().PublishJSON(gomock.Any(), "notification.booking", notify.Event{
					ID: id, UserID: notice.UserID, Type: notice.Type, Title: notice.Title, Message: notice.Message, CreatedAt: now,
				}).Return(nil)
			},
		},
		{
			name: "publish failure is swallowed",
			setup: func(f fixture) {
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), notice, now).Return(id, nil)
				f.publisher.EXPECT().PublishJSON(gomock.Any(), "notification.booking", gomock.Any()).Return(errors.New("channel closed"))
			},
		},
		{
			name: "store failure is returned and nothing is published",
			setup: func(f fixture) {
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), notice, now).Return(uuid.Nil, errors.New("insert failed"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			tc.setup(f)

			err := notify.NewDispatcher(f.uow, f.publisher, clock.NewMockClock(now)).Notify(ctx, notice)

			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDispatcher_NotifyWithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	notice := notification.PaymentStatusChanged(uuid.New(), "tx-1", "completed")
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), notice, now).Return(uuid.New(), nil)

	err := notify.NewDispatcher(f.uow, nil, clock.NewMockClock(now)).Notify(context.Background(), notice)

	assert.NoError(t, err)
}
