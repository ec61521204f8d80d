//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/payment"
	"field-booking/internal/domain/user"
	"field-booking/internal/testing/builder"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPaymentCommands(f *fixture) commands.PaymentCommands {
	return commands.NewPaymentCommands(f.uow, f.notifier, f.metrics, f.clock, "EGP")
}

func storedPayment(bookingID, userID uuid.UUID, status payment.Status) *payment.Payment {
	return payment.Reconstruct(uuid.New(), bookingID, userID, decimal.NewFromInt(150), "EGP",
		payment.MethodWallet, "tx-"+bookingID.String()[:8], status, nil, now, now)
}

func TestPaymentCommands_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		method      string
		status      booking.Status
		asRequester bool
		setupMock   func(f *fixture, snap *shared.BookingSnapshot)
		expectedErr error
	}{
		{
			name:        "requester pays the booking total",
			method:      "wallet",
			status:      booking.StatusConfirmed,
			asRequester: true,
			setupMock: func(f *fixture, snap *shared.BookingSnapshot) {
				f.reads.EXPECT().HasCompletedPayment(gomock.Any(), snap.Booking.ID()).Return(false, nil)
				f.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notification.Notice) error {
						assert.Equal(t, snap.FieldOwnerID, n.UserID)
						assert.Equal(t, notification.TypePayment, n.Type)
						return nil
					})
				f.metrics.EXPECT().ObserveLifecycle("payment_create", "ok")
			},
		},
		{
			name:        "already paid",
			method:      "cash",
			status:      booking.StatusConfirmed,
			asRequester: true,
			setupMock: func(f *fixture, snap *shared.BookingSnapshot) {
				f.reads.EXPECT().HasCompletedPayment(gomock.Any(), snap.Booking.ID()).Return(true, nil)
				f.metrics.EXPECT().ObserveLifecycle("payment_create", "payment_already_completed")
			},
			expectedErr: payment.ErrAlreadyCompleted,
		},
		{
			name:        "cancelled booking",
			method:      "cash",
			status:      booking.StatusCancelled,
			asRequester: true,
			setupMock: func(f *fixture, _ *shared.BookingSnapshot) {
				f.metrics.EXPECT().ObserveLifecycle("payment_create", "booking_not_payable")
			},
			expectedErr: payment.ErrBookingNotPayable,
		},
		{
			name:        "completed booking",
			method:      "card",
			status:      booking.StatusCompleted,
			asRequester: true,
			setupMock: func(f *fixture, _ *shared.BookingSnapshot) {
				f.metrics.EXPECT().ObserveLifecycle("payment_create", "booking_not_payable")
			},
			expectedErr: payment.ErrBookingNotPayable,
		},
		{
			name:   "someone else's booking",
			method: "cash",
			status: booking.StatusPending,
			setupMock: func(f *fixture, _ *shared.BookingSnapshot) {
				f.metrics.EXPECT().ObserveLifecycle("payment_create", "unauthorized")
			},
			expectedErr: access.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = tc.status }).BuildDomain()
			snap := &shared.BookingSnapshot{Booking: b, FieldOwnerID: uuid.New(), FieldName: "Pitch 2"}
			f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(snap, nil)
			tc.setupMock(f, snap)

			actor := actorWith(user.RoleUser)
			if tc.asRequester {
				actor.ID = b.UserID()
			}
			actual, err := newPaymentCommands(f).Create(ctx, actor, b.ID(), tc.method)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment.StatusPending, actual.Status())
			assert.True(t, b.TotalPrice().Equal(actual.Amount()))
			assert.Equal(t, "EGP", actual.Currency())
			assert.Equal(t, b.UserID(), actual.UserID())
			assert.NotEmpty(t, actual.TransactionID())
		})
	}
}

func TestPaymentCommands_CreateRejectsUnknownMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.metrics.EXPECT().ObserveLifecycle("payment_create", "invalid_payment_method")

	_, err := newPaymentCommands(f).Create(context.Background(), actorWith(user.RoleUser), uuid.New(), "bitcoin")

	require.ErrorIs(t, err, payment.ErrInvalidMethod)
}

func TestPaymentCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		actor         access.Actor
		current       payment.Status
		requested     string
		expectedErr   error
		expectedNotes int
	}{
		{name: "admin completes", actor: actorWith(user.RoleAdmin), current: payment.StatusPending, requested: "completed", expectedNotes: 2},
		{name: "admin fails", actor: actorWith(user.RoleAdmin), current: payment.StatusPending, requested: "failed", expectedNotes: 1},
		{name: "refunded is final", actor: actorWith(user.RoleAdmin), current: payment.StatusRefunded, requested: "completed", expectedErr: payment.ErrNotRefundable},
		{name: "owner may not override", actor: actorWith(user.RoleOwner), current: payment.StatusPending, requested: "completed", expectedErr: access.ErrForbidden},
		{name: "unknown status", actor: actorWith(user.RoleAdmin), current: payment.StatusPending, requested: "settled", expectedErr: payment.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			b := builder.NewBookingBuilder().BuildDomain()
			p := storedPayment(b.ID(), b.UserID(), tc.current)
			touchesStore := tc.expectedErr == nil || tc.expectedErr == payment.ErrNotRefundable
			if touchesStore {
				f.reads.EXPECT().PaymentByID(gomock.Any(), p.ID()).Return(p, nil)
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).
					Return(&shared.BookingSnapshot{Booking: b, FieldOwnerID: uuid.New(), FieldName: "Pitch 2"}, nil)
			}
			if tc.expectedErr == nil {
				f.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), p).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(tc.expectedNotes)
			}
			f.metrics.EXPECT().ObserveLifecycle("payment_update_status", gomock.Any())

			actual, err := newPaymentCommands(f).UpdateStatus(ctx, tc.actor, p.ID(), tc.requested)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, tc.current, p.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment.Status(tc.requested), actual.Status())
			if actual.Status() == payment.StatusCompleted {
				require.NotNil(t, actual.CompletedAt())
				assert.Equal(t, now, *actual.CompletedAt())
			}
		})
	}
}

func TestPaymentCommands_Refund(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name        string
		actor       access.Actor
		current     payment.Status
		expectedErr error
	}{
		{name: "field owner refunds", actor: access.Actor{ID: ownerID, Role: user.RoleOwner}, current: payment.StatusCompleted},
		{name: "admin refunds", actor: actorWith(user.RoleAdmin), current: payment.StatusCompleted},
		{name: "pending cannot be refunded", actor: actorWith(user.RoleAdmin), current: payment.StatusPending, expectedErr: payment.ErrNotRefundable},
		{name: "refund twice", actor: access.Actor{ID: ownerID, Role: user.RoleOwner}, current: payment.StatusRefunded, expectedErr: payment.ErrNotRefundable},
		{name: "other owner", actor: actorWith(user.RoleOwner), current: payment.StatusCompleted, expectedErr: access.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled }).BuildDomain()
			p := storedPayment(b.ID(), b.UserID(), tc.current)
			f.reads.EXPECT().PaymentByID(gomock.Any(), p.ID()).Return(p, nil)
			f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).
				Return(&shared.BookingSnapshot{Booking: b, FieldOwnerID: ownerID, FieldName: "Pitch 2"}, nil)
			if tc.expectedErr == nil {
				f.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), p).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notification.Notice) error {
						assert.Equal(t, b.UserID(), n.UserID)
						return nil
					})
			}
			f.metrics.EXPECT().ObserveLifecycle("payment_refund", gomock.Any())

			actual, err := newPaymentCommands(f).Refund(ctx, tc.actor, p.ID())

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, tc.current, p.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment.StatusRefunded, actual.Status())
			assert.Equal(t, booking.StatusCancelled, b.Status(), "refunds leave the booking alone")
			assert.WithinDuration(t, now, actual.UpdatedAt(), time.Second)
		})
	}
}
