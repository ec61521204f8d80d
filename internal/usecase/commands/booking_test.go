//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/team"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/testing/builder"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingDate = timeslot.MustParseDate("2025-03-10")

func newBookingCommands(f *fixture) commands.BookingCommands {
	return commands.NewBookingCommands(f.uow, f.notifier, f.invalidator, f.metrics, f.clock)
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	requester := actorWith(user.RoleUser)

	type args struct {
		window string
		teamID *uuid.UUID
	}

	teamID := uuid.New()

	testCases := []struct {
		name          string
		args          args
		setupMock     func(f *fixture, fld *field.Field)
		expectedErr   error
		expectedPrice string
	}{
		{
			name: "pending booking priced from the hourly rate",
			args: args{window: "18:00-19:30"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.invalidator.EXPECT().Invalidate(gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notification.Notice) error {
						assert.Equal(t, fld.OwnerID(), n.UserID)
						assert.Equal(t, notification.TypeBooking, n.Type)
						return nil
					})
				f.metrics.EXPECT().ObserveLifecycle("create", "ok")
			},
			expectedPrice: "150.00",
		},
		{
			name: "back-to-back with an existing booking",
			args: args{window: "12:00-14:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				existing := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.FieldID, b.Start, b.End = fld.ID(), "10:00", "12:00"
				}).BuildSlot()
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return([]availability.Booking{existing}, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.invalidator.EXPECT().Invalidate(gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "ok")
			},
			expectedPrice: "200.00",
		},
		{
			name: "overlapping request is a conflict and nothing is written",
			args: args{window: "11:00-13:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				existing := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.FieldID, b.Start, b.End = fld.ID(), "10:00", "12:00"
				}).BuildSlot()
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return([]availability.Booking{existing}, nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "slot_unavailable")
			},
			expectedErr: availability.ErrSlotUnavailable,
		},
		{
			name: "outside operating hours",
			args: args{window: "21:00-22:30"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "outside_operating_hours")
			},
			expectedErr: availability.ErrOutsideOperatingHours,
		},
		{
			name: "inverted window",
			args: args{window: "19:00-18:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "invalid_window")
			},
			expectedErr: availability.ErrInvalidWindow,
		},
		{
			name: "unknown field",
			args: args{window: "18:00-19:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(nil, field.ErrNotFound)
				f.metrics.EXPECT().ObserveLifecycle("create", "field_not_found")
			},
			expectedErr: field.ErrNotFound,
		},
		{
			name: "team booking by a non-member",
			args: args{window: "18:00-19:00", teamID: &teamID},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().TeamByID(gomock.Any(), teamID).
					Return(team.Reconstruct(teamID, "Friday Five", "", uuid.New(), now), nil)
				f.reads.EXPECT().IsTeamMember(gomock.Any(), teamID, requester.ID).Return(false, nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "unauthorized")
			},
			expectedErr: access.ErrForbidden,
		},
		{
			name: "team booking by a member",
			args: args{window: "18:00-19:00", teamID: &teamID},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().TeamByID(gomock.Any(), teamID).
					Return(team.Reconstruct(teamID, "Friday Five", "", uuid.New(), now), nil)
				f.reads.EXPECT().IsTeamMember(gomock.Any(), teamID, requester.ID).Return(true, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
						require.NotNil(t, b.TeamID())
						assert.Equal(t, teamID, *b.TeamID())
						return nil
					})
				f.invalidator.EXPECT().Invalidate(gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().ObserveLifecycle("create", "ok")
			},
			expectedPrice: "100.00",
		},
		{
			name: "storage failure on insert",
			args: args{window: "18:00-19:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
				f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
				f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrStorage.Because(errConnectionLost))
				f.metrics.EXPECT().ObserveLifecycle("create", "storage_error")
			},
			expectedErr: errs.ErrStorage,
		},
		{
			name: "lock not acquired",
			args: args{window: "18:00-19:00"},
			setupMock: func(f *fixture, fld *field.Field) {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(errs.ErrStorage.Because(errConnectionLost))
				f.metrics.EXPECT().ObserveLifecycle("create", "storage_error")
			},
			expectedErr: errs.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			fld := builder.NewFieldBuilder().BuildDomain()
			tc.setupMock(f, fld)

			start, end, _ := strings.Cut(tc.args.window, "-")
			actual, err := newBookingCommands(f).Create(ctx, requester, commands.CreateBookingInput{
				FieldID: fld.ID(),
				TeamID:  tc.args.teamID,
				Date:    bookingDate,
				Window:  timeslot.MustParseInterval(start, end),
			})

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusPending, actual.Status())
			assert.Equal(t, requester.ID, actual.UserID())
			assert.Equal(t, fld.ID(), actual.FieldID())
			assert.Equal(t, tc.expectedPrice, actual.TotalPrice().StringFixed(2))
		})
	}
}

func TestBookingCommands_CreateSurvivesSideEffectFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	fld := builder.NewFieldBuilder().BuildDomain()
	f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), bookingDate).Return(nil)
	f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil)
	f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), bookingDate).Return(nil, nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.invalidator.EXPECT().Invalidate(gomock.Any(), fld.ID(), bookingDate).Return(errors.New("redis down"))
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("notification table locked"))
	f.metrics.EXPECT().ObserveLifecycle("create", "ok")

	actual, err := newBookingCommands(f).Create(context.Background(), actorWith(user.RoleUser), commands.CreateBookingInput{
		FieldID: fld.ID(),
		Date:    bookingDate,
		Window:  timeslot.MustParseInterval("18:00", "19:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, actual.Status())
}

// memoryBookings keeps created bookings so a sequence of commands can be
// checked against the availability they leave behind.
type memoryBookings struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*booking.Booking
}

func (m *memoryBookings) active() []availability.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]availability.Booking, 0, len(m.rows))
	for _, b := range m.rows {
		out = append(out, b.AsSlot())
	}
	return out
}

func (m *memoryBookings) wire(f *fixture, fld *field.Field) {
	m.rows = map[uuid.UUID]*booking.Booking{}
	f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), fld.ID(), gomock.Any()).Return(nil).AnyTimes()
	f.reads.EXPECT().FieldByID(gomock.Any(), fld.ID()).Return(fld, nil).AnyTimes()
	f.reads.EXPECT().ActiveBookings(gomock.Any(), fld.ID(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, timeslot.Date) ([]availability.Booking, error) {
			return m.active(), nil
		}).AnyTimes()
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.rows[b.ID()] = b
			return nil
		}).AnyTimes()
	f.reads.EXPECT().BookingByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			b, ok := m.rows[id]
			if !ok {
				return nil, booking.ErrNotFound
			}
			return &shared.BookingSnapshot{Booking: b, FieldOwnerID: fld.OwnerID(), FieldName: fld.Name()}, nil
		}).AnyTimes()
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.metrics.EXPECT().ObserveLifecycle(gomock.Any(), gomock.Any()).AnyTimes()
}

func TestBookingCommands_LifecycleScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	f := newFixture(ctrl)
	fld := builder.NewFieldBuilder().BuildDomain()
	store := &memoryBookings{}
	store.wire(f, fld)
	uc := newBookingCommands(f)
	requester := actorWith(user.RoleUser)
	owner := access.Actor{ID: fld.OwnerID(), Role: user.RoleOwner}

	created, err := uc.Create(ctx, requester, commands.CreateBookingInput{
		FieldID: fld.ID(), Date: bookingDate, Window: timeslot.MustParseInterval("10:00", "12:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "200.00", created.TotalPrice().StringFixed(2))
	assert.Equal(t, booking.StatusPending, created.Status())

	confirmed, err := uc.UpdateStatus(ctx, owner, created.ID(), "confirmed")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, confirmed.Status())

	_, err = uc.Create(ctx, actorWith(user.RoleUser), commands.CreateBookingInput{
		FieldID: fld.ID(), Date: bookingDate, Window: timeslot.MustParseInterval("11:00", "11:30"),
	})
	require.ErrorIs(t, err, availability.ErrSlotUnavailable)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))

	free := availability.FreeIntervals(availability.Schedule{Hours: fld.Hours(), Bookings: store.active()})
	want := []timeslot.Interval{
		timeslot.MustParseInterval("08:00", "10:00"),
		timeslot.MustParseInterval("12:00", "22:00"),
	}
	if diff := cmp.Diff(want, free); diff != "" {
		t.Errorf("free intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingCommands_ConcurrentCreatesNeverOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	f := newFixture(ctrl)
	fld := builder.NewFieldBuilder().BuildDomain()
	store := &memoryBookings{}
	store.wire(f, fld)

	// Stand-in for the slot lock: one create at a time per field/date.
	var slot sync.Mutex
	uow := &lockedUoW{tx: f.tx, slot: &slot}
	uc := commands.NewBookingCommands(uow, f.notifier, f.invalidator, f.metrics, f.clock)

	windows := []string{"10:00-12:00", "11:00-13:00", "11:30-12:30", "12:00-14:00", "09:00-10:30", "13:00-15:00"}
	var wg sync.WaitGroup
	for _, w := range windows {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			start, end, _ := strings.Cut(w, "-")
			_, err := uc.Create(ctx, actorWith(user.RoleUser), commands.CreateBookingInput{
				FieldID: fld.ID(), Date: bookingDate, Window: timeslot.MustParseInterval(start, end),
			})
			if err != nil {
				assert.ErrorIs(t, err, availability.ErrSlotUnavailable)
			}
		}(w)
	}
	wg.Wait()

	active := store.active()
	require.NotEmpty(t, active)
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			assert.False(t, active[i].Window.Overlaps(active[j].Window), "%s overlaps %s", active[i].Window, active[j].Window)
		}
	}
}

// lockedUoW serializes transactions the way the advisory lock does.
type lockedUoW struct {
	tx   shared.Tx
	slot *sync.Mutex
}

func (u *lockedUoW) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	u.slot.Lock()
	defer u.slot.Unlock()
	return fn(ctx, u.tx)
}

func (u *lockedUoW) CommandReads() shared.CommandReads { return u.tx.Reads() }

func TestBookingCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		status         booking.Status
		requested      string
		actor          func(requesterID, ownerID uuid.UUID) access.Actor
		notifyOwner    bool
		notifyUser     bool
		expectedErr    error
		expectedStatus booking.Status
	}{
		{
			name:      "owner confirms and the requester is told",
			status:    booking.StatusPending,
			requested: "confirmed",
			actor: func(_, ownerID uuid.UUID) access.Actor {
				return access.Actor{ID: ownerID, Role: user.RoleOwner}
			},
			notifyUser:     true,
			expectedStatus: booking.StatusConfirmed,
		},
		{
			name:      "requester cancels and the owner is told",
			status:    booking.StatusConfirmed,
			requested: "cancelled",
			actor: func(requesterID, _ uuid.UUID) access.Actor {
				return access.Actor{ID: requesterID, Role: user.RoleUser}
			},
			notifyOwner:    true,
			expectedStatus: booking.StatusCancelled,
		},
		{
			name:      "admin completes",
			status:    booking.StatusConfirmed,
			requested: "completed",
			actor: func(uuid.UUID, uuid.UUID) access.Actor {
				return actorWith(user.RoleAdmin)
			},
			notifyUser:     true,
			expectedStatus: booking.StatusCompleted,
		},
		{
			name:      "cancelled is terminal",
			status:    booking.StatusCancelled,
			requested: "confirmed",
			actor: func(requesterID, _ uuid.UUID) access.Actor {
				return access.Actor{ID: requesterID, Role: user.RoleUser}
			},
			expectedErr:    booking.ErrInvalidTransition,
			expectedStatus: booking.StatusCancelled,
		},
		{
			name:      "completed is terminal",
			status:    booking.StatusCompleted,
			requested: "cancelled",
			actor: func(_, ownerID uuid.UUID) access.Actor {
				return access.Actor{ID: ownerID, Role: user.RoleOwner}
			},
			expectedErr:    booking.ErrInvalidTransition,
			expectedStatus: booking.StatusCompleted,
		},
		{
			name:      "unknown status",
			status:    booking.StatusPending,
			requested: "archived",
			actor: func(requesterID, _ uuid.UUID) access.Actor {
				return access.Actor{ID: requesterID, Role: user.RoleUser}
			},
			expectedErr:    booking.ErrUnknownStatus,
			expectedStatus: booking.StatusPending,
		},
		{
			name:      "unrelated user",
			status:    booking.StatusPending,
			requested: "cancelled",
			actor: func(uuid.UUID, uuid.UUID) access.Actor {
				return actorWith(user.RoleUser)
			},
			expectedErr:    access.ErrForbidden,
			expectedStatus: booking.StatusPending,
		},
		{
			name:      "owner of another field",
			status:    booking.StatusPending,
			requested: "confirmed",
			actor: func(uuid.UUID, uuid.UUID) access.Actor {
				return actorWith(user.RoleOwner)
			},
			expectedErr:    access.ErrForbidden,
			expectedStatus: booking.StatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = tc.status }).BuildDomain()
			snap := &shared.BookingSnapshot{Booking: b, FieldOwnerID: uuid.New(), FieldName: "Pitch 2"}
			actor := tc.actor(b.UserID(), snap.FieldOwnerID)

			f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(snap, nil).MinTimes(1).MaxTimes(2)
			reachesLock := !errors.Is(tc.expectedErr, access.ErrForbidden) && !errors.Is(tc.expectedErr, booking.ErrUnknownStatus)
			if reachesLock {
				f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), b.FieldID(), b.Date()).Return(nil)
			}
			if tc.expectedErr == nil {
				f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b).Return(nil)
				f.invalidator.EXPECT().Invalidate(gomock.Any(), b.FieldID(), b.Date()).Return(nil)
			}
			if tc.notifyOwner {
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notification.Notice) error {
						assert.Equal(t, snap.FieldOwnerID, n.UserID)
						return nil
					})
			}
			if tc.notifyUser {
				f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notification.Notice) error {
						assert.Equal(t, b.UserID(), n.UserID)
						return nil
					})
			}
			f.metrics.EXPECT().ObserveLifecycle("update_status", gomock.Any())

			actual, err := newBookingCommands(f).UpdateStatus(ctx, actor, b.ID(), tc.requested)

			assert.Equal(t, tc.expectedStatus, b.Status())
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, actual.Status())
		})
	}
}

func TestBookingCommands_UpdateStatusNotificationFailureKeepsChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	b := builder.NewBookingBuilder().BuildDomain()
	snap := &shared.BookingSnapshot{Booking: b, FieldOwnerID: uuid.New(), FieldName: "Pitch 2"}
	f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(snap, nil).Times(2)
	f.bookings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), b.FieldID(), b.Date()).Return(nil)
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b).Return(nil)
	f.invalidator.EXPECT().Invalidate(gomock.Any(), b.FieldID(), b.Date()).Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))
	f.metrics.EXPECT().ObserveLifecycle("update_status", "ok")

	actual, err := newBookingCommands(f).UpdateStatus(context.Background(),
		access.Actor{ID: b.UserID(), Role: user.RoleUser}, b.ID(), "cancelled")

	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, actual.Status())
}

func TestBookingCommands_UpdateStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	id := uuid.New()
	f.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, booking.ErrNotFound)
	f.metrics.EXPECT().ObserveLifecycle("update_status", "booking_not_found")

	_, err := newBookingCommands(f).UpdateStatus(context.Background(), actorWith(user.RoleAdmin), id, "confirmed")

	require.ErrorIs(t, err, booking.ErrNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		actor       func(b *booking.Booking, ownerID uuid.UUID) access.Actor
		setupMock   func(f *fixture, b *booking.Booking)
		expectedErr error
	}{
		{
			name: "requester deletes",
			actor: func(b *booking.Booking, _ uuid.UUID) access.Actor {
				return access.Actor{ID: b.UserID(), Role: user.RoleUser}
			},
			setupMock: func(f *fixture, b *booking.Booking) {
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID()).Return(nil)
				f.invalidator.EXPECT().Invalidate(gomock.Any(), b.FieldID(), b.Date()).Return(nil)
				f.metrics.EXPECT().ObserveLifecycle("delete", "ok")
			},
		},
		{
			name: "field owner deletes",
			actor: func(_ *booking.Booking, ownerID uuid.UUID) access.Actor {
				return access.Actor{ID: ownerID, Role: user.RoleOwner}
			},
			setupMock: func(f *fixture, b *booking.Booking) {
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID()).Return(nil)
				f.invalidator.EXPECT().Invalidate(gomock.Any(), b.FieldID(), b.Date()).Return(nil)
				f.metrics.EXPECT().ObserveLifecycle("delete", "ok")
			},
		},
		{
			name: "stranger is refused",
			actor: func(*booking.Booking, uuid.UUID) access.Actor {
				return actorWith(user.RoleUser)
			},
			setupMock: func(f *fixture, b *booking.Booking) {
				f.metrics.EXPECT().ObserveLifecycle("delete", "unauthorized")
			},
			expectedErr: access.ErrForbidden,
		},
		{
			name: "row vanished before delete",
			actor: func(b *booking.Booking, _ uuid.UUID) access.Actor {
				return access.Actor{ID: b.UserID(), Role: user.RoleUser}
			},
			setupMock: func(f *fixture, b *booking.Booking) {
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID()).Return(booking.ErrNotFound)
				f.metrics.EXPECT().ObserveLifecycle("delete", "booking_not_found")
			},
			expectedErr: booking.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			b := builder.NewBookingBuilder().BuildDomain()
			ownerID := uuid.New()
			f.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).
				Return(&shared.BookingSnapshot{Booking: b, FieldOwnerID: ownerID}, nil)
			tc.setupMock(f, b)

			err := newBookingCommands(f).Delete(ctx, tc.actor(b, ownerID), b.ID())

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
