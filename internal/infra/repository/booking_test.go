//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/team"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository"
	"field-booking/internal/infra/sqlc"
	repositorymock "field-booking/internal/mock/repository"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/testing/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()

	testCases := []struct {
		name        string
		mutate      func(*builder.BookingBuilder)
		setupMock   func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedErr *errs.Rejection
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: booking inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, nil)
			},
		},
		{
			name: "error: exclusion constraint maps to slot_unavailable",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, overlap)
			},
			expectedErr: availability.ErrSlotUnavailable,
			expectKind:  infra.KindConflict,
		},
		{
			name: "error: missing field",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, fk)
			},
			expectedErr: field.ErrNotFound,
			expectKind:  infra.KindForeignKeyViolated,
		},
		{
			name:   "error: missing team when a team is attached",
			mutate: func(b *builder.BookingBuilder) { b.TeamID = &teamID },
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, fk)
			},
			expectedErr: team.ErrNotFound,
			expectKind:  infra.KindForeignKeyViolated,
		},
		{
			name: "error: connection failure is a storage error",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errConnectionLost)
			},
			expectedErr: errs.ErrStorage,
			expectKind:  infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			tc.setupMock(mockQueries, mockDB)

			err := repo.Create(ctx, mockDB, b.BuildDomain())

			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}

func TestBookingRepository_CreatePassesSlotColumns(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	b := builder.NewBookingBuilder().BuildDomain()
	mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
			assert.Equal(t, b.ID(), arg.ID)
			assert.Equal(t, b.FieldID(), arg.FieldID)
			assert.Equal(t, int64(18*3600)*1_000_000, arg.StartTime.Microseconds)
			assert.Equal(t, int64(19*3600+1800)*1_000_000, arg.EndTime.Microseconds)
			assert.Equal(t, "pending", arg.Status)
			assert.False(t, arg.TeamID.Valid)
			return sqlc.Bookings{}, nil
		})

	require.NoError(t, repo.Create(ctx, mockDB, b))
}

// =============================================================================
// LockSlot Tests
// =============================================================================

func TestBookingRepository_LockSlot(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()
	date := timeslot.MustParseDate("2025-03-10")

	t.Run("success: lock keyed by field and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockFieldDate(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.LockFieldDateParams) error {
				assert.Equal(t, fieldID, arg.FieldID)
				assert.Equal(t, date.Time(), arg.Date.Time)
				return nil
			})

		assert.NoError(t, repo.LockSlot(ctx, mockDB, fieldID, date))
	})

	t.Run("error: lock failure is a storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockFieldDate(ctx, mockDB, gomock.Any()).Return(errConnectionLost)

		err := repo.LockSlot(ctx, mockDB, fieldID, date)
		require.Error(t, err)
		assert.Equal(t, errs.KindStorage, errs.KindOf(err))
	})
}

// =============================================================================
// UpdateStatus / Delete Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr *errs.Rejection
	}{
		{name: "success: status written"},
		{name: "error: booking vanished", queryErr: pgx.ErrNoRows, expectedErr: booking.ErrNotFound},
		{
			name:        "error: reactivation collides with another booking",
			queryErr:    &pgconn.PgError{Code: "23P01"},
			expectedErr: availability.ErrSlotUnavailable,
		},
		{name: "error: connection failure", queryErr: errConnectionLost, expectedErr: errs.ErrStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.Status = booking.StatusConfirmed
			}).BuildDomain()
			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.Bookings, error) {
					assert.Equal(t, "confirmed", arg.Status)
					return sqlc.Bookings{}, tc.queryErr
				})

			err := repo.UpdateStatus(ctx, mockDB, b)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name        string
		affected    int64
		queryErr    error
		expectedErr *errs.Rejection
	}{
		{name: "success: row removed", affected: 1},
		{name: "error: nothing to delete", affected: 0, expectedErr: booking.ErrNotFound},
		{name: "error: connection failure", queryErr: errConnectionLost, expectedErr: errs.ErrStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteBooking(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, id)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
