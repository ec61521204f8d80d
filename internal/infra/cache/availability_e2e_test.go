//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra/cache"
	"field-booking/internal/pkg/config"
	"field-booking/internal/testing/redistest"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduleStore serves a mutable schedule and can run a hook while a read
// is in flight, after the schedule was loaded but before it is returned.
type scheduleStore struct {
	queries.FieldReadStore
	schedule   availability.Schedule
	duringRead func()
}

func (s *scheduleStore) Schedule(context.Context, uuid.UUID, timeslot.Date) (availability.Schedule, error) {
	loaded := availability.Schedule{Hours: s.schedule.Hours, Bookings: append([]availability.Booking(nil), s.schedule.Bookings...)}
	if hook := s.duringRead; hook != nil {
		s.duringRead = nil
		hook()
	}
	return loaded, nil
}

func newRedisCache(t *testing.T) *cache.AvailabilityCache {
	t.Helper()
	client, err := cache.NewClient(context.Background(), config.RedisConfig{URL: redistest.NewURL(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewAvailabilityCache(client, time.Minute)
}

func TestAvailabilityCache_BookingCommittedDuringRead(t *testing.T) {
	ctx := context.Background()
	c := newRedisCache(t)
	fieldID := uuid.New()
	date := timeslot.MustParseDate("2025-03-10")
	committed := availability.Booking{ID: uuid.New(), Window: timeslot.MustParseInterval("10:00", "12:00")}

	store := &scheduleStore{schedule: availability.Schedule{Hours: timeslot.MustParseInterval("08:00", "22:00")}}
	store.duringRead = func() {
		store.schedule.Bookings = append(store.schedule.Bookings, committed)
		require.NoError(t, c.Invalidate(ctx, fieldID, date))
	}
	q := queries.NewFieldQueries(store, c)

	stale, err := q.Availability(ctx, fieldID, date)
	require.NoError(t, err)
	assert.Empty(t, stale.BookedSlots)

	fresh, err := q.Availability(ctx, fieldID, date)
	require.NoError(t, err)
	require.Len(t, fresh.BookedSlots, 1)
	assert.Equal(t, queries.SlotView{StartTime: "10:00", EndTime: "12:00"}, fresh.BookedSlots[0])
}

func TestAvailabilityCache_HoursChangeDropsEveryDate(t *testing.T) {
	ctx := context.Background()
	c := newRedisCache(t)
	fieldID := uuid.New()
	monday := timeslot.MustParseDate("2025-03-10")
	tuesday := timeslot.MustParseDate("2025-03-11")

	store := &scheduleStore{schedule: availability.Schedule{Hours: timeslot.MustParseInterval("08:00", "22:00")}}
	q := queries.NewFieldQueries(store, c)
	for _, d := range []timeslot.Date{monday, tuesday} {
		_, err := q.Availability(ctx, fieldID, d)
		require.NoError(t, err)
		cached, _, err := c.Get(ctx, fieldID, d)
		require.NoError(t, err)
		require.NotNil(t, cached)
	}

	store.schedule.Hours = timeslot.MustParseInterval("16:00", "20:00")
	require.NoError(t, c.InvalidateField(ctx, fieldID))

	for _, d := range []timeslot.Date{monday, tuesday} {
		view, err := q.Availability(ctx, fieldID, d)
		require.NoError(t, err)
		assert.Equal(t, "16:00", view.OpeningTime)
		assert.Equal(t, []queries.SlotView{{StartTime: "16:00", EndTime: "20:00"}}, view.AvailableSlots)
	}
}

func TestAvailabilityCache_SetAfterInvalidationIsDropped(t *testing.T) {
	ctx := context.Background()
	c := newRedisCache(t)
	fieldID := uuid.New()
	date := timeslot.MustParseDate("2025-03-10")

	_, version, err := c.Get(ctx, fieldID, date)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, fieldID, date))

	view := &queries.AvailabilityView{FieldID: fieldID, Date: date.String()}
	require.NoError(t, c.Set(ctx, view, version))

	cached, _, err := c.Get(ctx, fieldID, date)
	require.NoError(t, err)
	assert.Nil(t, cached)
}
