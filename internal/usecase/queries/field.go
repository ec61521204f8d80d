package queries

import (
	"context"
	"log/slog"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FieldView struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Governorate   string          `json:"governorate"`
	Description   string          `json:"description"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
	OpeningTime   string          `json:"opening_time"`
	ClosingTime   string          `json:"closing_time"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int64           `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type FieldFilter struct {
	Governorate string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Search      string
	OwnerID     *uuid.UUID
}

type FieldPage struct {
	Fields     []*FieldView `json:"fields"`
	Pagination Pagination   `json:"pagination"`
}

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityView is the day plan of one field. It is also the cached form.
type AvailabilityView struct {
	FieldID        uuid.UUID  `json:"field_id"`
	Date           string     `json:"date"`
	OpeningTime    string     `json:"opening_time"`
	ClosingTime    string     `json:"closing_time"`
	BookedSlots    []SlotView `json:"booked_slots"`
	AvailableSlots []SlotView `json:"available_slots"`
}

type AvailableSearch struct {
	Date        timeslot.Date
	Window      timeslot.Interval
	Governorate string
}

//go:generate mockgen -source=field.go -destination=../../mock/queries/field_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type FieldReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context, filter FieldFilter, limit, offset int32) ([]*FieldView, error)
	Count(ctx context.Context, filter FieldFilter) (int64, error)
	ListAvailable(ctx context.Context, search AvailableSearch, limit, offset int32) ([]*FieldView, error)
	Schedule(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) (availability.Schedule, error)
	Facilities(ctx context.Context, fieldID uuid.UUID) ([]string, error)
}

// CacheVersion is the invalidation generation a day plan was computed under.
type CacheVersion struct {
	Field int64
	Date  int64
}

// AvailabilityCache stores computed day plans. Misses and cache faults fall
// through to storage. Get returns a nil view on a miss together with the
// version to hand back to Set; Set drops the view if an invalidation
// happened in between.
type AvailabilityCache interface {
	Get(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) (*AvailabilityView, CacheVersion, error)
	Set(ctx context.Context, view *AvailabilityView, version CacheVersion) error
}

type FieldQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context, filter FieldFilter, page PageRequest) (*FieldPage, error)
	Availability(ctx context.Context, id uuid.UUID, date timeslot.Date) (*AvailabilityView, error)
	SearchAvailable(ctx context.Context, search AvailableSearch, page PageRequest) ([]*FieldView, error)
	Facilities(ctx context.Context, id uuid.UUID) ([]string, error)
}

type fieldQueriesImpl struct {
	store FieldReadStore
	cache AvailabilityCache
}

func NewFieldQueries(store FieldReadStore, cache AvailabilityCache) FieldQueries {
	return &fieldQueriesImpl{store: store, cache: cache}
}

func (q *fieldQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}
	return v, nil
}

func (q *fieldQueriesImpl) List(ctx context.Context, filter FieldFilter, page PageRequest) (*FieldPage, error) {
	page = page.Normalize()
	items, err := q.store.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &FieldPage{Fields: items, Pagination: NewPagination(page, total)}, nil
}

func (q *fieldQueriesImpl) Availability(ctx context.Context, id uuid.UUID, date timeslot.Date) (*AvailabilityView, error) {
	var (
		version   CacheVersion
		cacheable bool
	)
	if q.cache != nil {
		cached, v, err := q.cache.Get(ctx, id, date)
		switch {
		case err != nil:
			slog.Warn("availability cache read failed", "field_id", id, "date", date.String(), "error", err)
		case cached != nil:
			return cached, nil
		default:
			version, cacheable = v, true
		}
	}

	schedule, err := q.store.Schedule(ctx, id, date)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}
	view := BuildAvailabilityView(id, date, schedule)

	if cacheable {
		if err := q.cache.Set(ctx, view, version); err != nil {
			slog.Warn("availability cache write failed", "field_id", id, "date", date.String(), "error", err)
		}
	}
	return view, nil
}

func (q *fieldQueriesImpl) SearchAvailable(ctx context.Context, search AvailableSearch, page PageRequest) ([]*FieldView, error) {
	if !search.Window.IsValid() {
		return nil, availability.ErrInvalidWindow
	}
	page = page.Normalize()
	items, err := q.store.ListAvailable(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return items, nil
}

func (q *fieldQueriesImpl) Facilities(ctx context.Context, id uuid.UUID) ([]string, error) {
	names, err := q.store.Facilities(ctx, id)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}
	return names, nil
}

// BuildAvailabilityView renders a schedule with the availability engine.
func BuildAvailabilityView(fieldID uuid.UUID, date timeslot.Date, s availability.Schedule) *AvailabilityView {
	return &AvailabilityView{
		FieldID:        fieldID,
		Date:           date.String(),
		OpeningTime:    s.Hours.Start.String(),
		ClosingTime:    s.Hours.End.String(),
		BookedSlots:    toSlotViews(availability.BusyIntervals(s)),
		AvailableSlots: toSlotViews(availability.FreeIntervals(s)),
	}
}

func toSlotViews(in []timeslot.Interval) []SlotView {
	out := make([]SlotView, len(in))
	for i, iv := range in {
		out[i] = SlotView{StartTime: iv.Start.String(), EndTime: iv.End.String()}
	}
	return out
}
