package queries

import (
	"context"

	"field-booking/internal/domain/club"
	"field-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClubView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	TotalFields   int64     `json:"total_fields"`
	TotalBookings int64     `json:"total_bookings"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
}

type ClubFieldView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Governorate   string          `json:"governorate"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
	BookingsCount int64           `json:"bookings_count"`
	ReviewsCount  int64           `json:"reviews_count"`
	AverageRating float64         `json:"average_rating"`
}

type ClubDetailView struct {
	ClubView
	RegisteredTeams int64            `json:"registered_teams"`
	Fields          []*ClubFieldView `json:"fields"`
}

type ClubFilter struct {
	Name        string
	Governorate string
	MinRating   *float64
	SortBy      club.SortKey
	Desc        bool
}

type ClubPage struct {
	Clubs      []*ClubView `json:"clubs"`
	Pagination Pagination  `json:"pagination"`
}

//go:generate mockgen -source=club.go -destination=../../mock/queries/club_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type ClubReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*ClubDetailView, error)
	Search(ctx context.Context, filter ClubFilter, limit, offset int32) ([]*ClubView, error)
	Count(ctx context.Context, filter ClubFilter) (int64, error)
	TopRated(ctx context.Context, limit int32) ([]*ClubView, error)
}

type ClubQueries interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*ClubDetailView, error)
	Search(ctx context.Context, filter ClubFilter, page PageRequest) (*ClubPage, error)
	TopRated(ctx context.Context, limit int) ([]*ClubView, error)
}

type clubQueriesImpl struct {
	store ClubReadStore
}

func NewClubQueries(store ClubReadStore) ClubQueries {
	return &clubQueriesImpl{store: store}
}

// Get fails with club_not_found for users that own no field.
func (q *clubQueriesImpl) Get(ctx context.Context, ownerID uuid.UUID) (*ClubDetailView, error) {
	v, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: club.ErrNotFound})
	}
	return v, nil
}

func (q *clubQueriesImpl) Search(ctx context.Context, filter ClubFilter, page PageRequest) (*ClubPage, error) {
	if filter.SortBy == "" {
		filter.SortBy = club.SortByID
	}
	page = page.Normalize()
	items, err := q.store.Search(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &ClubPage{Clubs: items, Pagination: NewPagination(page, total)}, nil
}

// TopRated ranks clubs by average rating, then by review count.
func (q *clubQueriesImpl) TopRated(ctx context.Context, limit int) ([]*ClubView, error) {
	items, err := q.store.TopRated(ctx, club.TopRatedLimit(limit))
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return items, nil
}
