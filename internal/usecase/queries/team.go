package queries

import (
	"context"
	"slices"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/team"
	"field-booking/internal/infra"

	"github.com/google/uuid"
)

type TeamMemberView struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type TeamView struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	LeaderID    uuid.UUID         `json:"leader_id"`
	Members     []*TeamMemberView `json:"members"`
	CreatedAt   time.Time         `json:"created_at"`
}

type TeamListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LeaderID     uuid.UUID `json:"leader_id"`
	MembersCount int64     `json:"members_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type TeamSort string

const (
	TeamSortCreatedAt TeamSort = "created_at"
	TeamSortName      TeamSort = "name"
)

type TeamFilter struct {
	Search string
	SortBy TeamSort
	Desc   bool
}

type TeamPage struct {
	Teams      []*TeamListItem `json:"teams"`
	Pagination Pagination      `json:"pagination"`
}

type TeamSchedule struct {
	Team       *TeamView      `json:"team"`
	Bookings   []*BookingView `json:"bookings"`
	Pagination Pagination     `json:"pagination"`
}

//go:generate mockgen -source=team.go -destination=../../mock/queries/team_mock.go -package=queriesmock -aux_files=field-booking/internal/usecase/queries=pagination.go
type TeamReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context, filter TeamFilter, limit, offset int32) ([]*TeamListItem, error)
	Count(ctx context.Context, filter TeamFilter) (int64, error)
}

type TeamQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context, filter TeamFilter, page PageRequest) (*TeamPage, error)
	Schedule(ctx context.Context, actor access.Actor, id uuid.UUID, page PageRequest) (*TeamSchedule, error)
}

type teamQueriesImpl struct {
	store    TeamReadStore
	bookings BookingReadStore
}

func NewTeamQueries(store TeamReadStore, bookings BookingReadStore) TeamQueries {
	return &teamQueriesImpl{store: store, bookings: bookings}
}

func (q *teamQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*TeamView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: team.ErrNotFound})
	}
	return v, nil
}

func (q *teamQueriesImpl) List(ctx context.Context, filter TeamFilter, page PageRequest) (*TeamPage, error) {
	if filter.SortBy == "" {
		filter.SortBy = TeamSortCreatedAt
	}
	page = page.Normalize()
	items, err := q.store.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &TeamPage{Teams: items, Pagination: NewPagination(page, total)}, nil
}

// Schedule lists the bookings made for a team. Only its members and admins
// see it.
func (q *teamQueriesImpl) Schedule(ctx context.Context, actor access.Actor, id uuid.UUID, page PageRequest) (*TeamSchedule, error) {
	t, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, memberIDs(t)); err != nil {
		return nil, err
	}

	page = page.Normalize()
	filter := BookingFilter{TeamID: &id}
	items, err := q.bookings.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	total, err := q.bookings.Count(ctx, filter)
	if err != nil {
		return nil, infra.Reject(err, nil)
	}
	return &TeamSchedule{Team: t, Bookings: items, Pagination: NewPagination(page, total)}, nil
}

func memberIDs(t *TeamView) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Members)+1)
	for _, m := range t.Members {
		ids = append(ids, m.UserID)
	}
	if !slices.Contains(ids, t.LeaderID) {
		ids = append(ids, t.LeaderID)
	}
	return ids
}
