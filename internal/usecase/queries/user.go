package queries

import (
	"context"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

//go:generate mockgen -source=user.go -destination=../../mock/queries/user_mock.go -package=queriesmock
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor access.Actor) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor access.Actor) (*UserView, error) {
	v, err := q.readStore.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, infra.Reject(err, infra.Outcomes{infra.KindNotFound: user.ErrNotFound})
	}
	if !v.IsActive {
		return nil, user.ErrInactive
	}
	return v, nil
}
