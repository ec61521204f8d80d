package readstore

import (
	"context"

	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=team.go -destination=../../mock/readstore/team_mock.go -package=readstoremock
type TeamReadQueries interface {
	GetTeamByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Teams, error)
	ListTeamMembers(ctx context.Context, db sqlc.DBTX, teamID uuid.UUID) ([]sqlc.ListTeamMembersRow, error)
	ListTeams(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTeamsParams) ([]sqlc.ListTeamsRow, error)
	CountTeams(ctx context.Context, db sqlc.DBTX, search pgtype.Text) (int64, error)
}

type TeamReadStore struct {
	queries TeamReadQueries
	db      sqlc.DBTX
}

func NewTeamReadStore(queries TeamReadQueries, db sqlc.DBTX) *TeamReadStore {
	return &TeamReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TeamReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TeamView, error) {
	t, err := r.queries.GetTeamByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get team by id", err)
	}
	rows, err := r.queries.ListTeamMembers(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list team members", err)
	}
	members := make([]*queries.TeamMemberView, len(rows))
	for i, m := range rows {
		members[i] = &queries.TeamMemberView{
			UserID:   m.UserID,
			Name:     m.UserName,
			Email:    m.UserEmail,
			Role:     m.Role,
			JoinedAt: pgconv.TimeFromPgtype(m.JoinedAt),
		}
	}
	return &queries.TeamView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		Members:     members,
		CreatedAt:   pgconv.TimeFromPgtype(t.CreatedAt),
	}, nil
}

func (r *TeamReadStore) List(ctx context.Context, filter queries.TeamFilter, limit, offset int32) ([]*queries.TeamListItem, error) {
	rows, err := r.queries.ListTeams(ctx, r.db, sqlc.ListTeamsParams{
		Search: optionalText(filter.Search),
		SortBy: string(filter.SortBy),
		Desc:   filter.Desc,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	out := make([]*queries.TeamListItem, len(rows))
	for i, t := range rows {
		out[i] = &queries.TeamListItem{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			LeaderID:     t.LeaderID,
			MembersCount: t.MembersCount,
			CreatedAt:    pgconv.TimeFromPgtype(t.CreatedAt),
		}
	}
	return out, nil
}

func (r *TeamReadStore) Count(ctx context.Context, filter queries.TeamFilter) (int64, error) {
	n, err := r.queries.CountTeams(ctx, r.db, optionalText(filter.Search))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count teams", err)
	}
	return n, nil
}
