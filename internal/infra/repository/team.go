package repository

import (
	"context"

	"field-booking/internal/domain/team"
	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=team.go -destination=../../mock/repository/team_mock.go -package=repositorymock
type TeamWriteQueries interface {
	CreateTeam(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTeamParams) (sqlc.Teams, error)
	AddTeamMember(ctx context.Context, db sqlc.DBTX, arg sqlc.AddTeamMemberParams) error
	RemoveTeamMember(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveTeamMemberParams) (int64, error)
	UpdateTeam(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTeamParams) (int64, error)
	DeleteTeam(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type TeamRepository struct {
	queries TeamWriteQueries
	db      sqlc.DBTX
}

func NewTeamRepository(queries TeamWriteQueries, db sqlc.DBTX) *TeamRepository {
	return &TeamRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the team and its leader membership. Callers run it inside a
// transaction so both rows land together.
func (r *TeamRepository) Create(ctx context.Context, tx sqlc.DBTX, t *team.Team, leader team.Member) error {
	_, err := r.queries.CreateTeam(ctx, tx, sqlc.CreateTeamParams{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		LeaderID:    t.LeaderID(),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to create team", err))
	}
	return r.AddMember(ctx, tx, leader)
}

func (r *TeamRepository) Update(ctx context.Context, tx sqlc.DBTX, t *team.Team) error {
	n, err := r.queries.UpdateTeam(ctx, tx, sqlc.UpdateTeamParams{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
	})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to update team", err))
	}
	if n == 0 {
		return team.ErrNotFound.Because(infra.WrapRepoErr("team not found", nil, infra.KindNotFound))
	}
	return nil
}

// Delete removes the team; memberships go with it by cascade.
func (r *TeamRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteTeam(ctx, tx, id)
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to delete team", err))
	}
	if n == 0 {
		return team.ErrNotFound.Because(infra.WrapRepoErr("team not found", nil, infra.KindNotFound))
	}
	return nil
}

func (r *TeamRepository) AddMember(ctx context.Context, tx sqlc.DBTX, m team.Member) error {
	err := r.queries.AddTeamMember(ctx, tx, sqlc.AddTeamMemberParams{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: pgconv.TimeToPgtype(m.JoinedAt),
	})
	if err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to add team member", err), infra.Outcomes{
			infra.KindDuplicateKey:       team.ErrAlreadyMember,
			infra.KindForeignKeyViolated: team.ErrNotFound,
		})
	}
	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, tx sqlc.DBTX, teamID, userID uuid.UUID) error {
	n, err := r.queries.RemoveTeamMember(ctx, tx, sqlc.RemoveTeamMemberParams{TeamID: teamID, UserID: userID})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to remove team member", err))
	}
	if n == 0 {
		return team.ErrNotMember.Because(infra.WrapRepoErr("team member not found", nil, infra.KindNotFound))
	}
	return nil
}
