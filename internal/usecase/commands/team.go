package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/team"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=team.go -destination=../../mock/commands/team_mock.go -package=commandsmock
type TeamCommands interface {
	Create(ctx context.Context, actor access.Actor, name, description string) (*team.Team, error)
	AddMember(ctx context.Context, actor access.Actor, teamID, userID uuid.UUID) error
	Leave(ctx context.Context, actor access.Actor, teamID uuid.UUID) error
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, name, description *string) (*team.Team, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	Join(ctx context.Context, actor access.Actor, id uuid.UUID) error
	RemoveMember(ctx context.Context, actor access.Actor, teamID, userID uuid.UUID) error
}

type teamCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTeamCommands(uow shared.UnitOfWork, clk clock.Clock) TeamCommands {
	return &teamCommandsImpl{uow: uow, clock: clk}
}

func (uc *teamCommandsImpl) Create(ctx context.Context, actor access.Actor, name, description string) (*team.Team, error) {
	t, leader, err := team.New(actor.ID, name, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Teams().Create(ctx, tx.DB(), t, leader)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// AddMember is reserved to the team leader.
func (uc *teamCommandsImpl) AddMember(ctx context.Context, actor access.Actor, teamID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := uc.ledTeam(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if _, err := tx.Reads().UserByID(ctx, userID); err != nil {
			return err
		}
		return tx.Teams().AddMember(ctx, tx.DB(), t.NewMember(userID, uc.clock.Now()))
	})
}

func (uc *teamCommandsImpl) Leave(ctx context.Context, actor access.Actor, teamID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Reads().TeamByID(ctx, teamID)
		if err != nil {
			return err
		}
		if t.LeaderID() == actor.ID {
			return team.ErrLeaderCannotLeave
		}
		return tx.Teams().RemoveMember(ctx, tx.DB(), teamID, actor.ID)
	})
}

// Update is reserved to the team leader.
func (uc *teamCommandsImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, name, description *string) (*team.Team, error) {
	var t *team.Team
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		t, err = uc.ledTeam(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := t.Revise(name, description); err != nil {
			return err
		}
		return tx.Teams().Update(ctx, tx.DB(), t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *teamCommandsImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.ledTeam(ctx, tx, actor, id); err != nil {
			return err
		}
		return tx.Teams().Delete(ctx, tx.DB(), id)
	})
}

// Join adds the caller as a plain member.
func (uc *teamCommandsImpl) Join(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Reads().TeamByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Teams().AddMember(ctx, tx.DB(), t.NewMember(actor.ID, uc.clock.Now()))
	})
}

// RemoveMember lets the leader drop anyone but themselves.
func (uc *teamCommandsImpl) RemoveMember(ctx context.Context, actor access.Actor, teamID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := uc.ledTeam(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if err := t.CanRemove(userID); err != nil {
			return err
		}
		return tx.Teams().RemoveMember(ctx, tx.DB(), teamID, userID)
	})
}

func (uc *teamCommandsImpl) ledTeam(ctx context.Context, tx shared.Tx, actor access.Actor, id uuid.UUID) (*team.Team, error) {
	t, err := tx.Reads().TeamByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, []uuid.UUID{t.LeaderID()}); err != nil {
		return nil, err
	}
	return t, nil
}
