package team

import (
	"strings"
	"time"

	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTeam        = errs.Reject(errs.KindValidation, "invalid_team")
	ErrNotFound           = errs.Reject(errs.KindNotFound, "team_not_found")
	ErrAlreadyMember      = errs.Reject(errs.KindConflict, "already_team_member")
	ErrNotMember          = errs.Reject(errs.KindNotFound, "not_team_member")
	ErrLeaderCannotLeave  = errs.Reject(errs.KindConflict, "leader_cannot_leave")
	ErrCannotRemoveLeader = errs.Reject(errs.KindValidation, "cannot_remove_team_leader")
)

type MemberRole string

const (
	MemberRoleLeader MemberRole = "leader"
	MemberRoleMember MemberRole = "member"
)

type Team struct {
	id          uuid.UUID
	name        string
	description string
	leaderID    uuid.UUID
	createdAt   time.Time
}

type Member struct {
	TeamID   uuid.UUID
	UserID   uuid.UUID
	Role     MemberRole
	JoinedAt time.Time
}

// New creates a team led by its creator and returns the leader membership.
func New(leaderID uuid.UUID, name, description string, now time.Time) (*Team, Member, error) {
	name, err := teamName(name)
	if err != nil {
		return nil, Member{}, err
	}
	t := &Team{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		leaderID:    leaderID,
		createdAt:   now,
	}
	return t, Member{TeamID: t.id, UserID: leaderID, Role: MemberRoleLeader, JoinedAt: now}, nil
}

func Reconstruct(id uuid.UUID, name, description string, leaderID uuid.UUID, createdAt time.Time) *Team {
	return &Team{id: id, name: name, description: description, leaderID: leaderID, createdAt: createdAt}
}

func (t *Team) NewMember(userID uuid.UUID, now time.Time) Member {
	return Member{TeamID: t.id, UserID: userID, Role: MemberRoleMember, JoinedAt: now}
}

// Revise renames the team and replaces its description; nil keeps the
// current value.
func (t *Team) Revise(name, description *string) error {
	if name != nil {
		n, err := teamName(*name)
		if err != nil {
			return err
		}
		t.name = n
	}
	if description != nil {
		t.description = strings.TrimSpace(*description)
	}
	return nil
}

// CanRemove reports whether userID may be removed by someone else.
func (t *Team) CanRemove(userID uuid.UUID) error {
	if userID == t.leaderID {
		return ErrCannotRemoveLeader
	}
	return nil
}

func teamName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", ErrInvalidTeam
	}
	return s, nil
}

func (t *Team) ID() uuid.UUID        { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) Description() string  { return t.description }
func (t *Team) LeaderID() uuid.UUID  { return t.leaderID }
func (t *Team) CreatedAt() time.Time { return t.createdAt }
