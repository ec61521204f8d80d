package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTeam = `-- name: CreateTeam :one
INSERT INTO teams (id, name, description, leader_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, description, leader_id, created_at`

type CreateTeamParams struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	LeaderID    uuid.UUID          `json:"leader_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateTeam(ctx context.Context, db DBTX, arg CreateTeamParams) (Teams, error) {
	row := db.QueryRow(ctx, createTeam, arg.ID, arg.Name, arg.Description, arg.LeaderID, arg.CreatedAt)
	var i Teams
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.LeaderID, &i.CreatedAt)
	return i, err
}

const getTeamByID = `-- name: GetTeamByID :one
SELECT id, name, description, leader_id, created_at FROM teams WHERE id = $1`

func (q *Queries) GetTeamByID(ctx context.Context, db DBTX, id uuid.UUID) (Teams, error) {
	row := db.QueryRow(ctx, getTeamByID, id)
	var i Teams
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.LeaderID, &i.CreatedAt)
	return i, err
}

const addTeamMember = `-- name: AddTeamMember :exec
INSERT INTO team_members (team_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`

type AddTeamMemberParams struct {
	TeamID   uuid.UUID          `json:"team_id"`
	UserID   uuid.UUID          `json:"user_id"`
	Role     string             `json:"role"`
	JoinedAt pgtype.Timestamptz `json:"joined_at"`
}

func (q *Queries) AddTeamMember(ctx context.Context, db DBTX, arg AddTeamMemberParams) error {
	_, err := db.Exec(ctx, addTeamMember, arg.TeamID, arg.UserID, arg.Role, arg.JoinedAt)
	return err
}

const getTeamMember = `-- name: GetTeamMember :one
SELECT team_id, user_id, role, joined_at FROM team_members WHERE team_id = $1 AND user_id = $2`

type GetTeamMemberParams struct {
	TeamID uuid.UUID `json:"team_id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) GetTeamMember(ctx context.Context, db DBTX, arg GetTeamMemberParams) (TeamMembers, error) {
	row := db.QueryRow(ctx, getTeamMember, arg.TeamID, arg.UserID)
	var i TeamMembers
	err := row.Scan(&i.TeamID, &i.UserID, &i.Role, &i.JoinedAt)
	return i, err
}

const removeTeamMember = `-- name: RemoveTeamMember :execrows
DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`

type RemoveTeamMemberParams struct {
	TeamID uuid.UUID `json:"team_id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) RemoveTeamMember(ctx context.Context, db DBTX, arg RemoveTeamMemberParams) (int64, error) {
	result, err := db.Exec(ctx, removeTeamMember, arg.TeamID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listTeamMembers = `-- name: ListTeamMembers :many
SELECT m.team_id, m.user_id, m.role, m.joined_at, u.name AS user_name, u.email AS user_email
FROM team_members m
JOIN users u ON u.id = m.user_id
WHERE m.team_id = $1
ORDER BY m.role = 'leader' DESC, m.joined_at, m.user_id`

type ListTeamMembersRow struct {
	TeamMembers
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

func (q *Queries) ListTeamMembers(ctx context.Context, db DBTX, teamID uuid.UUID) ([]ListTeamMembersRow, error) {
	rows, err := db.Query(ctx, listTeamMembers, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTeamMembersRow{}
	for rows.Next() {
		var i ListTeamMembersRow
		if err := rows.Scan(&i.TeamID, &i.UserID, &i.Role, &i.JoinedAt, &i.UserName, &i.UserEmail); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTeam = `-- name: UpdateTeam :execrows
UPDATE teams SET name = $2, description = $3 WHERE id = $1`

type UpdateTeamParams struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (q *Queries) UpdateTeam(ctx context.Context, db DBTX, arg UpdateTeamParams) (int64, error) {
	result, err := db.Exec(ctx, updateTeam, arg.ID, arg.Name, arg.Description)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTeam = `-- name: DeleteTeam :execrows
DELETE FROM teams WHERE id = $1`

func (q *Queries) DeleteTeam(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteTeam, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const teamFilter = `
WHERE ($1::text IS NULL OR t.name ILIKE '%' || $1::text || '%')`

// Sort keys are a closed set so the ORDER BY stays static SQL.
const listTeams = `-- name: ListTeams :many
SELECT t.id, t.name, t.description, t.leader_id, t.created_at,
       (SELECT COUNT(*) FROM team_members m WHERE m.team_id = t.id)::bigint AS members_count
FROM teams t` + teamFilter + `
ORDER BY
    CASE WHEN $2::text = 'name' AND NOT $3::bool THEN lower(t.name) END ASC,
    CASE WHEN $2::text = 'name' AND $3::bool THEN lower(t.name) END DESC,
    CASE WHEN $2::text = 'created_at' AND NOT $3::bool THEN t.created_at END ASC,
    CASE WHEN $2::text = 'created_at' AND $3::bool THEN t.created_at END DESC,
    t.id
LIMIT $4 OFFSET $5`

type ListTeamsParams struct {
	Search pgtype.Text `json:"search"`
	SortBy string      `json:"sort_by"`
	Desc   bool        `json:"desc"`
	Limit  int32       `json:"limit"`
	Offset int32       `json:"offset"`
}

type ListTeamsRow struct {
	Teams
	MembersCount int64 `json:"members_count"`
}

func (q *Queries) ListTeams(ctx context.Context, db DBTX, arg ListTeamsParams) ([]ListTeamsRow, error) {
	rows, err := db.Query(ctx, listTeams, arg.Search, arg.SortBy, arg.Desc, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTeamsRow{}
	for rows.Next() {
		var i ListTeamsRow
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.LeaderID, &i.CreatedAt, &i.MembersCount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTeams = `-- name: CountTeams :one
SELECT COUNT(*) FROM teams t` + teamFilter

func (q *Queries) CountTeams(ctx context.Context, db DBTX, search pgtype.Text) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countTeams, search).Scan(&count)
	return count, err
}
