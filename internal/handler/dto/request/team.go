package request

import (
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type ListTeamsQuery struct {
	PageQuery
	Search    string `form:"search" binding:"max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ToFilter sorts newest first unless asked otherwise.
func (q *ListTeamsQuery) ToFilter() queries.TeamFilter {
	return queries.TeamFilter{
		Search: q.Search,
		SortBy: queries.TeamSort(q.SortBy),
		Desc:   q.SortOrder != "asc",
	}
}
