package request

import (
	"field-booking/internal/domain/club"
	"field-booking/internal/usecase/queries"
)

type SearchClubsQuery struct {
	PageQuery
	Name        string   `form:"name" binding:"max=100"`
	Governorate string   `form:"governorate" binding:"max=100"`
	MinRating   *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	SortBy      string   `form:"sort_by" binding:"omitempty,oneof=id name rating"`
	SortOrder   string   `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (q *SearchClubsQuery) ToFilter() queries.ClubFilter {
	return queries.ClubFilter{
		Name:        q.Name,
		Governorate: q.Governorate,
		MinRating:   q.MinRating,
		SortBy:      club.SortKey(q.SortBy),
		Desc:        q.SortOrder == "desc",
	}
}

type TopRatedClubsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
