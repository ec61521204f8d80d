package request

import "field-booking/internal/usecase/queries"

type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,isodate"`
	EndDate   string `form:"end_date" binding:"omitempty,isodate"`
}

func (q *DateRangeQuery) ToRange() (queries.DateRange, error) {
	from, err := optionalDate(q.StartDate)
	if err != nil {
		return queries.DateRange{}, err
	}
	to, err := optionalDate(q.EndDate)
	if err != nil {
		return queries.DateRange{}, err
	}
	return queries.DateRange{From: from, To: to}, nil
}

type TrendQuery struct {
	DateRangeQuery
	GroupBy string `form:"group_by" binding:"omitempty,oneof=day week month"`
}

func (q *TrendQuery) Unit() queries.TrendUnit {
	return queries.TrendUnit(q.GroupBy)
}
