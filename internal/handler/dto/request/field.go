package request

import (
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFieldRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Location     string          `json:"location" binding:"required,max=500"`
	Governorate  string          `json:"governorate" binding:"required,max=100"`
	Description  string          `json:"description" binding:"max=2000"`
	PricePerHour decimal.Decimal `json:"price_per_hour" binding:"required"`
	OpeningTime  *string         `json:"opening_time" binding:"omitempty,timeofday"`
	ClosingTime  *string         `json:"closing_time" binding:"omitempty,timeofday"`
	Latitude     *float64        `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64        `json:"longitude" binding:"omitempty,longitude"`
}

func (r *CreateFieldRequest) ToParams() (field.Params, error) {
	hours, err := optionalHours(r.OpeningTime, r.ClosingTime)
	if err != nil {
		return field.Params{}, err
	}
	return field.Params{
		Name:         r.Name,
		Location:     r.Location,
		Governorate:  r.Governorate,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		Hours:        hours,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}, nil
}

type UpdateFieldRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=200"`
	Location     *string          `json:"location" binding:"omitempty,max=500"`
	Governorate  *string          `json:"governorate" binding:"omitempty,max=100"`
	Description  *string          `json:"description" binding:"omitempty,max=2000"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	OpeningTime  *string          `json:"opening_time" binding:"omitempty,timeofday"`
	ClosingTime  *string          `json:"closing_time" binding:"omitempty,timeofday"`
	Latitude     *float64         `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64         `json:"longitude" binding:"omitempty,longitude"`
}

// ToPatch requires opening and closing time together.
func (r *UpdateFieldRequest) ToPatch() (commands.FieldPatch, error) {
	hours, err := optionalHours(r.OpeningTime, r.ClosingTime)
	if err != nil {
		return commands.FieldPatch{}, err
	}
	return commands.FieldPatch{
		Name:         r.Name,
		Location:     r.Location,
		Governorate:  r.Governorate,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		Hours:        hours,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}, nil
}

type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) ToPage() queries.PageRequest {
	return queries.PageRequest{Page: q.Page, PerPage: q.PerPage}.Normalize()
}

type ListFieldsQuery struct {
	PageQuery
	Governorate string           `form:"governorate"`
	MinPrice    *decimal.Decimal `form:"min_price"`
	MaxPrice    *decimal.Decimal `form:"max_price"`
	Search      string           `form:"search" binding:"max=100"`
	OwnerID     string           `form:"owner_id" binding:"omitempty,uuid"`
}

func (q *ListFieldsQuery) ToFilter() queries.FieldFilter {
	filter := queries.FieldFilter{
		Governorate: q.Governorate,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		Search:      q.Search,
	}
	if id, err := uuid.Parse(q.OwnerID); err == nil {
		filter.OwnerID = &id
	}
	return filter
}

type AvailableFieldsQuery struct {
	PageQuery
	Date        string `form:"date" binding:"required,isodate"`
	StartTime   string `form:"start_time" binding:"required,timeofday"`
	EndTime     string `form:"end_time" binding:"required,timeofday"`
	Governorate string `form:"governorate"`
}

func (q *AvailableFieldsQuery) ToSearch() (queries.AvailableSearch, error) {
	date, err := timeslot.ParseDate(q.Date)
	if err != nil {
		return queries.AvailableSearch{}, err
	}
	window, err := timeslot.ParseInterval(q.StartTime, q.EndTime)
	if err != nil {
		return queries.AvailableSearch{}, err
	}
	return queries.AvailableSearch{Date: date, Window: window, Governorate: q.Governorate}, nil
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

type SetFacilitiesRequest struct {
	Facilities []string `json:"facilities" binding:"max=20,dive,max=50"`
}
