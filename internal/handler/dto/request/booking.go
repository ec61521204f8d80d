package request

import (
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID   uuid.UUID  `json:"field_id" binding:"required"`
	TeamID    *uuid.UUID `json:"team_id"`
	Date      string     `json:"date" binding:"required,isodate"`
	StartTime string     `json:"start_time" binding:"required,timeofday"`
	EndTime   string     `json:"end_time" binding:"required,timeofday"`
}

// ToInput parses the wire formats only; window ordering and operating hours
// are checked by the booking itself.
func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := timeslot.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	window, err := timeslot.ParseInterval(r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		FieldID: r.FieldID,
		TeamID:  r.TeamID,
		Date:    date,
		Window:  window,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	PageQuery
	Status string `form:"status"`
	Date   string `form:"date" binding:"omitempty,isodate"`
}

func (q *ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	var filter queries.BookingFilter
	if q.Status != "" {
		status, err := booking.ParseStatus(q.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	date, err := optionalDate(q.Date)
	if err != nil {
		return filter, err
	}
	filter.Date = date
	return filter, nil
}
