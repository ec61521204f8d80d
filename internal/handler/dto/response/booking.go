package response

import (
	"time"

	"field-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID         uuid.UUID       `json:"id"`
	FieldID    uuid.UUID       `json:"field_id"`
	UserID     uuid.UUID       `json:"user_id"`
	TeamID     *uuid.UUID      `json:"team_id,omitempty"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time" copier:"-"`
	EndTime    string          `json:"end_time" copier:"-"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func FromBooking(b *booking.Booking) (*BookingResponse, error) {
	res, err := fromEntity[BookingResponse](b)
	if err != nil {
		return nil, err
	}
	res.StartTime = b.Window().Start.String()
	res.EndTime = b.Window().End.String()
	return res, nil
}
