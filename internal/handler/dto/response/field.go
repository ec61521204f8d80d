package response

import (
	"time"

	"field-booking/internal/domain/field"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FieldResponse struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Governorate  string          `json:"governorate"`
	Description  string          `json:"description"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	OpeningTime  string          `json:"opening_time" copier:"-"`
	ClosingTime  string          `json:"closing_time" copier:"-"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromField(f *field.Field) (*FieldResponse, error) {
	res, err := fromEntity[FieldResponse](f)
	if err != nil {
		return nil, err
	}
	res.OpeningTime = f.Hours().Start.String()
	res.ClosingTime = f.Hours().End.String()
	return res, nil
}
