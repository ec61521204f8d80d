package response

import (
	"time"

	"field-booking/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FieldID   uuid.UUID `json:"field_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReview(r *review.Review) (*ReviewResponse, error) {
	return fromEntity[ReviewResponse](r)
}
