package response

import (
	"time"

	"field-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromPayment(p *payment.Payment) (*PaymentResponse, error) {
	return fromEntity[PaymentResponse](p)
}

type PaymentMethodResponse struct {
	Method string `json:"method"`
}

func FromPaymentMethods(methods []payment.Method) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		res[i] = PaymentMethodResponse{Method: m.String()}
	}
	return res
}
