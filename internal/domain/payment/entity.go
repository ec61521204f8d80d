package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "EGP"

type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	userID        uuid.UUID
	amount        decimal.Decimal
	currency      string
	method        Method
	transactionID string
	status        Status
	completedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// New opens a pending payment for amount. Settlement is simulated: the
// transaction id is generated locally.
func New(bookingID, userID uuid.UUID, amount decimal.Decimal, currency string, method Method, now time.Time) *Payment {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		userID:        userID,
		amount:        amount,
		currency:      currency,
		method:        method,
		transactionID: uuid.NewString(),
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}
}

func Reconstruct(
	id, bookingID, userID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	method Method,
	transactionID string,
	status Status,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		userID:        userID,
		amount:        amount,
		currency:      currency,
		method:        method,
		transactionID: transactionID,
		status:        status,
		completedAt:   completedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// SetStatus is the administrative override. A refunded payment is final.
func (p *Payment) SetStatus(next Status, now time.Time) error {
	if p.status == StatusRefunded && next != StatusRefunded {
		return ErrNotRefundable
	}
	p.status = next
	if next == StatusCompleted && p.completedAt == nil {
		p.completedAt = &now
	}
	p.updatedAt = now
	return nil
}

func (p *Payment) Refund(now time.Time) error {
	if p.status != StatusCompleted {
		return ErrNotRefundable
	}
	p.status = StatusRefunded
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) UserID() uuid.UUID       { return p.userID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Currency() string        { return p.currency }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) TransactionID() string   { return p.transactionID }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }
