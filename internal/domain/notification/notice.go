package notification

import (
	"fmt"

	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotFound = errs.Reject(errs.KindNotFound, "notification_not_found")

type Type string

const (
	TypeBooking Type = "booking"
	TypePayment Type = "payment"
	TypeReview  Type = "review"
	TypeSystem  Type = "system"
)

// Notice is one message addressed to a user. Delivery is best effort.
type Notice struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Type    Type
}

func BookingRequested(ownerID uuid.UUID, fieldName, date, window string) Notice {
	return Notice{
		UserID:  ownerID,
		Title:   "New Booking",
		Message: fmt.Sprintf("New booking request for %s on %s %s", fieldName, date, window),
		Type:    TypeBooking,
	}
}

func BookingStatusChanged(userID uuid.UUID, fieldName, date, status string) Notice {
	return Notice{
		UserID:  userID,
		Title:   "Booking Updated",
		Message: fmt.Sprintf("Booking for %s on %s is now %s", fieldName, date, status),
		Type:    TypeBooking,
	}
}

func PaymentReceived(ownerID uuid.UUID, amount, currency, fieldName string) Notice {
	return Notice{
		UserID:  ownerID,
		Title:   "Payment Received",
		Message: fmt.Sprintf("Payment of %s %s received for %s", amount, currency, fieldName),
		Type:    TypePayment,
	}
}

func PaymentStatusChanged(userID uuid.UUID, transactionID, status string) Notice {
	return Notice{
		UserID:  userID,
		Title:   "Payment Updated",
		Message: fmt.Sprintf("Payment %s is now %s", transactionID, status),
		Type:    TypePayment,
	}
}

func ReviewPosted(ownerID uuid.UUID, fieldName string, rating int) Notice {
	return Notice{
		UserID:  ownerID,
		Title:   "New Review",
		Message: fmt.Sprintf("%s received a %d-star review", fieldName, rating),
		Type:    TypeReview,
	}
}
