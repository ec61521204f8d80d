package payment

import "field-booking/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodWallet       Method = "wallet"
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
)

// Methods lists the accepted methods in display order.
var Methods = []Method{MethodCreditCard, MethodDebitCard, MethodWallet, MethodCash, MethodBankTransfer}

var (
	ErrInvalidStatus     = errs.Reject(errs.KindValidation, "invalid_payment_status")
	ErrInvalidMethod     = errs.Reject(errs.KindValidation, "invalid_payment_method")
	ErrNotFound          = errs.Reject(errs.KindNotFound, "payment_not_found")
	ErrAlreadyCompleted  = errs.Reject(errs.KindConflict, "payment_already_completed")
	ErrNotRefundable     = errs.Reject(errs.KindConflict, "payment_not_refundable")
	ErrBookingNotPayable = errs.Reject(errs.KindConflict, "booking_not_payable")
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrInvalidMethod
}

func (s Status) String() string { return string(s) }
func (m Method) String() string { return string(m) }
