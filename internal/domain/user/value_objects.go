package user

import (
	"regexp"
	"strings"

	"field-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Reject(errs.KindValidation, "invalid_email")
	ErrInvalidRole     = errs.Reject(errs.KindValidation, "invalid_role")
	ErrPasswordTooWeak = errs.Reject(errs.KindValidation, "password_too_weak")
	ErrInvalidName     = errs.Reject(errs.KindValidation, "invalid_name")
	ErrInactive        = errs.Reject(errs.KindUnauthorized, "user_inactive")
	ErrNotFound        = errs.Reject(errs.KindNotFound, "user_not_found")
	ErrAlreadyExists   = errs.Reject(errs.KindConflict, "user_already_exists")
)

const MinPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases s; addresses are unique case-insensitively.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
