package errs

import (
	"errors"
)

// Kind classifies a failure for callers; every rejection surfaced by the
// booking core carries exactly one.
type Kind string

const (
	KindValidation   Kind = "validation_error"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
	KindStorage      Kind = "storage_error"
)

// Rejection is a typed outcome with a stable machine-readable reason.
// Two rejections are equal under errors.Is when kind and reason match,
// regardless of the attached cause.
type Rejection struct {
	kind   Kind
	reason string
	cause  error
}

func Reject(kind Kind, reason string) *Rejection {
	return &Rejection{kind: kind, reason: reason}
}

func (r *Rejection) Kind() Kind     { return r.kind }
func (r *Rejection) Reason() string { return r.reason }

func (r *Rejection) Error() string {
	if r.cause != nil {
		return r.reason + ": " + r.cause.Error()
	}
	return r.reason
}

func (r *Rejection) Unwrap() error { return r.cause }

func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.kind == r.kind && t.reason == r.reason
}

// Because returns a copy of r that keeps err as its cause.
func (r *Rejection) Because(err error) error {
	return &Rejection{kind: r.kind, reason: r.reason, cause: err}
}

// ErrStorage is the catch-all for persistence faults.
var ErrStorage = Reject(KindStorage, "storage_error")

// Storage marks err as a storage fault unless it already is a rejection.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var r *Rejection
	if errors.As(err, &r) {
		return err
	}
	return ErrStorage.Because(err)
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var r *Rejection
	if errors.As(err, &r) {
		return r.kind
	}
	return KindStorage
}

func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	var r *Rejection
	if errors.As(err, &r) {
		return r.reason
	}
	return ErrStorage.reason
}
