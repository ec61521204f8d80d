package review

import (
	"strings"
	"unicode/utf8"

	"field-booking/internal/pkg/errs"
)

const MaxCommentLength = 1000

var (
	ErrInvalidRating       = errs.Reject(errs.KindValidation, "invalid_rating")
	ErrCommentTooLong      = errs.Reject(errs.KindValidation, "comment_too_long")
	ErrNotFound            = errs.Reject(errs.KindNotFound, "review_not_found")
	ErrReviewAlreadyExists = errs.Reject(errs.KindConflict, "review_already_exists")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional free text.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }
