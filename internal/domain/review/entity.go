package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's rating of a field; a user reviews a field at most once.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	fieldID   uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(userID, fieldID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		fieldID:   fieldID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) FieldID() uuid.UUID   { return r.fieldID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func Reconstruct(id, userID, fieldID uuid.UUID, rating Rating, comment Comment, createdAt time.Time) *Review {
	return &Review{id: id, userID: userID, fieldID: fieldID, rating: rating, comment: comment, createdAt: createdAt}
}

// Revise replaces the rating and comment that are given; nil keeps the
// current value. Nothing changes when either value is invalid.
func (r *Review) Revise(ratingValue *int, commentText *string) error {
	rating, comment := r.rating, r.comment
	if ratingValue != nil {
		v, err := NewRating(*ratingValue)
		if err != nil {
			return err
		}
		rating = v
	}
	if commentText != nil {
		c, err := NewComment(*commentText)
		if err != nil {
			return err
		}
		comment = c
	}
	r.rating, r.comment = rating, comment
	return nil
}
