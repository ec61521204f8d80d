package response

import (
	"field-booking/internal/domain/review"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"

	"github.com/jinzhu/copier"
)

// Envelope is the success body of every JSON endpoint.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// domain value objects render as their wire strings
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: timeslot.Date{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(timeslot.Date).String(), nil },
		},
		{
			SrcType: user.Email{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(user.Email).Value(), nil },
		},
		{
			SrcType: review.Comment{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(review.Comment).String(), nil },
		},
		{
			SrcType: review.Rating{},
			DstType: copier.Int,
			Fn:      func(src any) (any, error) { return src.(review.Rating).Value(), nil },
		},
	},
}

// fromEntity fills dst from the getters of an entity whose accessors share
// the response field names.
func fromEntity[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return nil, err
	}
	return dst, nil
}
