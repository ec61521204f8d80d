package request

import (
	"reflect"
	"strings"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules and reports
// offending fields by their json/form names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseTimeOfDay(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseDate(fl.Field().String())
		return err == nil
	})
}

func optionalDate(s string) (*timeslot.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := timeslot.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalHours(opening, closing *string) (*timeslot.Interval, error) {
	if opening == nil && closing == nil {
		return nil, nil
	}
	if opening == nil || closing == nil {
		return nil, field.ErrInvalidOperatingHours
	}
	hours, err := timeslot.ParseInterval(*opening, *closing)
	if err != nil {
		return nil, err
	}
	return &hours, nil
}
