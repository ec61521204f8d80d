//go:build unit

package field_test

import (
	"testing"
	"time"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() field.Params {
	return field.Params{
		Name:         " Heliopolis Club ",
		Location:     "Merghany St",
		Governorate:  "  Cairo ",
		PricePerHour: decimal.RequireFromString("99.999"),
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	t.Run("normalizes and defaults hours", func(t *testing.T) {
		f, err := field.New(ownerID, validParams(), now)
		require.NoError(t, err)

		assert.Equal(t, ownerID, f.OwnerID())
		assert.Equal(t, "Heliopolis Club", f.Name())
		assert.Equal(t, "cairo", f.Governorate())
		assert.Equal(t, "100", f.PricePerHour().String())
		assert.Equal(t, field.DefaultHours, f.Hours())
	})

	tests := []struct {
		name   string
		mutate func(p *field.Params)
		errIs  error
	}{
		{"blank name", func(p *field.Params) { p.Name = "  " }, field.ErrInvalidField},
		{"missing governorate", func(p *field.Params) { p.Governorate = "" }, field.ErrInvalidField},
		{"negative price", func(p *field.Params) { p.PricePerHour = decimal.NewFromInt(-1) }, field.ErrInvalidPrice},
		{"closing before opening", func(p *field.Params) {
			h := timeslot.NewInterval(timeslot.MustParseTimeOfDay("22:00"), timeslot.MustParseTimeOfDay("08:00"))
			p.Hours = &h
		}, field.ErrInvalidOperatingHours},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)

			f, err := field.New(ownerID, p, now)

			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, f)
		})
	}
}

func TestUpdateKeepsHoursWhenUnset(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	p := validParams()
	hours := timeslot.MustParseInterval("06:00", "23:30")
	p.Hours = &hours
	f, err := field.New(uuid.New(), p, now)
	require.NoError(t, err)

	update := validParams()
	update.Name = "Heliopolis Club 2"
	require.NoError(t, f.Update(update, now.Add(time.Hour)))

	assert.Equal(t, hours, f.Hours())
	assert.Equal(t, "Heliopolis Club 2", f.Name())
	assert.Equal(t, now.Add(time.Hour), f.UpdatedAt())
}
