//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"field-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "100", "200.00", "87.5", "1234.56", "0.01"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got, err := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("null maps to zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})
}

func TestDateToPgtype(t *testing.T) {
	in := time.Date(2025, 3, 14, 23, 30, 0, 0, time.FixedZone("EET", 7200))
	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), pd.Time)
	assert.Equal(t, pd.Time, pgconv.DateFromPgtype(pd))
}

func TestTimeOfDay(t *testing.T) {
	pt := pgconv.TimeOfDayToPgtype(10 * 3600)
	assert.Equal(t, int64(36_000_000_000), pt.Microseconds)
	assert.Equal(t, int32(36000), pgconv.TimeOfDayFromPgtype(pt))
}
