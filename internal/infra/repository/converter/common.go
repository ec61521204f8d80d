package converter

import (
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func WindowFromRow(start, end pgtype.Time) timeslot.Interval {
	return timeslot.Interval{
		Start: timeslot.TimeOfDay(pgconv.TimeOfDayFromPgtype(start)),
		End:   timeslot.TimeOfDay(pgconv.TimeOfDayFromPgtype(end)),
	}
}
