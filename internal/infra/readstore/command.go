package readstore

import (
	"context"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/payment"
	"field-booking/internal/domain/review"
	"field-booking/internal/domain/team"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=command.go -destination=../../mock/readstore/command_mock.go -package=readstoremock
type CommandReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error)
	ListActiveBookingsForFieldDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsForFieldDateParams) ([]sqlc.Bookings, error)
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	HasCompletedPayment(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
	GetTeamByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Teams, error)
	GetTeamMember(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTeamMemberParams) (sqlc.TeamMembers, error)
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
}

// CommandReadStore loads the aggregates commands validate against. Inside a
// transaction db is the transaction, so reads see its own writes and locks.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to find user by ID", err), infra.Outcomes{infra.KindNotFound: user.ErrNotFound})
	}
	return decoded(converter.UserFromRow(row))
}

func (r *CommandReadStore) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to find user by email", err), infra.Outcomes{infra.KindNotFound: user.ErrNotFound})
	}
	return decoded(converter.UserFromRow(row))
}

func (r *CommandReadStore) FieldByID(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to get field by id", err), infra.Outcomes{infra.KindNotFound: field.ErrNotFound})
	}
	return decoded(converter.FieldFromRow(row))
}

func (r *CommandReadStore) ActiveBookings(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) ([]availability.Booking, error) {
	rows, err := r.queries.ListActiveBookingsForFieldDate(ctx, r.db, sqlc.ListActiveBookingsForFieldDateParams{
		FieldID: fieldID,
		Date:    pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to list bookings for field date", err), nil)
	}
	out := make([]availability.Booking, len(rows))
	for i, row := range rows {
		out[i] = converter.BookingSlotFromRow(row)
	}
	return out, nil
}

func (r *CommandReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to get booking by id", err), infra.Outcomes{infra.KindNotFound: booking.ErrNotFound})
	}
	b, err := decoded(converter.BookingFromRow(row.Bookings))
	if err != nil {
		return nil, err
	}
	return &shared.BookingSnapshot{
		Booking:      b,
		FieldOwnerID: row.FieldOwnerID,
		FieldName:    row.FieldName,
	}, nil
}

func (r *CommandReadStore) PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to get payment by id", err), infra.Outcomes{infra.KindNotFound: payment.ErrNotFound})
	}
	return decoded(converter.PaymentFromRow(row))
}

func (r *CommandReadStore) HasCompletedPayment(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasCompletedPayment(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.Reject(infra.WrapRepoErr("failed to check completed payment", err), nil)
	}
	return ok, nil
}

func (r *CommandReadStore) TeamByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	row, err := r.queries.GetTeamByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to get team by id", err), infra.Outcomes{infra.KindNotFound: team.ErrNotFound})
	}
	return team.Reconstruct(row.ID, row.Name, row.Description, row.LeaderID, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func (r *CommandReadStore) IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	_, err := r.queries.GetTeamMember(ctx, r.db, sqlc.GetTeamMemberParams{TeamID: teamID, UserID: userID})
	if err == nil {
		return true, nil
	}
	if pgconv.IsNoRows(err) {
		return false, nil
	}
	return false, infra.Reject(infra.WrapRepoErr("failed to get team member", err), nil)
}

func (r *CommandReadStore) ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Reject(infra.WrapRepoErr("failed to get review by id", err), infra.Outcomes{infra.KindNotFound: review.ErrNotFound})
	}
	return decoded(converter.ReviewFromRow(row))
}

func decoded[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, errs.ErrStorage.Because(infra.WrapRepoErr("failed to decode row", err, infra.KindDBFailure))
	}
	return v, nil
}
