package shared

import (
	"context"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/payment"
	"field-booking/internal/domain/review"
	"field-booking/internal/domain/team"
	"field-booking/internal/domain/timeslot"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra/sqlc"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../mock/shared/uow_mock.go -package=sharedmock
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Fields() FieldRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Teams() TeamRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads the state a command validates against. Missing rows
// come back as the matching not-found rejection.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	FieldByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
	ActiveBookings(ctx context.Context, fieldID uuid.UUID, date timeslot.Date) ([]availability.Booking, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	HasCompletedPayment(ctx context.Context, bookingID uuid.UUID) (bool, error)
	TeamByID(ctx context.Context, id uuid.UUID) (*team.Team, error)
	IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
}

// BookingSnapshot is a booking plus the field facts its operations need.
type BookingSnapshot struct {
	Booking      *booking.Booking
	FieldOwnerID uuid.UUID
	FieldName    string
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type FieldRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, f *field.Field) error
	Update(ctx context.Context, tx sqlc.DBTX, f *field.Field) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	ReplaceFacilities(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, names []string) error
}

type BookingRepository interface {
	// LockSlot holds a transaction-scoped lock on (field, date); every writer
	// that checks availability takes it before reading the day's bookings.
	LockSlot(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, date timeslot.Date) error
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}

type TeamRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *team.Team, leader team.Member) error
	Update(ctx context.Context, tx sqlc.DBTX, t *team.Team) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	AddMember(ctx context.Context, tx sqlc.DBTX, m team.Member) error
	RemoveMember(ctx context.Context, tx sqlc.DBTX, teamID, userID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *review.Review) error
	Update(ctx context.Context, tx sqlc.DBTX, r *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n notification.Notice, now time.Time) (uuid.UUID, error)
	MarkRead(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error
}
