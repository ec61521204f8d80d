package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID         uuid.UUID          `json:"id"`
	FieldID    uuid.UUID          `json:"field_id"`
	UserID     uuid.UUID          `json:"user_id"`
	TeamID     pgtype.UUID        `json:"team_id"`
	Date       pgtype.Date        `json:"date"`
	StartTime  pgtype.Time        `json:"start_time"`
	EndTime    pgtype.Time        `json:"end_time"`
	TotalPrice pgtype.Numeric     `json:"total_price"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type Fields struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Governorate  string             `json:"governorate"`
	Description  string             `json:"description"`
	PricePerHour pgtype.Numeric     `json:"price_per_hour"`
	OpeningTime  pgtype.Time        `json:"opening_time"`
	ClosingTime  pgtype.Time        `json:"closing_time"`
	Latitude     pgtype.Float8      `json:"latitude"`
	Longitude    pgtype.Float8      `json:"longitude"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Notifications struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      string             `json:"type"`
	IsRead    bool               `json:"is_read"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Payments struct {
	ID            uuid.UUID          `json:"id"`
	BookingID     uuid.UUID          `json:"booking_id"`
	UserID        uuid.UUID          `json:"user_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	Currency      string             `json:"currency"`
	Method        string             `json:"method"`
	TransactionID string             `json:"transaction_id"`
	Status        string             `json:"status"`
	CompletedAt   pgtype.Timestamptz `json:"completed_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type Reviews struct {
	ID        uuid.UUID          `json:"id"`
	FieldID   uuid.UUID          `json:"field_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Rating    int32              `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type TeamMembers struct {
	TeamID   uuid.UUID          `json:"team_id"`
	UserID   uuid.UUID          `json:"user_id"`
	Role     string             `json:"role"`
	JoinedAt pgtype.Timestamptz `json:"joined_at"`
}

type Teams struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	LeaderID    uuid.UUID          `json:"leader_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Phone        string             `json:"phone"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}
