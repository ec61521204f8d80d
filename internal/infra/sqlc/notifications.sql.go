package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotification = `-- name: CreateNotification :one
INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, FALSE, $6)
RETURNING id, user_id, title, message, type, is_read, created_at`

type CreateNotificationParams struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      string             `json:"type"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg CreateNotificationParams) (Notifications, error) {
	row := db.QueryRow(ctx, createNotification, arg.ID, arg.UserID, arg.Title, arg.Message, arg.Type, arg.CreatedAt)
	var i Notifications
	err := row.Scan(&i.ID, &i.UserID, &i.Title, &i.Message, &i.Type, &i.IsRead, &i.CreatedAt)
	return i, err
}

const listNotifications = `-- name: ListNotifications :many
SELECT id, user_id, title, message, type, is_read, created_at
FROM notifications
WHERE user_id = $1 AND (NOT $2::boolean OR is_read = FALSE)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

type ListNotificationsParams struct {
	UserID     uuid.UUID `json:"user_id"`
	UnreadOnly bool      `json:"unread_only"`
	Limit      int32     `json:"limit"`
	Offset     int32     `json:"offset"`
}

func (q *Queries) ListNotifications(ctx context.Context, db DBTX, arg ListNotificationsParams) ([]Notifications, error) {
	rows, err := db.Query(ctx, listNotifications, arg.UserID, arg.UnreadOnly, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Notifications{}
	for rows.Next() {
		var i Notifications
		if err := rows.Scan(&i.ID, &i.UserID, &i.Title, &i.Message, &i.Type, &i.IsRead, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countNotifications = `-- name: CountNotifications :one
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND (NOT $2::boolean OR is_read = FALSE)`

type CountNotificationsParams struct {
	UserID     uuid.UUID `json:"user_id"`
	UnreadOnly bool      `json:"unread_only"`
}

func (q *Queries) CountNotifications(ctx context.Context, db DBTX, arg CountNotificationsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countNotifications, arg.UserID, arg.UnreadOnly).Scan(&count)
	return count, err
}

const markNotificationRead = `-- name: MarkNotificationRead :execrows
UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

type MarkNotificationReadParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) MarkNotificationRead(ctx context.Context, db DBTX, arg MarkNotificationReadParams) (int64, error) {
	result, err := db.Exec(ctx, markNotificationRead, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const markAllNotificationsRead = `-- name: MarkAllNotificationsRead :execrows
UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

func (q *Queries) MarkAllNotificationsRead(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, markAllNotificationsRead, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteNotification = `-- name: DeleteNotification :execrows
DELETE FROM notifications WHERE id = $1 AND user_id = $2`

type DeleteNotificationParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) DeleteNotification(ctx context.Context, db DBTX, arg DeleteNotificationParams) (int64, error) {
	result, err := db.Exec(ctx, deleteNotification, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getNotification = `-- name: GetNotification :one
SELECT id, user_id, title, message, type, is_read, created_at
FROM notifications WHERE id = $1 AND user_id = $2`

type GetNotificationParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) GetNotification(ctx context.Context, db DBTX, arg GetNotificationParams) (Notifications, error) {
	row := db.QueryRow(ctx, getNotification, arg.ID, arg.UserID)
	var i Notifications
	err := row.Scan(&i.ID, &i.UserID, &i.Title, &i.Message, &i.Type, &i.IsRead, &i.CreatedAt)
	return i, err
}
