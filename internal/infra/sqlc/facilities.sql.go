package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const listFieldFacilities = `-- name: ListFieldFacilities :many
SELECT name FROM field_facilities WHERE field_id = $1 ORDER BY name`

func (q *Queries) ListFieldFacilities(ctx context.Context, db DBTX, fieldID uuid.UUID) ([]string, error) {
	rows, err := db.Query(ctx, listFieldFacilities, fieldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteFieldFacilities = `-- name: DeleteFieldFacilities :exec
DELETE FROM field_facilities WHERE field_id = $1`

func (q *Queries) DeleteFieldFacilities(ctx context.Context, db DBTX, fieldID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteFieldFacilities, fieldID)
	return err
}

const addFieldFacilities = `-- name: AddFieldFacilities :exec
INSERT INTO field_facilities (field_id, name)
SELECT $1, unnest($2::text[])`

type AddFieldFacilitiesParams struct {
	FieldID uuid.UUID `json:"field_id"`
	Names   []string  `json:"names"`
}

func (q *Queries) AddFieldFacilities(ctx context.Context, db DBTX, arg AddFieldFacilitiesParams) error {
	_, err := db.Exec(ctx, addFieldFacilities, arg.FieldID, arg.Names)
	return err
}
