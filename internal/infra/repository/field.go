package repository

import (
	"context"

	"field-booking/internal/domain/field"
	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=field.go -destination=../../mock/repository/field_mock.go -package=repositorymock
type FieldWriteQueries interface {
	CreateField(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFieldParams) (sqlc.Fields, error)
	UpdateField(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFieldParams) (sqlc.Fields, error)
	DeleteField(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteFieldFacilities(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) error
	AddFieldFacilities(ctx context.Context, db sqlc.DBTX, arg sqlc.AddFieldFacilitiesParams) error
}

type FieldRepository struct {
	queries FieldWriteQueries
	db      sqlc.DBTX
}

func NewFieldRepository(queries FieldWriteQueries, db sqlc.DBTX) *FieldRepository {
	return &FieldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FieldRepository) Create(ctx context.Context, tx sqlc.DBTX, f *field.Field) error {
	if _, err := r.queries.CreateField(ctx, tx, converter.FieldToCreateParams(f)); err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to create field", err), infra.Outcomes{
			infra.KindForeignKeyViolated: user.ErrNotFound,
		})
	}
	return nil
}

func (r *FieldRepository) Update(ctx context.Context, tx sqlc.DBTX, f *field.Field) error {
	if _, err := r.queries.UpdateField(ctx, tx, converter.FieldToUpdateParams(f)); err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to update field", err), infra.Outcomes{
			infra.KindNotFound: field.ErrNotFound,
		})
	}
	return nil
}

func (r *FieldRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteField(ctx, tx, id)
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to delete field", err))
	}
	if n == 0 {
		return field.ErrNotFound.Because(infra.WrapRepoErr("field not found", nil, infra.KindNotFound))
	}
	return nil
}

// ReplaceFacilities swaps the amenity list of a field; tx must be a
// transaction so readers never see the list half written.
func (r *FieldRepository) ReplaceFacilities(ctx context.Context, tx sqlc.DBTX, fieldID uuid.UUID, names []string) error {
	if err := r.queries.DeleteFieldFacilities(ctx, tx, fieldID); err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to clear field facilities", err))
	}
	if len(names) == 0 {
		return nil
	}
	err := r.queries.AddFieldFacilities(ctx, tx, sqlc.AddFieldFacilitiesParams{FieldID: fieldID, Names: names})
	if err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to add field facilities", err), infra.Outcomes{
			infra.KindForeignKeyViolated: field.ErrNotFound,
		})
	}
	return nil
}
