package repository

import (
	"context"

	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=user.go -destination=../../mock/repository/user_mock.go -package=repositorymock
type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.Reject(infra.WrapRepoErr("failed to create user", err), infra.Outcomes{
			infra.KindDuplicateKey: user.ErrAlreadyExists,
		})
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserPassword(ctx, tx, sqlc.UpdateUserPasswordParams{
		ID:           u.ID(),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return errs.Storage(infra.WrapRepoErr("failed to update user password", err))
	}
	if n == 0 {
		return user.ErrNotFound.Because(infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
	}
	return nil
}
