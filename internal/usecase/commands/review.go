package commands

import (
	"context"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/review"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	FieldID uuid.UUID
	Rating  int
	Comment string
}

// UpdateReviewInput changes only the values that are set.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

//go:generate mockgen -source=review.go -destination=../../mock/commands/review_mock.go -package=commandsmock
type ReviewCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateReviewInput) (*review.Review, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, in UpdateReviewInput) (*review.Review, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	after afterCommit
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, after: afterCommit{notifier: notifier}, clock: clk}
}

// Create posts the actor's single review of a field and tells the owner.
func (uc *reviewCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateReviewInput) (*review.Review, error) {
	rv, err := review.NewReview(actor.ID, in.FieldID, in.Rating, in.Comment, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var f *field.Field
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		f, err = tx.Reads().FieldByID(ctx, in.FieldID)
		if err != nil {
			return err
		}
		return tx.Reviews().Create(ctx, tx.DB(), rv)
	})
	if err != nil {
		return nil, err
	}

	if f.OwnerID() != actor.ID {
		uc.after.notify(ctx, notification.ReviewPosted(f.OwnerID(), f.Name(), rv.Rating().Value()))
	}
	return rv, nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, in UpdateReviewInput) (*review.Review, error) {
	var rv *review.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rv, err = tx.Reads().ReviewByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{rv.UserID()}); err != nil {
			return err
		}
		if err := rv.Revise(in.Rating, in.Comment); err != nil {
			return err
		}
		return tx.Reviews().Update(ctx, tx.DB(), rv)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := tx.Reads().ReviewByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.Authorize(actor, []uuid.UUID{rv.UserID()}); err != nil {
			return err
		}
		return tx.Reviews().Delete(ctx, tx.DB(), id)
	})
}
