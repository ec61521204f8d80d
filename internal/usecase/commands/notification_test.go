//go:build unit

package commands_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/notification"
	"field-booking/internal/domain/user"
	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationCommands_ScopedToActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	f := newFixture(ctrl)
	actor := actorWith(user.RoleUser)
	mine, foreign := uuid.New(), uuid.New()
	f.notifications.EXPECT().MarkRead(gomock.Any(), gomock.Any(), mine, actor.ID).Return(nil)
	f.notifications.EXPECT().MarkRead(gomock.Any(), gomock.Any(), foreign, actor.ID).Return(notification.ErrNotFound)
	f.notifications.EXPECT().MarkAllRead(gomock.Any(), gomock.Any(), actor.ID).Return(int64(3), nil)
	f.notifications.EXPECT().Delete(gomock.Any(), gomock.Any(), mine, actor.ID).Return(nil)
	uc := commands.NewNotificationCommands(f.uow)

	require.NoError(t, uc.MarkRead(ctx, actor, mine))
	require.ErrorIs(t, uc.MarkRead(ctx, actor, foreign), notification.ErrNotFound)

	n, err := uc.MarkAllRead(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, uc.Delete(ctx, actor, mine))
}
