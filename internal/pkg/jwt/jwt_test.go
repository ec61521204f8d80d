//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trips user id and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		id := uuid.New()

		token, err := svc.GenerateToken(id, user.RoleOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		token, err := jwt.NewService("one", time.Hour).GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = jwt.NewService("two", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("reports expiry", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
