//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-booking/internal/infra/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPStore_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectSet("otp:player@example.com", "482913", 10*time.Minute).SetVal("OK")

	err := cache.NewOTPStore(client).Save(context.Background(), " Player@Example.com ", "482913", 10*time.Minute)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPStore_Consume(t *testing.T) {
	const key = "otp:player@example.com"

	testCases := []struct {
		name      string
		setup     func(redismock.ClientMock)
		code      string
		want      bool
		wantError bool
	}{
		{name: "matching code", setup: func(m redismock.ClientMock) { m.ExpectGetDel(key).SetVal("482913") }, code: "482913", want: true},
		{name: "wrong code", setup: func(m redismock.ClientMock) { m.ExpectGetDel(key).SetVal("482913") }, code: "000000"},
		{name: "expired or already used", setup: func(m redismock.ClientMock) { m.ExpectGetDel(key).RedisNil() }, code: "482913"},
		{name: "redis failure", setup: func(m redismock.ClientMock) { m.ExpectGetDel(key).SetErr(errors.New("timeout")) }, code: "482913", wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tc.setup(mock)

			ok, err := cache.NewOTPStore(client).Consume(context.Background(), "player@example.com", tc.code)

			require.NoError(t, mock.ExpectationsWereMet())
			if tc.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
