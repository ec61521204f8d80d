//go:build unit

package password_test

import (
	"testing"

	"field-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.HashWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.Compare(hashed, "correct horse"))
	assert.ErrorIs(t, password.Compare(hashed, "wrong horse"), password.ErrMismatch)
	assert.ErrorIs(t, password.Compare(hashed, ""), password.ErrInvalidPassword)

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
