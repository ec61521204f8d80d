package cache

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// OTPStore holds one password-reset code per email.
type OTPStore struct {
	client redis.Cmdable
}

var _ shared.OTPStore = (*OTPStore)(nil)

func NewOTPStore(client redis.Cmdable) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

func (s *OTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(email), code, ttl).Err(); err != nil {
		return errs.Wrap(err, "save otp")
	}
	return nil
}

// Consume deletes the stored code atomically, so a code verifies at most once.
func (s *OTPStore) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.GetDel(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "consume otp")
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}
