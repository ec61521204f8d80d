package response

import (
	"time"

	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

func FromAuthResult(r *commands.AuthResult, expiresIn time.Duration) (*AuthResponse, error) {
	u, err := fromEntity[UserResponse](r.User)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:        u,
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn.Seconds()),
	}, nil
}

type OTPResponse struct {
	OTP       string `json:"otp"`
	ExpiresIn int64  `json:"expires_in"`
}

func FromOTPResult(r *commands.OTPResult) *OTPResponse {
	return &OTPResponse{OTP: r.Code, ExpiresIn: int64(r.ExpiresIn.Seconds())}
}
