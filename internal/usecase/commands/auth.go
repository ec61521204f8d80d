package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/password"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Reject(errs.KindUnauthorized, "invalid_credentials")
	ErrInvalidOTP         = errs.Reject(errs.KindValidation, "invalid_otp")
)

const (
	otpDigits     = 6
	DefaultOTPTTL = 10 * time.Minute
)

var otpUpperBound = big.NewInt(1_000_000)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

type AuthResult struct {
	User  *user.User
	Token string
}

// OTPResult carries the reset code back to the caller; there is no mail or
// SMS channel.
type OTPResult struct {
	Code      string
	ExpiresIn time.Duration
}

//go:generate mockgen -source=auth.go -destination=../../mock/commands/auth_mock.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (*OTPResult, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	tokens   TokenIssuer
	otps     shared.OTPStore
	otpTTL   time.Duration
	hashCost int
	clock    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, otps shared.OTPStore, otpTTL time.Duration, clk clock.Clock) AuthCommands {
	if otpTTL <= 0 {
		otpTTL = DefaultOTPTTL
	}
	return &authCommandsImpl{
		uow:      uow,
		tokens:   tokens,
		otps:     otps,
		otpTTL:   otpTTL,
		hashCost: password.DefaultCost,
		clock:    clk,
	}
}

// Register creates an active account. Administrators cannot sign up.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = user.RoleUser.String()
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	if !role.CanSelfRegister() {
		return nil, user.ErrInvalidRole
	}

	hash, err := password.HashWithCost(pw.Value(), a.hashCost)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(in.Name, email, hash, in.Phone, role, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		// Unknown addresses look like a wrong password.
		if errs.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Compare(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, user.ErrInactive
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) (*OTPResult, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	code, err := newOTP()
	if err != nil {
		return nil, errs.Wrap(err, "generate otp")
	}
	if err := a.otps.Save(ctx, u.Email().Value(), code, a.otpTTL); err != nil {
		return nil, errs.Storage(err)
	}
	slog.Info("password reset requested", "user_id", u.ID())
	return &OTPResult{Code: code, ExpiresIn: a.otpTTL}, nil
}

// ResetPassword consumes the code whether or not it matches, so each code
// gets exactly one attempt.
func (a *authCommandsImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return err
	}
	u, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		return err
	}

	ok, err := a.otps.Consume(ctx, u.Email().Value(), code)
	if err != nil {
		return errs.Storage(err)
	}
	if !ok {
		return ErrInvalidOTP
	}

	hash, err := password.HashWithCost(pw.Value(), a.hashCost)
	if err != nil {
		return errs.Wrap(err, "hash password")
	}
	u.ChangePasswordHash(hash, a.clock.Now())
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdatePassword(ctx, tx.DB(), u)
	})
}

func newOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
