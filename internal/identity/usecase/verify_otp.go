package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,numeric"`
}

type VerifyOTPOutput struct {
	Token    string
	UserID   int64
	Email    string
	FullName string
}

func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Email not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A verified account has no stored challenge, so a repeat verification
	// lands here too.
	if !user.HasChallenge() {
		return nil, goerror.NewBusiness("No verification code pending", goerror.CodeConflict)
	}

	// Expiry is checked before the hash compare so an expired-but-correct
	// code is reported as expired, not invalid.
	if s.clock.Now().After(*user.OTPExpiresAt) {
		return nil, goerror.NewBusiness("Verification code has expired", goerror.CodeUnauthorized)
	}

	if !s.bcrypt.Verify(user.OTPHash, in.OTP) {
		slog.WarnContext(ctx, "otp code does not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeUnauthorized)
	}

	// Consume-once: verification clears the challenge and activates the account.
	// The update is guarded on verified = FALSE; zero rows means a concurrent
	// request verified the account first and consumed the challenge.
	if err := s.repoDB.MarkUserVerified(ctx, user.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("No verification code pending", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo mark user verified", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}
