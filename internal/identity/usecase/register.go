package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=2,max=100"`
}

type RegisterOutput struct {
	Email        string
	OTPExpiresAt time.Time
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	// Advisory pre-check only; the unique index on email is the arbiter when
	// two registrations race.
	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	code, otpHash, expiresAt, err := s.issueChallenge()
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:           s.uid.Generate(),
		Email:        in.Email,
		FullName:     in.FullName,
		Password:     string(hashedPassword),
		OTPHash:      otpHash,
		OTPExpiresAt: expiresAt,
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// The identity row is kept on mail failure; the account stays reachable
	// through the resend flow.
	if err := s.repoMail.SendOTP(ctx, newUser.Email, newUser.FullName, code); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "user_id", newUser.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{
		Email:        newUser.Email,
		OTPExpiresAt: expiresAt,
	}, nil
}
