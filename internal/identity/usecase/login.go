package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	Token    string
	UserID   int64
	Email    string
	FullName string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, goerror.NewBusiness("Email not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid email or password", goerror.CodeUnauthorized)
	}

	if !user.Verified {
		return nil, goerror.NewBusiness("Email not verified, please verify your email first", goerror.CodeForbidden)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}
