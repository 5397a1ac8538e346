package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
	"github.com/yudhapratama/gonote/internal/pkg/idempotency"
)

type ResendOTPInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) ResendOTP(ctx context.Context, in ResendOTPInput) error {
	ctx, span := s.startSpan(ctx, "ResendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Email not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if user.Verified {
		return goerror.NewBusiness("Account already verified", goerror.CodeConflict)
	}

	throttle := s.cfg.GetSecond("modules.identity.resend_throttle_seconds")
	state, err := s.idemp.Acquire(ctx, "identity:resend-otp:"+in.Email, throttle)
	if err != nil {
		slog.ErrorContext(ctx, "failed to acquire resend throttle", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}
	if state != idempotency.StateNone {
		return goerror.NewBusiness("A code was sent recently, please wait before retrying", goerror.CodeTooManyRequest)
	}

	code, otpHash, expiresAt, err := s.issueChallenge()
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp challenge", "error", err)
		return goerror.NewServer(err)
	}

	// Overwrite semantics: the previous code is permanently dead after this.
	// The update is guarded on verified = FALSE; zero rows means the account
	// was verified between the read and the write.
	if err := s.repoDB.SetOTPChallenge(ctx, entity.OTPChallenge{
		UserID:    user.ID,
		OTPHash:   otpHash,
		ExpiresAt: expiresAt,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Account already verified", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo set otp challenge", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMail.SendOTP(ctx, user.Email, user.FullName, code); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
