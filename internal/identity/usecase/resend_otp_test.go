package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
	"github.com/yudhapratama/gonote/internal/pkg/hash"
	"github.com/yudhapratama/gonote/internal/pkg/idempotency"
	"golang.org/x/crypto/bcrypt"
)

func TestResendOTP(t *testing.T) {
	now := time.Now()

	unverified := func() *entity.User {
		old := now.Add(-time.Minute)
		return &entity.User{
			ID:           9,
			Email:        "carol@example.com",
			FullName:     "Carol Lin",
			Verified:     false,
			OTPHash:      "stale-hash",
			OTPExpiresAt: &old,
		}
	}

	t.Run("unknown email is not found", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return nil, goerror.ErrNotFound
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		err := uc.ResendOTP(context.Background(), ResendOTPInput{Email: "carol@example.com"})
		assertCode(t, err, goerror.CodeNotFound)
	})

	t.Run("verified account can never re-enter", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return &entity.User{ID: 9, Email: "carol@example.com", Verified: true}, nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		err := uc.ResendOTP(context.Background(), ResendOTPInput{Email: "carol@example.com"})
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("throttled resend is too many requests", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return unverified(), nil
			},
		}
		idemp := &fakeIdemp{
			acquire: func(context.Context, string, time.Duration) (idempotency.State, error) {
				return idempotency.StateInProgress, nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, idemp)
		err := uc.ResendOTP(context.Background(), ResendOTPInput{Email: "carol@example.com"})
		assertCode(t, err, goerror.CodeTooManyRequest)
	})

	t.Run("losing the verification race is a conflict", func(t *testing.T) {
		// The account was verified between the read and the guarded
		// challenge overwrite; zero rows means there is nothing to resend.
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return unverified(), nil
			},
			setOTPChallenge: func(context.Context, entity.OTPChallenge) error {
				return goerror.ErrNotFound
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		err := uc.ResendOTP(context.Background(), ResendOTPInput{Email: "carol@example.com"})
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("success overwrites challenge and resends email", func(t *testing.T) {
		var challenge entity.OTPChallenge
		var throttleKey string
		var sentCode string

		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return unverified(), nil
			},
			setOTPChallenge: func(_ context.Context, in entity.OTPChallenge) error {
				challenge = in
				return nil
			},
		}
		idemp := &fakeIdemp{
			acquire: func(_ context.Context, key string, d time.Duration) (idempotency.State, error) {
				throttleKey = key
				if d != time.Minute {
					t.Errorf("expected 60s throttle, got %v", d)
				}
				return idempotency.StateNone, nil
			},
		}
		mail := &fakeRepoMail{
			sendOTP: func(_ context.Context, _, _, code string) error {
				sentCode = code
				return nil
			},
		}

		uc := testUsecase(t, now, repo, mail, idemp)
		if err := uc.ResendOTP(context.Background(), ResendOTPInput{Email: "carol@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if throttleKey != "identity:resend-otp:carol@example.com" {
			t.Errorf("unexpected throttle key %q", throttleKey)
		}
		if challenge.UserID != 9 {
			t.Errorf("expected challenge for user 9, got %d", challenge.UserID)
		}
		if !challenge.ExpiresAt.Equal(now.Add(10 * time.Minute)) {
			t.Errorf("unexpected challenge expiry %v", challenge.ExpiresAt)
		}
		if sentCode != "123456" {
			t.Errorf("expected code 123456 sent, got %q", sentCode)
		}
		if !hash.NewBcrypt(bcrypt.MinCost, "").Verify(challenge.OTPHash, sentCode) {
			t.Error("stored challenge hash does not match the sent code")
		}
	})
}
