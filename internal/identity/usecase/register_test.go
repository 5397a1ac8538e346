package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
	"github.com/yudhapratama/gonote/internal/pkg/hash"
	"golang.org/x/crypto/bcrypt"
)

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Code() != want {
		t.Fatalf("expected code %s, got %s (%v)", want, gerr.Code(), err)
	}
}

func TestRegister(t *testing.T) {
	now := time.Now()

	t.Run("creates unverified user and sends otp", func(t *testing.T) {
		var created entity.NewUser
		var sentTo, sentCode string

		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return nil, goerror.ErrNotFound
			},
			createUser: func(_ context.Context, in entity.NewUser) error {
				created = in
				return nil
			},
		}
		mail := &fakeRepoMail{
			sendOTP: func(_ context.Context, email, _, code string) error {
				sentTo = email
				sentCode = code
				return nil
			},
		}

		uc := testUsecase(t, now, repo, mail, nil)
		out, err := uc.Register(context.Background(), RegisterInput{
			Email:    "  Alice@Example.COM ",
			Password: "secret123",
			FullName: " Alice Doe ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Email != "alice@example.com" {
			t.Errorf("expected normalized email, got %q", out.Email)
		}
		if created.Email != "alice@example.com" || created.FullName != "Alice Doe" {
			t.Errorf("unexpected created user: %+v", created)
		}
		if created.ID != 42 {
			t.Errorf("expected generated id 42, got %d", created.ID)
		}

		verifier := hash.NewBcrypt(bcrypt.MinCost, "")
		if !verifier.Verify(created.Password, "secret123") {
			t.Error("stored password hash does not verify")
		}
		if !verifier.Verify(created.OTPHash, "123456") {
			t.Error("stored otp hash does not verify")
		}

		wantExpiry := now.Add(10 * time.Minute)
		if !created.OTPExpiresAt.Equal(wantExpiry) {
			t.Errorf("expected otp expiry %v, got %v", wantExpiry, created.OTPExpiresAt)
		}
		if !out.OTPExpiresAt.Equal(wantExpiry) {
			t.Errorf("expected output expiry %v, got %v", wantExpiry, out.OTPExpiresAt)
		}

		if sentTo != "alice@example.com" || sentCode != "123456" {
			t.Errorf("otp email not sent as expected: to=%q code=%q", sentTo, sentCode)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: "alice@example.com"}, nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "alice@example.com",
			Password: "secret123",
			FullName: "Alice Doe",
		})
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("unique index race surfaces as conflict", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return nil, goerror.ErrNotFound
			},
			createUser: func(context.Context, entity.NewUser) error {
				return goerror.ErrConflict
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "alice@example.com",
			Password: "secret123",
			FullName: "Alice Doe",
		})
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("mail failure keeps the identity row", func(t *testing.T) {
		createCalls := 0
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return nil, goerror.ErrNotFound
			},
			createUser: func(context.Context, entity.NewUser) error {
				createCalls++
				return nil
			},
		}
		mail := &fakeRepoMail{
			sendOTP: func(context.Context, string, string, string) error {
				return errors.New("smtp: connection refused")
			},
		}

		uc := testUsecase(t, now, repo, mail, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "alice@example.com",
			Password: "secret123",
			FullName: "Alice Doe",
		})
		assertCode(t, err, goerror.CodeInternal)

		if createCalls != 1 {
			t.Errorf("expected exactly one create call, got %d", createCalls)
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		uc := testUsecase(t, now, &fakeRepoDB{}, &fakeRepoMail{}, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "alice@example.com",
			Password: "short",
			FullName: "Alice Doe",
		})
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}
