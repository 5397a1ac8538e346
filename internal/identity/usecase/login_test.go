package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/yudhapratama/gonote/internal/identity/entity"
	"github.com/yudhapratama/gonote/internal/pkg/goerror"
)

func TestLogin(t *testing.T) {
	now := time.Now()

	verifiedUser := func() *entity.User {
		return &entity.User{
			ID:       11,
			Email:    "dave@example.com",
			FullName: "Dave Kim",
			Password: mustHash(t, "secret123"),
			Verified: true,
		}
	}

	t.Run("unknown email is not found", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return nil, goerror.ErrNotFound
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		_, err := uc.Login(context.Background(), LoginInput{Email: "dave@example.com", Password: "secret123"})
		assertCode(t, err, goerror.CodeNotFound)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return verifiedUser(), nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		_, err := uc.Login(context.Background(), LoginInput{Email: "dave@example.com", Password: "wrong-pass"})
		assertCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("unverified account is forbidden", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				u := verifiedUser()
				u.Verified = false
				return u, nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		_, err := uc.Login(context.Background(), LoginInput{Email: "dave@example.com", Password: "secret123"})
		assertCode(t, err, goerror.CodeForbidden)
	})

	t.Run("success returns twelve hour session token", func(t *testing.T) {
		repo := &fakeRepoDB{
			getUserByEmail: func(context.Context, string) (*entity.User, error) {
				return verifiedUser(), nil
			},
		}

		uc := testUsecase(t, now, repo, &fakeRepoMail{}, nil)
		out, err := uc.Login(context.Background(), LoginInput{Email: "Dave@Example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.UserID != 11 || out.Email != "dave@example.com" {
			t.Errorf("unexpected output: %+v", out)
		}

		claims, err := uc.jwt.Verify(out.Token)
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if claims.UserID != 11 || claims.UserEmail != "dave@example.com" {
			t.Errorf("unexpected claims: %+v", claims)
		}

		ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if ttl != 12*time.Hour {
			t.Errorf("expected 12h token ttl, got %v", ttl)
		}
	})
}
